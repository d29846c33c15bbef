package token

import (
	"strconv"
	"testing"
	"time"

	"slot_backend/internal/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: 42}

	tokenStr, err := GenerateAccessToken(user, secret, time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := VerifyToken(tokenStr, secret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.ID != strconv.Itoa(user.ID) {
		t.Errorf("claims.ID = %q, want %q", claims.ID, strconv.Itoa(user.ID))
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("secret-a"), time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	_, err = VerifyToken(tokenStr, []byte("secret-b"))
	if err == nil {
		t.Fatal("expected verification error with wrong secret")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("secret"), -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	_, err = VerifyToken(tokenStr, []byte("secret"))
	if err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestRefreshTokenVerify(t *testing.T) {
	token, err := GenerateRefreshToken()
	if err != nil {
		t.Fatal(err)
	}

	hash := HashRefreshToken(token)
	if !VerifyRefreshToken(token, hash) {
		t.Error("refresh token does not match its own hash")
	}
	if VerifyRefreshToken("another-token", hash) {
		t.Error("foreign token matched the hash")
	}
}
