package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

// Длина refresh токена в байтах (256 бит)
const refreshTokenLen = 32

// GenerateRefreshToken - случайный refresh токен в base64.
// В хранилище кладется только его хэш
func GenerateRefreshToken() (string, error) {
	b := make([]byte, refreshTokenLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashRefreshToken - hex от sha256 токена для хранения в сессии
func HashRefreshToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// VerifyRefreshToken - сверка токена с хэшем из сессии за константное время
func VerifyRefreshToken(token string, hash string) bool {
	return subtle.ConstantTimeCompare(
		[]byte(HashRefreshToken(token)),
		[]byte(hash),
	) == 1
}
