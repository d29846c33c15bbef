package model

import "time"

// Session - сессия пользователя.
// RefreshToken хранится в виде sha256 хэша
type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}
