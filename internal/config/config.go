package config

import (
	"time"

	"slot_backend/internal/payout"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// ReelConfig - один пресет весов символов для генератора барабанов
type ReelConfig interface {
	Name() string
	SymbolWeights() map[payout.Symbol]int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
