package repository

import (
	"context"

	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/reel_stats_repo/model"
)

type ReelRepository interface {
	CreateReelState(ctx context.Context, id int) error
	GetPlayStats(ctx context.Context, id int) (model.PlayStats, error)
	RecordSpin(ctx context.Context, id int, bet, prize int) error
}

// ReelStatsRepository - хранилище статистики отдачи (RTP) в памяти процесса
type ReelStatsRepository interface {
	State() statsModel.ReelStats
	UpdateState(bet, payout float64)
	AutoAdjust() bool
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetBalance(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error
}
