package service

import (
	"context"

	"slot_backend/internal/model"
)

type ReelService interface {
	Spin(ctx context.Context, spinReq model.ReelSpin) (*model.SpinResult, error)
	Simulate(ctx context.Context, simReq model.SimRequest) (*model.SimReport, error)
	Deposit(ctx context.Context, amount int) (int, error)
	CheckData(ctx context.Context) (*model.Data, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
