package reel

import (
	"context"
	"errors"

	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
)

// CheckData возвращает баланс и накопленную статистику игр пользователя
func (s *serv) CheckData(ctx context.Context) (*model.Data, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, errors.New("failed to get user balance")
	}

	stats, err := s.repo.GetPlayStats(ctx, userID)
	if err != nil {
		return nil, errors.New("failed to get play stats")
	}

	return &model.Data{
		Balance:    balance,
		TotalSpins: stats.TotalSpins,
		TotalBet:   stats.TotalBet,
		TotalWon:   stats.TotalWon,
	}, nil
}
