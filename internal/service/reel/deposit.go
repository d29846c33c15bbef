package reel

import (
	"context"
	"errors"

	"slot_backend/internal/middleware"
)

// Deposit пополняет баланс пользователя.
// Возвращает новый баланс
func (s *serv) Deposit(ctx context.Context, amount int) (int, error) {
	if amount <= 0 {
		return 0, errors.New("amount must be positive")
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, errors.New("user id not found in context")
	}

	var newBalance int
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return errors.New("failed to get user balance")
		}

		newBalance = balance + amount
		if err := s.userRepo.UpdateBalance(txCtx, userID, newBalance); err != nil {
			return errors.New("failed to update user balance")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}
