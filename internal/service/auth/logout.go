package auth

import (
	"context"
)

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	// Удаление сессии из хранилища
	return s.authRepo.DeleteSession(ctx, sessionID)
}
