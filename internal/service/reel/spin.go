package reel

import (
	"context"
	"errors"

	"slot_backend/internal/config"
	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
	"slot_backend/internal/payout"
)

// Spin выполняет спин с учётом баланса
func (s *serv) Spin(ctx context.Context, spinReq model.ReelSpin) (*model.SpinResult, error) {
	// Валидация ставки
	if spinReq.Bet <= 0 {
		return nil, errors.New("bet must be positive")
	}

	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Получаем пресет весов символов исходя из статистики
	preset := s.currentPreset()

	// Инициализируем структуру для хранения результатов спина
	var res *model.SpinResult

	// Начало транзакции где выполняется процесс спина.
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Строка состояния игры должна существовать до записи статистики
		if err := s.repo.CreateReelState(txCtx, userID); err != nil {
			return errors.New("failed to create reel game state")
		}

		// Получаем баланс пользователя
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return errors.New("failed to get user balance")
		}
		if balance < spinReq.Bet {
			return errors.New("not enough balance")
		}

		// Списание ставки, обновление баланса пользователя
		balance -= spinReq.Bet
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return errors.New("failed to update user balance")
		}

		// КЛЮЧЕВОЙ ВЫЗОВ
		// Крутим барабаны и считаем приз
		res, err = s.SpinOnce(spinReq.Bet, preset)
		if err != nil {
			return err
		}

		// Начисление выигрыша
		balance += res.Prize
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return errors.New("failed to update user balance")
		}

		// Накопленная статистика пользователя
		if err := s.repo.RecordSpin(txCtx, userID, spinReq.Bet, res.Prize); err != nil {
			return errors.New("failed to record spin")
		}

		res.Balance = balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Обновляем статистику отдачи.
	// res.Prize уже умножен на ставку, поэтому окно RTP считается
	// по одинаково масштабированным ставке и выплате
	s.statsRepo.UpdateState(float64(spinReq.Bet), float64(res.Prize))

	// АВТОМАТИЧЕСКАЯ РЕГУЛИРОВКА
	s.statsRepo.AutoAdjust()

	return res, nil
}

// SpinOnce выполняет один спин без работы с балансом.
// Приз масштабируется размером ставки
func (s *serv) SpinOnce(bet int, preset config.ReelConfig) (*model.SpinResult, error) {
	// Генерация комбинации
	combo := s.Draw(preset)

	// Подсчет приза за комбинацию
	prize, err := payout.Score(combo)
	if err != nil {
		return nil, err
	}

	// Считаем дикие символы для клиента
	wilds := 0
	for _, sym := range combo {
		if sym == payout.Wild {
			wilds++
		}
	}

	return &model.SpinResult{
		Combination: combo,
		Prize:       prize * bet,
		Wilds:       wilds,
		Balance:     0,
	}, nil
}
