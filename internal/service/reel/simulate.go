package reel

import (
	"context"
	"errors"

	"slot_backend/internal/model"
	"slot_backend/internal/payout"
)

const (
	// Ограничение размера пакета симуляции
	maxSimSpins = 1_000_000
)

// Simulate выполняет пакет спинов без ставок с баланса и возвращает агрегат.
// Используется для оценки отдачи текущего пресета:
// комбинации генерируются как в обычном спине, призы считаются пакетно
func (s *serv) Simulate(ctx context.Context, simReq model.SimRequest) (*model.SimReport, error) {
	if simReq.Bet <= 0 {
		return nil, errors.New("bet must be positive")
	}
	if simReq.Spins <= 0 || simReq.Spins > maxSimSpins {
		return nil, errors.New("spins must be in range [1, 1000000]")
	}

	preset := s.currentPreset()

	// Генерация пакета комбинаций
	combos := make([]payout.Combination, simReq.Spins)
	for i := range combos {
		combos[i] = s.Draw(preset)
	}

	// Пакетный подсчет призов
	prizes, err := payout.ScoreMany(combos)
	if err != nil {
		return nil, err
	}

	// Агрегация результатов
	report := &model.SimReport{
		Spins:    simReq.Spins,
		TotalBet: simReq.Spins * simReq.Bet,
	}
	for i, p := range prizes {
		pay := p * simReq.Bet
		report.TotalPayout += pay
		if pay > 0 {
			report.HitCount++
		}
		if pay > report.MaxPrize {
			report.MaxPrize = pay
			report.BestCombo = combos[i]
		}
	}
	if report.TotalBet > 0 {
		report.RTP = float64(report.TotalPayout) / float64(report.TotalBet) * 100
	}

	return report, nil
}
