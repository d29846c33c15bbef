package model

import "slot_backend/internal/payout"

type ReelSpin struct {
	Bet int
}

type SpinResult struct {
	Combination payout.Combination
	Prize       int
	Wilds       int
	Balance     int
}

type SimRequest struct {
	Spins int
	Bet   int
}

// SimReport - агрегат по пакету симулированных спинов
type SimReport struct {
	Spins       int
	TotalBet    int
	TotalPayout int
	RTP         float64 // Процент возврата по пакету
	HitCount    int     // Спины с ненулевым призом
	MaxPrize    int
	BestCombo   payout.Combination
}

// PlayStats - накопленная статистика игр пользователя
type PlayStats struct {
	TotalSpins int
	TotalBet   int
	TotalWon   int
}

type Data struct {
	Balance    int
	TotalSpins int
	TotalBet   int
	TotalWon   int
}
