package reel

type ReelSpinRequest struct {
	Bet int `json:"bet"` // Размер ставки (положительное целое, >0)
}

type ReelSpinResponse struct {
	Combination [3]string `json:"combination"` // Символы (ID)
	Prize       int       `json:"prize"`       // Выплата за спин
	Wilds       int       `json:"wilds"`       // Кол-во диких символов
	Balance     int       `json:"balance"`     // Баланс после
}

type SimulateRequest struct {
	Spins int `json:"spins"` // Размер пакета (1 - 1000000)
	Bet   int `json:"bet"`   // Ставка на один спин
}

type SimulateResponse struct {
	Spins       int       `json:"spins"`            // Размер пакета
	TotalBet    int       `json:"total_bet"`        // Сумма ставок
	TotalPayout int       `json:"total_payout"`     // Сумма выплат
	RTP         float64   `json:"rtp"`              // Отдача по пакету, %
	HitCount    int       `json:"hit_count"`        // Спины с призом
	MaxPrize    int       `json:"max_prize"`        // Максимальный приз
	BestCombo   [3]string `json:"best_combination"` // Комбинация максимального приза
}

type DepositRequest struct {
	Amount int `json:"amount"` // Сумма депозита
}

type DepositResponse struct {
	Balance int `json:"balance"` // Баланс после пополнения
}

type DataResponse struct {
	Balance    int `json:"balance"`     // Баланс пользователя
	TotalSpins int `json:"total_spins"` // Всего спинов
	TotalBet   int `json:"total_bet"`   // Всего поставлено
	TotalWon   int `json:"total_won"`   // Всего выиграно
}

type PaytableResponse struct {
	Paytable map[string]int `json:"paytable"` // Символ -> приз за тройку
}
