package model

import "time"

// Состояние статистики отдачи слота
type ReelStats struct {
	TotalSpins  int     // Сколько всего спинов сделано
	TotalBet    float64 // Сумма всех ставок
	TotalPayout float64 // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100
	TargetRTP  float64 // Какой RTP хотим получить

	PresetIndex int // Индекс текущего пресета весов символов

	Adjustments []AdjustmentLog // Лог переключений пресета

	EmergencyMode      bool   // Флаг режима "аварийного" изменения RTP
	EmergencyDirection string // Направление "аварийного" изменения ("high" или "low")

	SpinWindow []SpinResult // Окно последних спинов для анализа
	WindowRTP  float64      // RTP в окне последних спинов
	WindowSize int          // Размер окна для анализа RTP
}

// Лог переключений пресета
type AdjustmentLog struct {
	Timestamp time.Time
	NewPreset int
	Reason    string
	WindowRTP float64
	Profit    float64
}

// Результат спина для окна
type SpinResult struct {
	Bet    float64
	Payout float64
	RTP    float64
}
