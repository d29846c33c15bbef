package reel_stats_repo

import (
	"log"
	"math"
	"sync"
	"time"

	repoModel "slot_backend/internal/repository/reel_stats_repo/model"
)

const (
	// countSpinsToSwap Количество спинов, после которого начинаем проверять необходимость корректировки
	countSpinsToSwap = 1
	// periodSpinsToCheck Периодичность проверки (каждые N спинов)
	periodSpinsToCheck = 25
	// maxAllowedRTPDeviation Максимально допустимое отклонение RTP в окне от целевого (процентные пункты)
	maxAllowedRTPDeviation = 5
	// Критическое отклонение RTP для активации аварийного режима
	criticalRTPDeviation = 10.0
	// Нормальное отклонение RTP для деактивации аварийного режима
	normalRTPDeviation = 5
)

// Реализация репозитория для хранения статистики отдачи слота
type StatsRepo struct {
	mtx         sync.RWMutex
	presetCount int
	state       repoModel.ReelStats
}

// NewReelStatsRepository Конструктор репозитория статистики.
// presetCount - сколько пресетов весов загружено из конфигурации,
// стартуем со среднего
func NewReelStatsRepository(presetCount int, targetRTP float64) *StatsRepo {
	initialState := repoModel.ReelStats{
		TotalSpins:         0,
		TotalBet:           0,
		TotalPayout:        0,
		CurrentRTP:         targetRTP,
		TargetRTP:          targetRTP,
		PresetIndex:        presetCount / 2,
		Adjustments:        make([]repoModel.AdjustmentLog, 0),
		EmergencyMode:      false,
		EmergencyDirection: "",
		SpinWindow:         make([]repoModel.SpinResult, 0),
		WindowRTP:          0,
		WindowSize:         500,
	}
	return &StatsRepo{
		presetCount: presetCount,
		state:       initialState,
	}
}

// State Получение текущего состояния статистики.
// Возвращает копию структуры ReelStats
func (r *StatsRepo) State() repoModel.ReelStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state
}

// UpdateState Обновление статистики после спина
func (r *StatsRepo) UpdateState(bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = r.state.TotalPayout / r.state.TotalBet * 100
	}

	// Добавляем спин в окно
	spinRTP := 0.0
	if bet > 0 {
		spinRTP = payout / bet * 100
	}
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Bet:    bet,
		Payout: payout,
		RTP:    spinRTP,
	})

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	// Пересчитываем RTP в окне
	var windowBet, windowPayout float64
	for _, spin := range r.state.SpinWindow {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}

	if windowBet > 0 {
		r.state.WindowRTP = windowPayout / windowBet * 100
	} else {
		r.state.WindowRTP = 0
	}
}

// AutoAdjust АВТОМАТИЧЕСКАЯ РЕГУЛИРОВКА RTP
// Переключает индекс пресета, если отдача в окне ушла от целевой
func (r *StatsRepo) AutoAdjust() bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.state.TotalSpins%periodSpinsToCheck == 0 && r.state.TotalSpins > countSpinsToSwap {
		// 1. ЭКСТРЕННАЯ ПРОВЕРКА (отклонение > criticalRTPDeviation)
		if r.emergencyCheck() {
			return r.applyEmergencyAdjustment()
		}
		// 2. СТАНДАРТНАЯ КОРРЕКТИРОВКА (отклонение > maxAllowedRTPDeviation)
		if r.standardCheck() {
			return r.applyStandardAdjustment()
		}
	}
	return false
}

// Экстренная проверка.
// Если RTP в окне отклоняется от целевого больше критического порога - включаем экстренный режим
func (r *StatsRepo) emergencyCheck() bool {
	if r.state.TotalSpins < countSpinsToSwap {
		return false
	}
	// Вычисляем абсолютное отклонение RTP в окне от целевого
	absoluteDiff := math.Abs(r.state.WindowRTP - r.state.TargetRTP)

	if absoluteDiff > criticalRTPDeviation {
		r.state.EmergencyMode = true
		// Если RTP слишком высокий - понижаем, если слишком низкий - повышаем
		if r.state.WindowRTP > r.state.TargetRTP {
			r.state.EmergencyDirection = "high"
		} else {
			r.state.EmergencyDirection = "low"
		}
		return true
	}
	// Выходим из экстренного режима, когда RTP вернулся ближе к целевому
	if r.state.EmergencyMode && absoluteDiff < normalRTPDeviation {
		r.state.EmergencyMode = false
		r.state.EmergencyDirection = ""
	}
	return false
}

// Применение экстренной корректировки
func (r *StatsRepo) applyEmergencyAdjustment() bool {
	adjustmentReason := "emergency"
	var newIndex int
	if r.state.EmergencyDirection == "high" {
		if r.state.PresetIndex > 0 {
			newIndex = r.state.PresetIndex - 1
			log.Printf("emergency adjustment (RTP too high: %.1f%%)", r.state.WindowRTP)
		} else {
			return false
		}
	} else {
		if r.state.PresetIndex < r.presetCount-1 {
			newIndex = r.state.PresetIndex + 1
			log.Printf("emergency adjustment (RTP too low: %.1f%%)", r.state.WindowRTP)
		} else {
			return false
		}
	}
	return r.applyAdjustment(newIndex, adjustmentReason)
}

// Стандартная проверка
func (r *StatsRepo) standardCheck() bool {
	if r.state.TotalSpins < countSpinsToSwap {
		return false
	}

	if r.state.EmergencyMode {
		return false
	}

	windowDiff := math.Abs(r.state.WindowRTP - r.state.TargetRTP)

	return windowDiff > maxAllowedRTPDeviation
}

// Применение стандартной корректировки
func (r *StatsRepo) applyStandardAdjustment() bool {
	windowDiff := r.state.WindowRTP - r.state.TargetRTP
	var newIndex int

	if windowDiff > maxAllowedRTPDeviation {
		if r.state.PresetIndex > 0 {
			newIndex = r.state.PresetIndex - 1
		} else {
			return false
		}
	} else if windowDiff < -maxAllowedRTPDeviation {
		if r.state.PresetIndex < r.presetCount-1 {
			newIndex = r.state.PresetIndex + 1
		} else {
			return false
		}
	} else {
		return false
	}

	return r.applyAdjustment(newIndex, "standard")
}

// Применение корректировки и логирование
func (r *StatsRepo) applyAdjustment(newIndex int, reason string) bool {
	if newIndex == r.state.PresetIndex || newIndex < 0 || newIndex >= r.presetCount {
		return false
	}
	log.Printf("preset adjustment: %d -> %d (window RTP %.1f%%)", r.state.PresetIndex, newIndex, r.state.WindowRTP)
	profit := r.state.TotalBet - r.state.TotalPayout

	adjustment := repoModel.AdjustmentLog{
		Timestamp: time.Now(),
		NewPreset: newIndex,
		Reason:    reason,
		WindowRTP: r.state.WindowRTP,
		Profit:    profit,
	}
	r.state.Adjustments = append(r.state.Adjustments, adjustment)
	r.state.PresetIndex = newIndex
	return true
}
