package reel_stats_repo

import "testing"

func TestUpdateState(t *testing.T) {
	r := NewReelStatsRepository(5, 95.0)

	r.UpdateState(10, 5)
	r.UpdateState(10, 20)

	st := r.State()
	if st.TotalSpins != 2 {
		t.Errorf("TotalSpins = %d, want 2", st.TotalSpins)
	}
	if st.TotalBet != 20 || st.TotalPayout != 25 {
		t.Errorf("totals = %v/%v, want 20/25", st.TotalBet, st.TotalPayout)
	}
	if st.CurrentRTP != 125 {
		t.Errorf("CurrentRTP = %v, want 125", st.CurrentRTP)
	}
	if st.WindowRTP != 125 {
		t.Errorf("WindowRTP = %v, want 125", st.WindowRTP)
	}
}

func TestSpinWindowCapped(t *testing.T) {
	r := NewReelStatsRepository(5, 95.0)
	for i := 0; i < 650; i++ {
		r.UpdateState(2, 1)
	}
	st := r.State()
	if len(st.SpinWindow) != st.WindowSize {
		t.Errorf("window length = %d, want %d", len(st.SpinWindow), st.WindowSize)
	}
}

// Слишком высокая отдача в окне понижает индекс пресета
func TestAutoAdjustLowersPreset(t *testing.T) {
	r := NewReelStatsRepository(5, 95.0)

	adjusted := false
	for i := 0; i < 100; i++ {
		r.UpdateState(10, 20) // RTP 200%
		if r.AutoAdjust() {
			adjusted = true
		}
	}
	if !adjusted {
		t.Fatal("expected at least one adjustment")
	}
	if st := r.State(); st.PresetIndex >= 2 {
		t.Errorf("PresetIndex = %d, want < 2", st.PresetIndex)
	}
}

// Нулевая отдача повышает индекс пресета
func TestAutoAdjustRaisesPreset(t *testing.T) {
	r := NewReelStatsRepository(5, 95.0)

	for i := 0; i < 100; i++ {
		r.UpdateState(10, 0)
		r.AutoAdjust()
	}
	if st := r.State(); st.PresetIndex <= 2 {
		t.Errorf("PresetIndex = %d, want > 2", st.PresetIndex)
	}
}

// Индекс пресета не выходит за границы списка
func TestAutoAdjustClamped(t *testing.T) {
	r := NewReelStatsRepository(2, 95.0)

	for i := 0; i < 1000; i++ {
		r.UpdateState(10, 0)
		r.AutoAdjust()
	}
	if st := r.State(); st.PresetIndex != 1 {
		t.Errorf("PresetIndex = %d, want 1", st.PresetIndex)
	}

	for i := 0; i < 1000; i++ {
		r.UpdateState(10, 30)
		r.AutoAdjust()
	}
	if st := r.State(); st.PresetIndex != 0 {
		t.Errorf("PresetIndex = %d, want 0", st.PresetIndex)
	}
}

func TestAdjustmentLogged(t *testing.T) {
	r := NewReelStatsRepository(5, 95.0)
	for i := 0; i < 100; i++ {
		r.UpdateState(10, 0)
		r.AutoAdjust()
	}
	if st := r.State(); len(st.Adjustments) == 0 {
		t.Error("expected adjustment log entries")
	}
}
