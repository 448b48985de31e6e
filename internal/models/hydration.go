package models

// HydrationState is today's water intake against the daily target.
type HydrationState struct {
	DailyTargetMl int    `json:"daily_target_ml" yaml:"daily_target_ml"`
	IntakeMl      int    `json:"intake_ml" yaml:"intake_ml"`
	LastResetDate string `json:"last_reset_date" yaml:"last_reset_date"` // YYYY-MM-DD
}

// Percent is the share of the target reached, clamped to 0..100.
func (s HydrationState) Percent() int {
	if s.DailyTargetMl <= 0 {
		return 0
	}
	p := s.IntakeMl * 100 / s.DailyTargetMl
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func (s HydrationState) RemainingMl() int {
	if s.IntakeMl >= s.DailyTargetMl {
		return 0
	}
	return s.DailyTargetMl - s.IntakeMl
}
