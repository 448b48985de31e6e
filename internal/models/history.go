package models

// HabitHistorySnapshot is the persisted completion tally for one calendar date.
type HabitHistorySnapshot struct {
	Date      string `json:"-" yaml:"-"`
	Total     int    `json:"total" yaml:"total"`
	Completed int    `json:"completed" yaml:"completed"`
}

// Percent is floor(completed*100/total), or 0 when total is not positive.
func (s HabitHistorySnapshot) Percent() int {
	if s.Total <= 0 {
		return 0
	}
	return s.Completed * 100 / s.Total
}

// DayPercent pairs a date (YYYY-MM-DD) with its completion percent.
type DayPercent struct {
	Date    string `json:"date" yaml:"date"`
	Percent int    `json:"percent" yaml:"percent"`
}
