package models

// Habit is one tracked daily habit. Completed is reset on each new day.
type Habit struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description" yaml:"description"`
	Completed   bool    `json:"completed" yaml:"completed"`
}

// DescriptionOrEmpty returns the description, or "" when none was given.
func (h Habit) DescriptionOrEmpty() string {
	if h.Description == nil {
		return ""
	}
	return *h.Description
}

// HabitSummary is the day's completion tally shown after every habit change.
type HabitSummary struct {
	Total     int `json:"total" yaml:"total"`
	Completed int `json:"completed" yaml:"completed"`
}

func (s HabitSummary) Remaining() int {
	return s.Total - s.Completed
}

// Percent is floor(completed*100/total), or 0 when there are no habits.
func (s HabitSummary) Percent() int {
	if s.Total <= 0 {
		return 0
	}
	return s.Completed * 100 / s.Total
}

// SummarizeHabits counts total and completed habits.
func SummarizeHabits(habits []Habit) HabitSummary {
	summary := HabitSummary{Total: len(habits)}
	for _, h := range habits {
		if h.Completed {
			summary.Completed++
		}
	}
	return summary
}
