package analytics

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/models"
)

// Period is a named analytics window.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod accepts "weekly"/"week" and "monthly"/"month".
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "weekly", "week":
		return PeriodWeekly, nil
	case "monthly", "month":
		return PeriodMonthly, nil
	default:
		return "", fmt.Errorf("unknown period %q (use weekly or monthly)", s)
	}
}

func (p Period) Days() int {
	if p == PeriodMonthly {
		return constants.MonthlyWindowDays
	}
	return constants.WeeklyWindowDays
}

// BestHabit approximates the strongest habit from today's list: the first
// completed habit, else the first habit. Percent is 100 or 0.
type BestHabit struct {
	Name    string `json:"name" yaml:"name"`
	Percent int    `json:"percent" yaml:"percent"`
}

func PickBestHabit(habits []models.Habit) (BestHabit, bool) {
	if len(habits) == 0 {
		return BestHabit{}, false
	}
	best := habits[0]
	for _, h := range habits {
		if h.Completed {
			best = h
			break
		}
	}
	if best.Completed {
		return BestHabit{Name: best.Name, Percent: 100}, true
	}
	return BestHabit{Name: best.Name, Percent: 0}, true
}

// Summary is the stats view of one period.
type Summary struct {
	Period            Period                `json:"period" yaml:"period"`
	Days              int                   `json:"days" yaml:"days"`
	Completion        []models.DayPercent   `json:"completion" yaml:"completion"`
	AverageCompletion float64               `json:"average_completion" yaml:"average_completion"`
	MoodScores        []DayScore            `json:"mood_scores" yaml:"mood_scores"`
	AverageMood       float64               `json:"average_mood" yaml:"average_mood"`
	Descriptor        models.MoodDescriptor `json:"descriptor" yaml:"descriptor"`
	PositiveStreak    int                   `json:"positive_streak" yaml:"positive_streak"`
	MostFrequent      *models.MoodFrequency `json:"most_frequent,omitempty" yaml:"most_frequent,omitempty"`
	BestHabit         *BestHabit            `json:"best_habit,omitempty" yaml:"best_habit,omitempty"`
}

// Summarize builds the period summary. todayHabits feeds the best-habit
// approximation and may be empty.
func (a *Aggregator) Summarize(period Period, todayHabits []models.Habit) (Summary, error) {
	days := period.Days()
	s := Summary{Period: period, Days: days}

	var err error
	if s.Completion, err = a.LastNDaysCompletionPercents(days); err != nil {
		return Summary{}, err
	}
	if s.AverageCompletion, err = a.AverageCompletion(days); err != nil {
		return Summary{}, err
	}
	if s.MoodScores, err = a.DailyMoodAverages(days); err != nil {
		return Summary{}, err
	}
	if s.AverageMood, err = a.AverageMood(days); err != nil {
		return Summary{}, err
	}
	s.Descriptor = OverallMoodDescriptor(s.AverageMood)
	if s.PositiveStreak, err = a.PositiveStreak(constants.PositiveMoodThreshold, days); err != nil {
		return Summary{}, err
	}

	mf, ok, err := a.MostFrequentMoodLabel(days)
	if err != nil {
		return Summary{}, err
	}
	if ok {
		s.MostFrequent = &mf
	}
	if best, ok := PickBestHabit(todayHabits); ok {
		s.BestHabit = &best
	}
	return s, nil
}
