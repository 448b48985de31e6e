// Package analytics derives summary statistics from habit history and the
// mood journal over a window of recent days.
package analytics

import (
	"fmt"
	"time"

	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/errors"
	"github.com/julianstephens/daywell/internal/models"
	"github.com/julianstephens/daywell/internal/mood"
	"github.com/julianstephens/daywell/internal/utils"
)

// HistorySource reads habit history snapshots.
type HistorySource interface {
	Get(date string) (models.HabitHistorySnapshot, bool, error)
}

// MoodSource reads mood day-buckets.
type MoodSource interface {
	EntriesForDate(date string) ([]models.MoodEntry, error)
}

type Aggregator struct {
	history HistorySource
	mood    MoodSource
	clock   utils.Clock
	loc     *time.Location
}

func New(history HistorySource, mood MoodSource, clock utils.Clock, loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{
		history: history,
		mood:    mood,
		clock:   clock,
		loc:     loc,
	}
}

func (a *Aggregator) today() string {
	return utils.Today(a.clock, a.loc)
}

// window returns the n dates ending today, oldest first.
func (a *Aggregator) window(n int) ([]string, error) {
	if n < 0 {
		return nil, errors.Validation("window", "number of days cannot be negative")
	}
	if n > constants.MaxAnalyticsWindowDays {
		return nil, errors.Validation("window", "at most %d days can be analysed", constants.MaxAnalyticsWindowDays)
	}
	return utils.LastNDates(a.today(), n)
}

// LastNDaysCompletionPercents returns one percent per day for the n days
// ending today, oldest first. Days without a snapshot count as 0.
func (a *Aggregator) LastNDaysCompletionPercents(n int) ([]models.DayPercent, error) {
	dates, err := a.window(n)
	if err != nil {
		return nil, err
	}

	result := make([]models.DayPercent, 0, len(dates))
	for _, date := range dates {
		snap, _, err := a.history.Get(date)
		if err != nil {
			return nil, fmt.Errorf("failed to read habit history for %s: %w", date, err)
		}
		result = append(result, models.DayPercent{Date: date, Percent: snap.Percent()})
	}
	return result, nil
}

// AverageCompletion is the mean daily completion percent over the window.
func (a *Aggregator) AverageCompletion(windowDays int) (float64, error) {
	percents, err := a.LastNDaysCompletionPercents(windowDays)
	if err != nil || len(percents) == 0 {
		return 0, err
	}
	sum := 0
	for _, p := range percents {
		sum += p.Percent
	}
	return float64(sum) / float64(len(percents)), nil
}

// DayScore is a date's average mood score.
type DayScore struct {
	Date  string  `json:"date" yaml:"date"`
	Score float64 `json:"score" yaml:"score"`
}

// DailyMoodAverages returns the average mood score of each day, oldest first.
func (a *Aggregator) DailyMoodAverages(windowDays int) ([]DayScore, error) {
	dates, err := a.window(windowDays)
	if err != nil {
		return nil, err
	}
	result := make([]DayScore, 0, len(dates))
	for _, date := range dates {
		entries, err := a.mood.EntriesForDate(date)
		if err != nil {
			return nil, err
		}
		result = append(result, DayScore{Date: date, Score: mood.AverageScore(entries)})
	}
	return result, nil
}

// AverageMood is the mean of the daily averages that are above zero.
func (a *Aggregator) AverageMood(windowDays int) (float64, error) {
	days, err := a.DailyMoodAverages(windowDays)
	if err != nil {
		return 0, err
	}
	total, n := 0.0, 0
	for _, d := range days {
		if d.Score > 0 {
			total += d.Score
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return total / float64(n), nil
}

// PositiveStreak counts days backwards from today whose mood average is at
// least threshold and above zero. It stops at the first failing day or after
// windowDays days.
func (a *Aggregator) PositiveStreak(threshold float64, windowDays int) (int, error) {
	dates, err := a.window(windowDays)
	if err != nil {
		return 0, err
	}

	streak := 0
	for i := len(dates) - 1; i >= 0; i-- {
		entries, err := a.mood.EntriesForDate(dates[i])
		if err != nil {
			return 0, err
		}
		avg := mood.AverageScore(entries)
		if avg < threshold || avg <= 0 {
			break
		}
		streak++
	}
	return streak, nil
}

// MostFrequentMoodLabel tallies entry labels over the window, today first.
// Each label keeps the first emoji seen for it. Ties go to the label that
// appeared first. ok is false when the window holds no entries.
func (a *Aggregator) MostFrequentMoodLabel(windowDays int) (models.MoodFrequency, bool, error) {
	dates, err := a.window(windowDays)
	if err != nil {
		return models.MoodFrequency{}, false, err
	}

	counts := map[string]*models.MoodFrequency{}
	var order []string
	for i := len(dates) - 1; i >= 0; i-- {
		entries, err := a.mood.EntriesForDate(dates[i])
		if err != nil {
			return models.MoodFrequency{}, false, err
		}
		for _, e := range entries {
			if mf, ok := counts[e.Label]; ok {
				mf.Count++
				continue
			}
			counts[e.Label] = &models.MoodFrequency{Label: e.Label, Emoji: e.Emoji, Count: 1}
			order = append(order, e.Label)
		}
	}

	if len(order) == 0 {
		return models.MoodFrequency{}, false, nil
	}
	best := counts[order[0]]
	for _, label := range order[1:] {
		if counts[label].Count > best.Count {
			best = counts[label]
		}
	}
	return *best, true, nil
}

// OverallMoodDescriptor maps an average score onto a qualitative band.
func OverallMoodDescriptor(score float64) models.MoodDescriptor {
	switch {
	case score >= 4.5:
		return models.MoodDescriptor{Label: "Excellent", Emoji: "🤩"}
	case score >= 4.0:
		return models.MoodDescriptor{Label: "Great", Emoji: "😄"}
	case score >= 3.0:
		return models.MoodDescriptor{Label: "Good", Emoji: "🙂"}
	case score >= 2.0:
		return models.MoodDescriptor{Label: "Low", Emoji: "😕"}
	case score > 0:
		return models.MoodDescriptor{Label: "Very Low", Emoji: "😞"}
	default:
		return models.MoodDescriptor{Label: "No Data", Emoji: "–"}
	}
}
