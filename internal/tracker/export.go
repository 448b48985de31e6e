package tracker

import (
	"time"

	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/models"
)

// Export is a full decoded dump of the store.
type Export struct {
	App        string                        `json:"app" yaml:"app"`
	Version    string                        `json:"version" yaml:"version"`
	ExportedAt time.Time                     `json:"exported_at" yaml:"exported_at"`
	Settings   models.Settings               `json:"settings" yaml:"settings"`
	Hydration  models.HydrationState         `json:"hydration" yaml:"hydration"`
	Habits     []models.Habit                `json:"habits" yaml:"habits"`
	History    []HistoryRow                  `json:"history" yaml:"history"`
	Mood       map[string][]models.MoodEntry `json:"mood" yaml:"mood"`
}

// HistoryRow is a snapshot with its date, which the stored form keeps in the key.
type HistoryRow struct {
	Date      string `json:"date" yaml:"date"`
	Total     int    `json:"total" yaml:"total"`
	Completed int    `json:"completed" yaml:"completed"`
}

// Export reads every partition into an Export.
func (s *Service) Export() (Export, error) {
	out := Export{
		App:        constants.AppName,
		Version:    constants.Version,
		ExportedAt: s.Now(),
		Mood:       map[string][]models.MoodEntry{},
	}

	var err error
	if out.Settings, err = s.Prefs.Load(); err != nil {
		return Export{}, err
	}
	if out.Hydration, err = s.Hydration.Snapshot(); err != nil {
		return Export{}, err
	}
	if out.Habits, err = s.Habits.List(); err != nil {
		return Export{}, err
	}

	dates, err := s.History.Dates()
	if err != nil {
		return Export{}, err
	}
	for _, d := range dates {
		snap, ok, err := s.History.Get(d)
		if err != nil {
			return Export{}, err
		}
		if ok {
			out.History = append(out.History, HistoryRow{Date: d, Total: snap.Total, Completed: snap.Completed})
		}
	}

	moodDates, err := s.Mood.Dates()
	if err != nil {
		return Export{}, err
	}
	for _, d := range moodDates {
		entries, err := s.Mood.EntriesForDate(d)
		if err != nil {
			return Export{}, err
		}
		out.Mood[d] = entries
	}
	return out, nil
}
