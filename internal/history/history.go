// Package history stores one habit completion snapshot per calendar date.
package history

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/errors"
	"github.com/julianstephens/daywell/internal/models"
	"github.com/julianstephens/daywell/internal/storage"
)

type Store struct {
	provider storage.Provider
}

func New(provider storage.Provider) *Store {
	return &Store{provider: provider}
}

// Key is the storage key of date's snapshot.
func Key(date string) string {
	return constants.HabitHistoryKeyPrefix + date
}

// Record upserts the snapshot for date.
func (s *Store) Record(date string, total, completed int) error {
	if total < 0 {
		total = 0
	}
	if completed < 0 {
		completed = 0
	}
	if completed > total {
		completed = total
	}

	raw, err := json.Marshal(models.HabitHistorySnapshot{Total: total, Completed: completed})
	if err != nil {
		return err
	}
	if err := s.provider.Set(storage.PartitionHabitHistory, Key(date), string(raw)); err != nil {
		return fmt.Errorf("failed to record habit history for %s: %w", date, err)
	}
	return nil
}

// RecordSummary upserts the snapshot for date from a habit summary.
func (s *Store) RecordSummary(date string, summary models.HabitSummary) error {
	return s.Record(date, summary.Total, summary.Completed)
}

// Get returns date's snapshot. Absent or malformed records yield ok=false.
func (s *Store) Get(date string) (models.HabitHistorySnapshot, bool, error) {
	raw, ok, err := s.provider.Get(storage.PartitionHabitHistory, Key(date))
	if err != nil || !ok {
		return models.HabitHistorySnapshot{Date: date}, false, err
	}

	var snap models.HabitHistorySnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		errors.Recovered(string(storage.PartitionHabitHistory), Key(date), err)
		return models.HabitHistorySnapshot{Date: date}, false, nil
	}
	snap.Date = date
	return snap, true, nil
}

// CompletionPercent is the floored completion percent of date, 0 without data.
func (s *Store) CompletionPercent(date string) (int, error) {
	snap, _, err := s.Get(date)
	if err != nil {
		return 0, err
	}
	return snap.Percent(), nil
}

// Dates lists every date with a snapshot, oldest first.
func (s *Store) Dates() ([]string, error) {
	keys, err := s.provider.Keys(storage.PartitionHabitHistory, constants.HabitHistoryKeyPrefix)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, strings.TrimPrefix(k, constants.HabitHistoryKeyPrefix))
	}
	return dates, nil
}
