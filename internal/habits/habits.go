// Package habits is the habit list store with daily completion reset.
package habits

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/errors"
	"github.com/julianstephens/daywell/internal/logger"
	"github.com/julianstephens/daywell/internal/models"
	"github.com/julianstephens/daywell/internal/rollover"
	"github.com/julianstephens/daywell/internal/storage"
)

// SnapshotRecorder receives the day's tally after every change to the list.
type SnapshotRecorder interface {
	RecordSummary(date string, summary models.HabitSummary) error
}

type Store struct {
	provider storage.Provider
	recorder SnapshotRecorder
	today    func() string
}

// New returns a Store. today yields the current calendar date.
func New(provider storage.Provider, recorder SnapshotRecorder, today func() string) *Store {
	return &Store{
		provider: provider,
		recorder: recorder,
		today:    today,
	}
}

func (s *Store) Name() string { return "habits" }

func (s *Store) Marker() (storage.Partition, string) {
	return storage.PartitionHabits, constants.KeyHabitLastDate
}

// ResetForNewDay clears every completion flag and records an empty tally for today.
func (s *Store) ResetForNewDay(today string) (map[string]string, error) {
	habits, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range habits {
		habits[i].Completed = false
	}

	raw, err := encode(habits)
	if err != nil {
		return nil, err
	}
	if s.recorder != nil {
		if err := s.recorder.RecordSummary(today, models.SummarizeHabits(habits)); err != nil {
			return nil, err
		}
	}
	return map[string]string{constants.KeyHabits: raw}, nil
}

func (s *Store) ensureToday() (string, error) {
	today := s.today()
	if _, err := rollover.Apply(s.provider, s, today); err != nil {
		return "", err
	}
	return today, nil
}

// List returns habits in insertion order.
func (s *Store) List() ([]models.Habit, error) {
	if _, err := s.ensureToday(); err != nil {
		return nil, err
	}
	return s.load()
}

// Summary is today's total and completed counts.
func (s *Store) Summary() (models.HabitSummary, error) {
	habits, err := s.List()
	if err != nil {
		return models.HabitSummary{}, err
	}
	return models.SummarizeHabits(habits), nil
}

// Get returns one habit by id.
func (s *Store) Get(id string) (models.Habit, error) {
	habits, err := s.List()
	if err != nil {
		return models.Habit{}, err
	}
	if i := indexOf(habits, id); i >= 0 {
		return habits[i], nil
	}
	return models.Habit{}, errors.NotFound("habit", id)
}

// Add appends a new, incomplete habit with a fresh id.
func (s *Store) Add(name, description string) (models.Habit, error) {
	name, err := normalizeName(name)
	if err != nil {
		return models.Habit{}, err
	}

	today, err := s.ensureToday()
	if err != nil {
		return models.Habit{}, err
	}
	habits, err := s.load()
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Description: optional(description),
	}
	habits = append(habits, habit)

	if err := s.commit(today, habits); err != nil {
		return models.Habit{}, err
	}
	logger.Debug("Added habit", "id", habit.ID, "name", habit.Name)
	return habit, nil
}

// Update replaces every field of the habit with id.
func (s *Store) Update(id, name, description string, completed bool) (models.Habit, error) {
	name, err := normalizeName(name)
	if err != nil {
		return models.Habit{}, err
	}

	today, err := s.ensureToday()
	if err != nil {
		return models.Habit{}, err
	}
	habits, err := s.load()
	if err != nil {
		return models.Habit{}, err
	}

	i := indexOf(habits, id)
	if i < 0 {
		return models.Habit{}, errors.NotFound("habit", id)
	}
	habits[i] = models.Habit{
		ID:          id,
		Name:        name,
		Description: optional(description),
		Completed:   completed,
	}

	if err := s.commit(today, habits); err != nil {
		return models.Habit{}, err
	}
	return habits[i], nil
}

// ToggleCompleted sets the completion flag of the habit with id.
func (s *Store) ToggleCompleted(id string, value bool) error {
	today, err := s.ensureToday()
	if err != nil {
		return err
	}
	habits, err := s.load()
	if err != nil {
		return err
	}

	i := indexOf(habits, id)
	if i < 0 {
		return errors.NotFound("habit", id)
	}
	habits[i].Completed = value

	return s.commit(today, habits)
}

// Remove deletes the habit with id. Removing an absent id is not an error.
func (s *Store) Remove(id string) error {
	today, err := s.ensureToday()
	if err != nil {
		return err
	}
	habits, err := s.load()
	if err != nil {
		return err
	}

	i := indexOf(habits, id)
	if i < 0 {
		logger.Debug("Remove of unknown habit ignored", "id", id)
		return nil
	}
	habits = append(habits[:i], habits[i+1:]...)

	return s.commit(today, habits)
}

// FindByPrefix resolves a habit by full id, unique id prefix, or exact
// case-insensitive name.
func (s *Store) FindByPrefix(ref string) (models.Habit, error) {
	habits, err := s.List()
	if err != nil {
		return models.Habit{}, err
	}
	ref = strings.TrimSpace(ref)

	var matches []models.Habit
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
		if strings.EqualFold(h.Name, ref) || (ref != "" && strings.HasPrefix(h.ID, ref)) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 0:
		return models.Habit{}, errors.NotFound("habit", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Habit{}, errors.Validation("habit", "%q matches %d habits, use a longer id", ref, len(matches))
	}
}

// commit persists the full list and records today's tally.
func (s *Store) commit(today string, habits []models.Habit) error {
	raw, err := encode(habits)
	if err != nil {
		return err
	}
	if err := s.provider.Set(storage.PartitionHabits, constants.KeyHabits, raw); err != nil {
		return fmt.Errorf("failed to save habits: %w", err)
	}
	if s.recorder != nil {
		if err := s.recorder.RecordSummary(today, models.SummarizeHabits(habits)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) load() ([]models.Habit, error) {
	raw, ok, err := s.provider.Get(storage.PartitionHabits, constants.KeyHabits)
	if err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []models.Habit{}, nil
	}

	var habits []models.Habit
	if err := json.Unmarshal([]byte(raw), &habits); err != nil {
		errors.Recovered(string(storage.PartitionHabits), constants.KeyHabits, err)
		return []models.Habit{}, nil
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	return habits, nil
}

func encode(habits []models.Habit) (string, error) {
	raw, err := json.Marshal(habits)
	if err != nil {
		return "", fmt.Errorf("failed to encode habits: %w", err)
	}
	return string(raw), nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.Validation("name", "habit name cannot be empty")
	}
	return name, nil
}

func optional(description string) *string {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil
	}
	return &description
}

func indexOf(habits []models.Habit, id string) int {
	for i, h := range habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}
