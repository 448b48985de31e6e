// Package tracker wires the daily stores around one storage provider, clock
// and timezone.
package tracker

import (
	"fmt"
	"time"

	"github.com/julianstephens/daywell/internal/analytics"
	"github.com/julianstephens/daywell/internal/habits"
	"github.com/julianstephens/daywell/internal/history"
	"github.com/julianstephens/daywell/internal/hydration"
	"github.com/julianstephens/daywell/internal/models"
	"github.com/julianstephens/daywell/internal/mood"
	"github.com/julianstephens/daywell/internal/prefs"
	"github.com/julianstephens/daywell/internal/rollover"
	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/internal/utils"
)

type Service struct {
	Store     storage.Provider
	Prefs     *prefs.Store
	History   *history.Store
	Habits    *habits.Store
	Mood      *mood.Journal
	Hydration *hydration.Tracker
	Analytics *analytics.Aggregator
	Rollover  *rollover.Engine

	clock utils.Clock
	loc   *time.Location
}

// New builds a Service over an opened store. The timezone comes from the
// saved settings; clock defaults to time.Now.
func New(store storage.Provider, clock utils.Clock) (*Service, error) {
	if clock == nil {
		clock = time.Now
	}

	p := prefs.New(store)
	settings, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	loc, err := prefs.Location(settings)
	if err != nil {
		return nil, err
	}

	return NewWithLocation(store, clock, loc), nil
}

// NewWithLocation builds a Service with an explicit timezone.
func NewWithLocation(store storage.Provider, clock utils.Clock, loc *time.Location) *Service {
	s := &Service{
		Store: store,
		Prefs: prefs.New(store),
		clock: clock,
		loc:   loc,
	}
	s.History = history.New(store)
	s.Habits = habits.New(store, s.History, s.Today)
	s.Mood = mood.New(store, clock, loc)
	s.Hydration = hydration.New(store, clock, loc)
	s.Analytics = analytics.New(s.History, s.Mood, clock, loc)
	s.Rollover = rollover.NewEngine(store, s.Habits, s.Hydration)
	return s
}

// Today is the current calendar date in the configured timezone.
func (s *Service) Today() string {
	return utils.Today(s.clock, s.loc)
}

func (s *Service) Now() time.Time {
	return s.clock().In(s.loc)
}

func (s *Service) Location() *time.Location {
	return s.loc
}

// EnsureRollover resets every day-scoped component that is behind today.
func (s *Service) EnsureRollover() error {
	return s.Rollover.EnsureApplied(s.Today())
}

// Reminder builds the reminder trigger around n.
func (s *Service) Reminder(n hydration.Notifier) *hydration.Reminder {
	return hydration.NewReminder(s.Prefs, s.Hydration, n)
}

// Dashboard is everything the TUI shows on open.
type Dashboard struct {
	Date      string
	Habits    []models.Habit
	Summary   models.HabitSummary
	Moods     []models.MoodEntry
	Hydration models.HydrationState
	Settings  models.Settings
}

// Dashboard loads today's state after applying rollover.
func (s *Service) Dashboard() (Dashboard, error) {
	if err := s.EnsureRollover(); err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{Date: s.Today()}
	var err error
	if d.Habits, err = s.Habits.List(); err != nil {
		return Dashboard{}, err
	}
	d.Summary = models.SummarizeHabits(d.Habits)
	if d.Moods, err = s.Mood.EntriesForDate(d.Date); err != nil {
		return Dashboard{}, err
	}
	if d.Hydration, err = s.Hydration.Snapshot(); err != nil {
		return Dashboard{}, err
	}
	if d.Settings, err = s.Prefs.Load(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}
