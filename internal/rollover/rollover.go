// Package rollover resets day-scoped state once per calendar-day change.
package rollover

import (
	"fmt"

	"github.com/julianstephens/daywell/internal/logger"
	"github.com/julianstephens/daywell/internal/storage"
)

// Resetter is a component with day-scoped state guarded by a last-date marker.
type Resetter interface {
	// Name identifies the participant in logs.
	Name() string
	// Marker returns where the last-active date is stored.
	Marker() (storage.Partition, string)
	// ResetForNewDay clears day-scoped state. The returned values belong to
	// the marker partition and are committed together with the new marker.
	ResetForNewDay(today string) (map[string]string, error)
}

// Apply resets r if its marker differs from today. Only equality is compared,
// so a clock moved backwards also counts as a new day. It reports whether a
// reset happened.
func Apply(store storage.Provider, r Resetter, today string) (bool, error) {
	partition, key := r.Marker()

	last, _, err := store.Get(partition, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s rollover marker: %w", r.Name(), err)
	}
	if last == today {
		return false, nil
	}

	values, err := r.ResetForNewDay(today)
	if err != nil {
		return false, fmt.Errorf("failed to reset %s for %s: %w", r.Name(), today, err)
	}
	if values == nil {
		values = map[string]string{}
	}
	values[key] = today

	if err := store.SetMany(partition, values); err != nil {
		return false, fmt.Errorf("failed to commit %s rollover: %w", r.Name(), err)
	}

	logger.Info("Applied daily rollover", "component", r.Name(), "from", last, "to", today)
	return true, nil
}

// Engine applies rollover to every registered participant.
type Engine struct {
	store        storage.Provider
	participants []Resetter
}

func NewEngine(store storage.Provider, participants ...Resetter) *Engine {
	return &Engine{store: store, participants: participants}
}

// Register adds a participant.
func (e *Engine) Register(r Resetter) {
	e.participants = append(e.participants, r)
}

// EnsureApplied brings every participant up to today. Calling it again on
// the same day changes nothing.
func (e *Engine) EnsureApplied(today string) error {
	for _, p := range e.participants {
		if _, err := Apply(e.store, p, today); err != nil {
			return err
		}
	}
	return nil
}
