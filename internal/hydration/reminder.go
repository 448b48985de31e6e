package hydration

import (
	"fmt"

	"github.com/julianstephens/daywell/internal/logger"
	"github.com/julianstephens/daywell/internal/models"
)

const (
	ReminderTitle = "Time to hydrate"
	ReminderText  = "Drink a glass of water and log it in daywell."
)

// SettingsSource supplies the reminder toggles.
type SettingsSource interface {
	Load() (models.Settings, error)
}

// Notifier delivers a reminder to the user.
type Notifier interface {
	Notify(text string, durationMs int) error
}

// Action is what a reminder trigger did.
type Action string

const (
	ActionSkipped  Action = "skipped"
	ActionNotified Action = "notified"
	ActionLogged   Action = "logged"
)

// Outcome describes one trigger.
type Outcome struct {
	Action Action
	State  models.HydrationState
}

// Reminder is the entry point an external scheduler calls on every interval.
type Reminder struct {
	settings SettingsSource
	tracker  *Tracker
	notifier Notifier
}

func NewReminder(settings SettingsSource, tracker *Tracker, notifier Notifier) *Reminder {
	return &Reminder{
		settings: settings,
		tracker:  tracker,
		notifier: notifier,
	}
}

// Trigger does nothing unless notifications and hydration reminders are both
// on. With logGlass it records one serving through the tracker, otherwise it
// sends a notification.
func (r *Reminder) Trigger(logGlass bool, durationMs int) (Outcome, error) {
	settings, err := r.settings.Load()
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if !settings.RemindersActive() {
		logger.Debug("Reminder skipped", "notifications", settings.NotificationsEnabled, "hydration", settings.HydrationEnabled)
		return Outcome{Action: ActionSkipped}, nil
	}

	if logGlass {
		state, err := r.tracker.LogServing()
		if err != nil {
			return Outcome{}, err
		}
		logger.Debug("Reminder logged one glass", "intake_ml", state.IntakeMl)
		return Outcome{Action: ActionLogged, State: state}, nil
	}

	state, err := r.tracker.Snapshot()
	if err != nil {
		return Outcome{}, err
	}
	text := fmt.Sprintf("%s: %s (%d/%d ml)", ReminderTitle, ReminderText, state.IntakeMl, state.DailyTargetMl)
	if r.notifier == nil {
		return Outcome{}, fmt.Errorf("no notifier configured")
	}
	if err := r.notifier.Notify(text, durationMs); err != nil {
		return Outcome{}, err
	}
	logger.Debug("Reminder sent", "intake_ml", state.IntakeMl)
	return Outcome{Action: ActionNotified, State: state}, nil
}
