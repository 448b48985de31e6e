// Package hydration tracks daily water intake against a target.
package hydration

import (
	"fmt"
	"strconv"
	"time"

	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/errors"
	"github.com/julianstephens/daywell/internal/logger"
	"github.com/julianstephens/daywell/internal/models"
	"github.com/julianstephens/daywell/internal/rollover"
	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/internal/utils"
)

type Tracker struct {
	provider storage.Provider
	clock    utils.Clock
	loc      *time.Location
}

func New(provider storage.Provider, clock utils.Clock, loc *time.Location) *Tracker {
	if loc == nil {
		loc = time.Local
	}
	return &Tracker{
		provider: provider,
		clock:    clock,
		loc:      loc,
	}
}

func (t *Tracker) Name() string { return "hydration" }

func (t *Tracker) Marker() (storage.Partition, string) {
	return storage.PartitionSettings, constants.KeyHydrationLastDate
}

// ResetForNewDay zeroes the intake counter.
func (t *Tracker) ResetForNewDay(today string) (map[string]string, error) {
	return map[string]string{constants.KeyHydrationIntake: "0"}, nil
}

func (t *Tracker) ensureToday() error {
	_, err := rollover.Apply(t.provider, t, utils.Today(t.clock, t.loc))
	return err
}

// Snapshot returns today's state after applying rollover.
func (t *Tracker) Snapshot() (models.HydrationState, error) {
	if err := t.ensureToday(); err != nil {
		return models.HydrationState{}, err
	}
	return t.read()
}

// AddIntake adds amountMl, clamped so intake never exceeds the target.
func (t *Tracker) AddIntake(amountMl int) (models.HydrationState, error) {
	if amountMl <= 0 {
		return models.HydrationState{}, errors.Validation("amount", "intake must be a positive number of ml, got %d", amountMl)
	}

	state, err := t.Snapshot()
	if err != nil {
		return models.HydrationState{}, err
	}

	state.IntakeMl = addClamped(state.IntakeMl, amountMl, state.DailyTargetMl)
	if err := t.provider.Set(storage.PartitionSettings, constants.KeyHydrationIntake, strconv.Itoa(state.IntakeMl)); err != nil {
		return models.HydrationState{}, fmt.Errorf("failed to save intake: %w", err)
	}

	logger.Debug("Added water intake", "amount_ml", amountMl, "intake_ml", state.IntakeMl)
	return state, nil
}

// LogServing adds one 200 ml glass.
func (t *Tracker) LogServing() (models.HydrationState, error) {
	return t.AddIntake(constants.GlassMl)
}

// SetDailyTarget changes the target. Intake above the new target is lowered to it.
func (t *Tracker) SetDailyTarget(ml int) (models.HydrationState, error) {
	if ml < constants.MinHydrationTargetMl {
		return models.HydrationState{}, errors.Validation("target", "daily target must be at least %d ml, got %d", constants.MinHydrationTargetMl, ml)
	}

	state, err := t.Snapshot()
	if err != nil {
		return models.HydrationState{}, err
	}
	state.DailyTargetMl = ml
	state.IntakeMl = clamp(state.IntakeMl, ml)

	err = t.provider.SetMany(storage.PartitionSettings, map[string]string{
		constants.KeyHydrationDailyTarget: strconv.Itoa(state.DailyTargetMl),
		constants.KeyHydrationIntake:      strconv.Itoa(state.IntakeMl),
	})
	if err != nil {
		return models.HydrationState{}, fmt.Errorf("failed to save daily target: %w", err)
	}
	return state, nil
}

// ResetToday zeroes intake and re-stamps the reset date.
func (t *Tracker) ResetToday() (models.HydrationState, error) {
	today := utils.Today(t.clock, t.loc)
	err := t.provider.SetMany(storage.PartitionSettings, map[string]string{
		constants.KeyHydrationIntake:   "0",
		constants.KeyHydrationLastDate: today,
	})
	if err != nil {
		return models.HydrationState{}, fmt.Errorf("failed to reset intake: %w", err)
	}
	return t.read()
}

func (t *Tracker) read() (models.HydrationState, error) {
	target, err := t.readInt(constants.KeyHydrationDailyTarget, constants.DefaultHydrationTargetMl)
	if err != nil {
		return models.HydrationState{}, err
	}
	if target < constants.MinHydrationTargetMl {
		logger.Warn("Stored hydration target below minimum, using default", "value", target)
		target = constants.DefaultHydrationTargetMl
	}

	intake, err := t.readInt(constants.KeyHydrationIntake, 0)
	if err != nil {
		return models.HydrationState{}, err
	}

	last, _, err := t.provider.Get(storage.PartitionSettings, constants.KeyHydrationLastDate)
	if err != nil {
		return models.HydrationState{}, err
	}

	return models.HydrationState{
		DailyTargetMl: target,
		IntakeMl:      clamp(intake, target),
		LastResetDate: last,
	}, nil
}

func (t *Tracker) readInt(key string, def int) (int, error) {
	raw, ok, err := t.provider.Get(storage.PartitionSettings, key)
	if err != nil || !ok {
		return def, err
	}
	v, perr := strconv.Atoi(raw)
	if perr != nil {
		errors.Recovered(string(storage.PartitionSettings), key, perr)
		return def, nil
	}
	return v, nil
}

// addClamped adds amount to intake without overflowing past target.
func addClamped(intake, amount, target int) int {
	if amount >= target-intake {
		return target
	}
	return clamp(intake+amount, target)
}

func clamp(intake, target int) int {
	if intake < 0 {
		return 0
	}
	if intake > target {
		return target
	}
	return intake
}
