// Package prefs reads and writes user Settings in the settings partition.
package prefs

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/errors"
	"github.com/julianstephens/daywell/internal/logger"
	"github.com/julianstephens/daywell/internal/models"
	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/internal/utils"
)

type Store struct {
	provider storage.Provider
}

func New(provider storage.Provider) *Store {
	return &Store{provider: provider}
}

// Defaults returns the settings used when nothing has been saved.
func Defaults() models.Settings {
	return models.Settings{
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		HydrationEnabled:     constants.DefaultHydrationEnabled,
		HydrationIntervalMin: constants.DefaultHydrationIntervalMin,
		DarkMode:             constants.DefaultDarkMode,
		Timezone:             constants.DefaultTimezone,
	}
}

// Load reads every setting. Missing or unparsable values take their default.
func (s *Store) Load() (models.Settings, error) {
	settings := Defaults()

	var err error
	if settings.NotificationsEnabled, err = s.getBool(constants.SettingNotificationsEnabled, settings.NotificationsEnabled); err != nil {
		return settings, err
	}
	if settings.HydrationEnabled, err = s.getBool(constants.SettingHydrationEnabled, settings.HydrationEnabled); err != nil {
		return settings, err
	}
	if settings.DarkMode, err = s.getBool(constants.SettingDarkMode, settings.DarkMode); err != nil {
		return settings, err
	}

	interval, err := s.getInt(constants.SettingHydrationInterval, settings.HydrationIntervalMin)
	if err != nil {
		return settings, err
	}
	if ValidateInterval(interval) != nil {
		logger.Warn("Ignoring unsupported hydration interval", "value", interval)
	} else {
		settings.HydrationIntervalMin = interval
	}

	tz, ok, err := s.provider.Get(storage.PartitionSettings, constants.SettingTimezone)
	if err != nil {
		return settings, err
	}
	if ok {
		if utils.ValidateTimezone(tz) {
			settings.Timezone = tz
		} else {
			logger.Warn("Ignoring invalid timezone", "value", tz)
		}
	}

	return settings, nil
}

// Save validates and writes all settings in one commit.
func (s *Store) Save(settings models.Settings) error {
	if err := ValidateInterval(settings.HydrationIntervalMin); err != nil {
		return err
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return errors.Validation("timezone", "unknown timezone %q", settings.Timezone)
	}

	return s.provider.SetMany(storage.PartitionSettings, map[string]string{
		constants.SettingNotificationsEnabled: strconv.FormatBool(settings.NotificationsEnabled),
		constants.SettingHydrationEnabled:     strconv.FormatBool(settings.HydrationEnabled),
		constants.SettingHydrationInterval:    strconv.Itoa(settings.HydrationIntervalMin),
		constants.SettingDarkMode:             strconv.FormatBool(settings.DarkMode),
		constants.SettingTimezone:             settings.Timezone,
	})
}

// ValidateInterval accepts only the reminder intervals offered to the user.
func ValidateInterval(minutes int) error {
	if !slices.Contains(constants.HydrationIntervalsMin, minutes) {
		return errors.Validation("hydration interval", "%d minutes is not one of %v", minutes, constants.HydrationIntervalsMin)
	}
	return nil
}

// Location resolves the configured timezone.
func Location(settings models.Settings) (*time.Location, error) {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	return loc, nil
}

func (s *Store) getBool(key string, def bool) (bool, error) {
	raw, ok, err := s.provider.Get(storage.PartitionSettings, key)
	if err != nil || !ok {
		return def, err
	}
	v, perr := strconv.ParseBool(raw)
	if perr != nil {
		errors.Recovered(string(storage.PartitionSettings), key, perr)
		return def, nil
	}
	return v, nil
}

func (s *Store) getInt(key string, def int) (int, error) {
	raw, ok, err := s.provider.Get(storage.PartitionSettings, key)
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
