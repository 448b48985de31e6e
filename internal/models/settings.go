package models

// Settings represents the user's feature toggles
type Settings struct {
	NotificationsEnabled bool   `json:"notifications_enabled" yaml:"notifications_enabled"` // master switch for reminders
	HydrationEnabled     bool   `json:"hydration_enabled" yaml:"hydration_enabled"`         // hydration reminders on/off
	HydrationIntervalMin int    `json:"hydration_interval" yaml:"hydration_interval"`       // minutes between reminders
	DarkMode             bool   `json:"dark_mode" yaml:"dark_mode"`                         // TUI theme
	Timezone             string `json:"timezone" yaml:"timezone"`                           // IANA timezone name, or "Local"
}

// RemindersActive reports whether the reminder trigger should act.
func (s Settings) RemindersActive() bool {
	return s.NotificationsEnabled && s.HydrationEnabled
}
