package constants

const (
	// Settings partition keys
	SettingNotificationsEnabled = "notifications_enabled"
	SettingHydrationEnabled     = "hydration_enabled"
	SettingHydrationInterval    = "hydration_interval"
	SettingDarkMode             = "dark_mode"
	SettingTimezone             = "timezone"

	// Default Settings Values
	DefaultNotificationsEnabled = false
	DefaultHydrationEnabled     = false
	DefaultHydrationIntervalMin = 60
	DefaultDarkMode             = false
	DefaultTimezone             = "Local" // Use system local timezone by default
)

// HydrationIntervalsMin lists the reminder intervals a user may pick.
var HydrationIntervalsMin = []int{15, 30, 60, 120}
