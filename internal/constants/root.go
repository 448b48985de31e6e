package constants

import "time"

const (
	AppName            = "daywell"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/daywell/daywell.db"
	ConnectionEnvVar   = "DAYWELL_DB_CONNECTION"
	KeyringConfigValue = "keyring"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daywell-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "daywell-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.daywell"
	TrayExecutablePrefix   = "daywell-tray"

	// Analytics windows
	WeeklyWindowDays       = 7
	MonthlyWindowDays      = 30
	PositiveMoodThreshold  = 3.0
	MaxAnalyticsWindowDays = 366
)
