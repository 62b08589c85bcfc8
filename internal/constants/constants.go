package constants

import "time"

// Theme represents the display theme preference
type Theme string

const (
	AppName           = "habitflow"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/habitflow/habitflow.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ReadableDateFormat is used when presenting a day to the user
	ReadableDateFormat = "Monday, January 2, 2006"

	// SyncDebounce is the quiet period after the last habit mutation
	// before an automatic sync is dispatched
	SyncDebounce = 2 * time.Second

	// SyncTimeout bounds a single outbound sync request
	SyncTimeout = 30 * time.Second

	// Keyring constants
	KeyringPINUser = "admin-pin"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitflow-"

	// Lockfile written next to the storage file while a process is running
	LockfileName = "habitflow.lock"

	// Themes
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
