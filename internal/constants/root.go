package constants

const (
	AppName           = "lifeadvance"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/lifeadvance/config.toml"
	DefaultDataPath   = "~/.config/lifeadvance/lifeadvance.db"
	LogDirName        = "logs"
	LogFileName       = "lifeadvance.log"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is used for timestamps shown to the user
	DateTimeFormat = "2006-01-02 15:04"

	// Storage keys, one per independently persisted collection
	KeyGoals                  = "goals"
	KeyHabits                 = "habits"
	KeyArticles               = "articles"
	KeyHobbyEntries           = "hobby_entries"
	KeyHasCompletedOnboarding = "has_completed_onboarding"

	// Backend names accepted by --backend and the config file
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
	BackendMemory = "memory"

	// DefaultCompletionWindowDays is the trailing window used for habit completion rates
	DefaultCompletionWindowDays = 30

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lifeadvance-"
	BackupFileSuffix = ".db"
)

// StorageKeys lists every key cleared by a full reset.
var StorageKeys = []string{
	KeyGoals,
	KeyHabits,
	KeyArticles,
	KeyHobbyEntries,
	KeyHasCompletedOnboarding,
}
