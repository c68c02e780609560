package constants

const (
	AppName           = "minihab"
	DefaultConfigPath = "~/.config/minihab/minihab.db"
	Version           = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Habit defaults applied when a draft leaves a field empty.
	DefaultFocusMinutes = 3
	DefaultEmoji        = "⭐"
	DefaultThemeColor   = "#FF6B6B"

	// Profile defaults used when the singleton profile is first created.
	DefaultNickname             = "Habit Builder"
	DefaultNotificationsEnabled = true

	// ContributionWindowDays is the default span of the completion log
	// grid, 18 whole weeks.
	ContributionWindowDays = 126
)
