package constants

// Frequency is the advisory cadence label attached to a habit.
type Frequency string

// Difficulty rates a puzzle.
type Difficulty string

// PuzzleType categorizes a puzzle.
type PuzzleType string

const (
	AppName           = "habitkit"
	DefaultKeyringKey = "session"
	DefaultConfigPath = "~/.config/habitkit/habitkit"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage key prefixes. One record per key.
	KeyPrefixHabit     = "habit/"
	KeyPrefixHabitLog  = "habitlog/"
	KeyPrefixProdLog   = "prodlog/"
	KeyPrefixUser      = "user/"
	KeyPrefixReminders = "reminders/"
	KeyPrefixSolved    = "solved/"
	KeySession         = "session"

	// Leveling
	PointsPerLevel = 500

	// ConsolationRatio is the fraction of a puzzle's reward reported for a
	// wrong answer. The award path only pays out on a correct answer.
	ConsolationRatio = 0.3

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitkit-"
	BackupFileSuffix = ".bak"

	// Frequency constants
	FrequencyDaily      Frequency = "daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyTwiceAWeek Frequency = "twice-a-week"

	// Difficulty constants
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	// Puzzle type constants
	PuzzleLogic  PuzzleType = "logic"
	PuzzleTrivia PuzzleType = "trivia"
	PuzzleWord   PuzzleType = "word"
	PuzzleMath   PuzzleType = "math"
)

// Default reminder preferences, applied when a user has none stored.
const (
	DefaultRemindersEnabled       = true
	DefaultReminderTime           = "08:00"
	DefaultReminderSound          = true
	DefaultReminderDailyChallenge = true
)

// Focus timer defaults
const (
	DefaultFocusMinutes = 25
	MaxFocusMinutes     = 240
)

// MaxLogDays caps the habit-log window.
const MaxLogDays = 365
