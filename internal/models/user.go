package models

import (
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
)

// User is a local account. The password is stored as a bcrypt hash; the
// plaintext never touches the store.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	Points       int       `json:"points"`
}

// Level is derived from accumulated points, one level per 500 points
// starting at level 1. It is never persisted.
func (u User) Level() int {
	return u.Points/constants.PointsPerLevel + 1
}

// Reminders holds a user's reminder preferences.
type Reminders struct {
	Enabled        bool   `json:"enabled"`
	Time           string `json:"time"` // HH:MM format
	Sound          bool   `json:"sound"`
	DailyChallenge bool   `json:"daily_challenge"`
}

// DefaultReminders returns the preferences applied when a user has none stored.
func DefaultReminders() Reminders {
	return Reminders{
		Enabled:        constants.DefaultRemindersEnabled,
		Time:           constants.DefaultReminderTime,
		Sound:          constants.DefaultReminderSound,
		DailyChallenge: constants.DefaultReminderDailyChallenge,
	}
}
