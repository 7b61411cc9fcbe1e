// Package validation checks user-supplied input before it reaches the
// store. Validation failures are user-visible messages, not internal errors.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/julianstephens/habitkit/internal/constants"
)

const (
	maxHabitNameLen = 100
	maxTaskNameLen  = 200
	minPasswordLen  = 8
)

// HabitName requires a non-empty name of reasonable length.
func HabitName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if len(name) > maxHabitNameLen {
		return fmt.Errorf("habit name too long (max %d characters)", maxHabitNameLen)
	}
	return nil
}

// TaskName requires a non-empty focus task description.
func TaskName(task string) error {
	task = strings.TrimSpace(task)
	if task == "" {
		return fmt.Errorf("task name cannot be empty")
	}
	if len(task) > maxTaskNameLen {
		return fmt.Errorf("task name too long (max %d characters)", maxTaskNameLen)
	}
	return nil
}

// Frequency accepts the advisory cadence labels a habit may carry.
func Frequency(freq string) (constants.Frequency, error) {
	switch constants.Frequency(strings.ToLower(strings.TrimSpace(freq))) {
	case constants.FrequencyDaily:
		return constants.FrequencyDaily, nil
	case constants.FrequencyWeekly:
		return constants.FrequencyWeekly, nil
	case constants.FrequencyTwiceAWeek:
		return constants.FrequencyTwiceAWeek, nil
	}
	return "", fmt.Errorf("invalid frequency %q (expected %s, %s, or %s)",
		freq, constants.FrequencyDaily, constants.FrequencyWeekly, constants.FrequencyTwiceAWeek)
}

// Email requires a parseable, non-empty address.
func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// Password requires at least 8 characters mixing upper, lower, and digits.
func Password(password string) error {
	if len([]rune(password)) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	hasUpper, hasLower, hasDigit := false, false, false
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("password must mix upper case, lower case, and digits")
	}
	return nil
}

// Day parses a YYYY-MM-DD date, defaulting to today when empty.
func Day(value string) (string, error) {
	if value == "" {
		return time.Now().Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, value); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", value)
	}
	return value, nil
}

// TimeOfDay parses an HH:MM time of day.
func TimeOfDay(value string) error {
	if _, err := time.Parse(constants.TimeFormat, value); err != nil {
		return fmt.Errorf("invalid time format: %s (expected HH:MM)", value)
	}
	return nil
}

// FocusMinutes bounds a focus-session length.
func FocusMinutes(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if minutes > constants.MaxFocusMinutes {
		return fmt.Errorf("duration too long (max %d minutes)", constants.MaxFocusMinutes)
	}
	return nil
}

// LogDays bounds the habit-log window.
func LogDays(days int) error {
	if days <= 0 {
		return fmt.Errorf("days must be positive")
	}
	if days > constants.MaxLogDays {
		return fmt.Errorf("too many days (max %d)", constants.MaxLogDays)
	}
	return nil
}
