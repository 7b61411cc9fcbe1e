package models

import (
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
)

// Habit represents a recurring practice to track
type Habit struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Emoji     string              `json:"emoji,omitempty"`
	Frequency constants.Frequency `json:"frequency"`
	CreatedAt time.Time           `json:"created_at"`
}

// CompletionLog represents a single day's record of a habit. At most one
// exists per (habit, day) pair.
type CompletionLog struct {
	ID          string    `json:"id"`
	HabitID     string    `json:"habit_id"`
	Day         string    `json:"day"` // YYYY-MM-DD format
	CompletedAt time.Time `json:"completed_at"`
}

// ProductivityLog records one finished focus session. Multiple sessions per
// day are expected and summed.
type ProductivityLog struct {
	ID          string    `json:"id"`
	Task        string    `json:"task"`
	Minutes     int       `json:"minutes"`
	Day         string    `json:"day"` // YYYY-MM-DD format
	CompletedAt time.Time `json:"completed_at"`
}
