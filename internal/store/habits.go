package store

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/errs"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
)

// Habits returns all habits ordered by creation time.
func (s *Store) Habits() []models.Habit {
	var habits []models.Habit
	s.scan(constants.KeyPrefixHabit, func(key, raw string) {
		var h models.Habit
		if err := json.Unmarshal([]byte(raw), &h); err != nil {
			logger.Warn("Skipping corrupt habit record", "key", key, "error", err)
			return
		}
		habits = append(habits, h)
	})
	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})
	return habits
}

// Habit returns a single habit by ID.
func (s *Store) Habit(id string) (models.Habit, error) {
	var h models.Habit
	ok, err := s.getJSON(constants.KeyPrefixHabit+id, &h)
	if err != nil {
		return models.Habit{}, err
	}
	if !ok {
		return models.Habit{}, errs.ErrNotFound
	}
	return h, nil
}

// HabitByName returns the first habit with the given name.
func (s *Store) HabitByName(name string) (models.Habit, error) {
	for _, h := range s.Habits() {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, errs.ErrNotFound
}

// AddHabit creates a habit, assigning its ID and creation timestamp.
func (s *Store) AddHabit(name, emoji string, freq constants.Frequency) (models.Habit, error) {
	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Emoji:     emoji,
		Frequency: freq,
		CreatedAt: time.Now(),
	}
	if err := s.putJSON(constants.KeyPrefixHabit+habit.ID, habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// UpdateHabit overwrites an existing habit record.
func (s *Store) UpdateHabit(habit models.Habit) error {
	if _, err := s.Habit(habit.ID); err != nil {
		return err
	}
	return s.putJSON(constants.KeyPrefixHabit+habit.ID, habit)
}

// RemoveHabit deletes a habit and all of its completion logs.
func (s *Store) RemoveHabit(id string) error {
	if _, err := s.Habit(id); err != nil {
		return err
	}
	if err := s.backend.Delete(constants.KeyPrefixHabit + id); err != nil {
		return err
	}
	keys, err := s.backend.Keys(constants.KeyPrefixHabitLog + id + "/")
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := s.backend.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// LogCompletion records a habit as done for a day. It reports whether a new
// entry was inserted: logging the same (habit, day) twice is a no-op and
// returns false. This is the one idempotence guarantee in the system.
func (s *Store) LogCompletion(habitID, day string) (bool, error) {
	key := completionKey(habitID, day)
	if _, ok, err := s.backend.Get(key); err != nil {
		return false, err
	} else if ok {
		return false, nil
	}

	entry := models.CompletionLog{
		ID:          uuid.New().String(),
		HabitID:     habitID,
		Day:         day,
		CompletedAt: time.Now(),
	}
	if err := s.putJSON(key, entry); err != nil {
		return false, err
	}
	return true, nil
}

// CompletedOn reports whether the habit has a completion log for the day.
func (s *Store) CompletedOn(habitID, day string) bool {
	_, ok, err := s.backend.Get(completionKey(habitID, day))
	if err != nil {
		logger.Warn("Failed to read completion log", "habit", habitID, "day", day, "error", err)
		return false
	}
	return ok
}

// CompletionLogs returns every completion log across all habits.
func (s *Store) CompletionLogs() []models.CompletionLog {
	return s.completionLogs(constants.KeyPrefixHabitLog)
}

// CompletionLogsForHabit returns the completion logs of one habit.
func (s *Store) CompletionLogsForHabit(habitID string) []models.CompletionLog {
	return s.completionLogs(constants.KeyPrefixHabitLog + habitID + "/")
}

func (s *Store) completionLogs(prefix string) []models.CompletionLog {
	var logs []models.CompletionLog
	s.scan(prefix, func(key, raw string) {
		var entry models.CompletionLog
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			logger.Warn("Skipping corrupt completion log", "key", key, "error", err)
			return
		}
		logs = append(logs, entry)
	})
	return logs
}

func completionKey(habitID, day string) string {
	return constants.KeyPrefixHabitLog + habitID + "/" + day
}
