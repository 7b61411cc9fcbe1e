// Package stats derives display statistics from fetched logs. Everything
// here is a pure function over its inputs; nothing reads storage or keeps
// state, which keeps the calculations trivially testable.
package stats

import (
	"sort"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/models"
)

// Summary is the aggregate dashboard view for one user.
type Summary struct {
	TotalHabits    int
	CompletedToday int
	CurrentStreak  int
	Points         int
	Level          int
	CompletionRate int
}

// Level converts accumulated points to a level, one level per 500 points
// starting at level 1.
func Level(points int) int {
	return points/constants.PointsPerLevel + 1
}

// HabitStreak counts the consecutive days, ending today, on which the habit
// was completed. A habit done today, yesterday, and the day before scores 3;
// any gap stops the walk. Returns 0 when the habit has no logs or was not
// done today.
func HabitStreak(logs []models.CompletionLog, habitID string, today time.Time) int {
	var days []string
	for _, entry := range logs {
		if entry.HabitID == habitID {
			days = append(days, entry.Day)
		}
	}
	return streakFrom(days, today)
}

// GlobalStreak applies the same walk to the full completion log set: a day
// counts if any habit was completed on it. This is deliberately looser than
// the per-habit streak.
func GlobalStreak(logs []models.CompletionLog, today time.Time) int {
	days := make([]string, 0, len(logs))
	for _, entry := range logs {
		days = append(days, entry.Day)
	}
	return streakFrom(days, today)
}

// streakFrom walks back from today over the unique days, descending, and
// counts while each expected day is present.
func streakFrom(days []string, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(days))
	unique := make([]string, 0, len(days))
	for _, day := range days {
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		unique = append(unique, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(unique)))

	streak := 0
	for i, day := range unique {
		expected := today.AddDate(0, 0, -i).Format(constants.DateFormat)
		if day != expected {
			break
		}
		streak++
	}
	return streak
}

// ForUser computes the aggregate summary: habit count, completions today,
// global streak, points/level from the user record, and the completion rate
// (completed today over total habits, floored to a percentage; 0 when there
// are no habits).
func ForUser(user models.User, habits []models.Habit, logs []models.CompletionLog, today time.Time) Summary {
	day := today.Format(constants.DateFormat)
	completedToday := 0
	for _, entry := range logs {
		if entry.Day == day {
			completedToday++
		}
	}

	rate := 0
	if len(habits) > 0 {
		rate = completedToday * 100 / len(habits)
	}

	return Summary{
		TotalHabits:    len(habits),
		CompletedToday: completedToday,
		CurrentStreak:  GlobalStreak(logs, today),
		Points:         user.Points,
		Level:          user.Level(),
		CompletionRate: rate,
	}
}

// MinutesOn sums focus-session minutes logged on one day.
func MinutesOn(logs []models.ProductivityLog, day string) int {
	total := 0
	for _, entry := range logs {
		if entry.Day == day {
			total += entry.Minutes
		}
	}
	return total
}
