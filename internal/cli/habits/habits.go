// Package habits implements the habit tracking commands.
package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/stats"
	"github.com/julianstephens/habitkit/internal/validation"
)

type HabitCmd struct {
	Add    AddCmd    `cmd:"" help:"Add a new habit."`
	List   ListCmd   `cmd:"" help:"List habits."`
	Done   DoneCmd   `cmd:"" help:"Mark a habit as done for a day."`
	Remove RemoveCmd `cmd:"" help:"Remove a habit and its history."`
	Today  TodayCmd  `cmd:"" help:"Show today's habit status."`
	Log    LogCmd    `cmd:"" help:"Show habit log (ASCII history)."`
	Streak StreakCmd `cmd:"" help:"Show a habit's current streak."`
}

type AddCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Emoji     string `help:"Display emoji." default:""`
	Frequency string `help:"Cadence label: daily, weekly, or twice-a-week." default:"daily"`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := validation.HabitName(c.Name); err != nil {
		return err
	}
	freq, err := validation.Frequency(c.Frequency)
	if err != nil {
		return err
	}

	// Duplicate names make `habit done <name>` ambiguous.
	if _, err := ctx.Store.HabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit, err := ctx.Store.AddHabit(c.Name, c.Emoji, freq)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", formatHabit(habit))
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	logs := ctx.Store.CompletionLogs()
	today := time.Now()
	for _, habit := range habits {
		streak := stats.HabitStreak(logs, habit.ID, today)
		fmt.Printf("%s (%s, streak %d)\n", formatHabit(habit), habit.Frequency, streak)
	}
	return nil
}

type DoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.HabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day, err := validation.Day(c.Date)
	if err != nil {
		return err
	}

	inserted, err := ctx.Store.LogCompletion(habit.ID, day)
	if err != nil {
		return err
	}
	if !inserted {
		fmt.Printf("Habit %q was already logged for %s\n", c.Name, day)
		return nil
	}

	fmt.Printf("Marked habit %q done for %s\n", c.Name, day)
	return nil
}

type RemoveCmd struct {
	Name string `arg:"" help:"Habit name to remove."`
}

func (c *RemoveCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.HabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.RemoveHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Removed habit %q and its history\n", c.Name)
	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := time.Now().Format(constants.DateFormat)
	fmt.Printf("Habits for %s:\n\n", today)

	done := 0
	for _, habit := range habits {
		status := "[ ]"
		if ctx.Store.CompletedOn(habit.ID, today) {
			status = "[x]"
			done++
		}
		fmt.Printf("%s %s\n", status, formatHabit(habit))
	}

	fmt.Printf("\nCompleted: %d/%d\n", done, len(habits))
	return nil
}

type LogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for specific habit only."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	if err := validation.LogDays(c.Days); err != nil {
		return err
	}

	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	if c.Habit != "" {
		habit, err := ctx.Store.HabitByName(c.Habit)
		if err != nil {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		habits = []models.Habit{habit}
	}

	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	// Header with dates
	fmt.Print(strings.Repeat(" ", nameWidth))
	for i := 0; i < c.Days; i++ {
		fmt.Printf(" %5s", startDay.AddDate(0, 0, i).Format("01/02"))
	}
	fmt.Println()
	fmt.Print(strings.Repeat("-", nameWidth+6*c.Days))
	fmt.Println()

	for _, habit := range habits {
		fmt.Print(padName(habit.Name))

		entryMap := make(map[string]bool)
		for _, entry := range ctx.Store.CompletionLogsForHabit(habit.ID) {
			entryMap[entry.Day] = true
		}

		for i := 0; i < c.Days; i++ {
			day := startDay.AddDate(0, 0, i).Format(constants.DateFormat)
			if entryMap[day] {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}

type StreakCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.HabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	streak := stats.HabitStreak(ctx.Store.CompletionLogs(), habit.ID, time.Now())
	switch streak {
	case 0:
		fmt.Printf("No streak for %q yet. Complete it today to start one!\n", c.Name)
	case 1:
		fmt.Printf("%q: 1 day streak\n", c.Name)
	default:
		fmt.Printf("%q: %d day streak\n", c.Name, streak)
	}
	return nil
}

const nameWidth = 20

// padName truncates and pads a habit name to the log grid's name column,
// measuring display width so multibyte names keep the columns aligned.
func padName(name string) string {
	return runewidth.FillRight(runewidth.Truncate(name, nameWidth, "..."), nameWidth)
}

func formatHabit(h models.Habit) string {
	if h.Emoji != "" {
		return h.Emoji + " " + h.Name
	}
	return h.Name
}
