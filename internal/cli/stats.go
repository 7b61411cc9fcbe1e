package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/stats"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	now := time.Now()
	summary := stats.ForUser(user, ctx.Store.Habits(), ctx.Store.CompletionLogs(), now)
	focused := stats.MinutesOn(ctx.Store.ProductivityLogs(), now.Format(constants.DateFormat))

	fmt.Printf("Stats for %s\n\n", user.Email)
	fmt.Printf("Habits:          %d\n", summary.TotalHabits)
	fmt.Printf("Completed today: %d (%d%%)\n", summary.CompletedToday, summary.CompletionRate)
	fmt.Printf("Current streak:  %d days\n", summary.CurrentStreak)
	fmt.Printf("Focused today:   %d minutes\n", focused)
	fmt.Printf("Points:          %d (level %d)\n", summary.Points, summary.Level)
	return nil
}
