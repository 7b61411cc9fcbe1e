// Package focus implements the focus-session commands: an interactive
// countdown plus log views over past sessions.
package focus

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/stats"
	"github.com/julianstephens/habitkit/internal/tui"
	timerpkg "github.com/julianstephens/habitkit/internal/timer"
	"github.com/julianstephens/habitkit/internal/validation"
)

type FocusCmd struct {
	Start StartCmd `cmd:"" help:"Run a focus session countdown." default:"withargs"`
	Log   LogCmd   `cmd:"" help:"List logged focus sessions."`
	Today TodayCmd `cmd:"" help:"Show today's focused minutes."`
}

type StartCmd struct {
	Task    string `arg:"" help:"What you are focusing on."`
	Minutes int    `help:"Session length in minutes." default:"25"`
}

func (c *StartCmd) Run(ctx *cli.Context) error {
	if err := validation.TaskName(c.Task); err != nil {
		return err
	}
	if err := validation.FocusMinutes(c.Minutes); err != nil {
		return err
	}

	session, err := tui.RunFocus(c.Task, c.Minutes)
	if err != nil {
		return err
	}

	now := time.Now()
	if session.State(now) != timerpkg.StateDone {
		fmt.Println("Session cancelled, nothing logged.")
		return nil
	}

	day := now.Format(constants.DateFormat)
	entry, err := ctx.Store.LogProductivity(session.Task, session.CompletedMinutes(now), day)
	if err != nil {
		return err
	}

	fmt.Printf("Focus session complete: %s (%d minutes)\n", entry.Task, entry.Minutes)
	return nil
}

type LogCmd struct {
	Limit int `help:"Maximum number of sessions to show." default:"20"`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	logs := ctx.Store.ProductivityLogs()
	if len(logs) == 0 {
		fmt.Println("No focus sessions logged yet.")
		return nil
	}

	if c.Limit > 0 && len(logs) > c.Limit {
		logs = logs[:c.Limit]
	}

	for _, entry := range logs {
		fmt.Printf("%s  %-30s %3d min  (%s)\n",
			entry.Day, entry.Task, entry.Minutes,
			entry.CompletedAt.Format("15:04"))
	}
	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	day := time.Now().Format(constants.DateFormat)
	logs := ctx.Store.ProductivityLogsForDay(day)
	total := stats.MinutesOn(logs, day)

	if len(logs) == 0 {
		fmt.Println("No focus sessions today.")
		return nil
	}

	for _, entry := range logs {
		fmt.Printf("%-30s %3d min\n", entry.Task, entry.Minutes)
	}
	fmt.Printf("\nTotal: %d minutes across %d sessions\n", total, len(logs))
	return nil
}
