// Package reminders implements the reminder preference commands.
package reminders

import (
	"fmt"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/validation"
)

type RemindersCmd struct {
	Show ShowCmd `cmd:"" help:"Show reminder preferences." default:"1"`
	Set  SetCmd  `cmd:"" help:"Update reminder preferences."`
}

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	prefs := ctx.Store.Reminders(user.ID)
	fmt.Printf("Enabled:         %s\n", onOff(prefs.Enabled))
	fmt.Printf("Time:            %s\n", prefs.Time)
	fmt.Printf("Sound:           %s\n", onOff(prefs.Sound))
	fmt.Printf("Daily challenge: %s\n", onOff(prefs.DailyChallenge))
	return nil
}

type SetCmd struct {
	Enabled        *bool  `help:"Enable or disable reminders." negatable:""`
	Time           string `help:"Reminder time in HH:MM format."`
	Sound          *bool  `help:"Enable or disable reminder sound." negatable:""`
	DailyChallenge *bool  `help:"Enable or disable the daily challenge reminder." negatable:""`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	prefs := ctx.Store.Reminders(user.ID)
	if c.Enabled != nil {
		prefs.Enabled = *c.Enabled
	}
	if c.Time != "" {
		if err := validation.TimeOfDay(c.Time); err != nil {
			return err
		}
		prefs.Time = c.Time
	}
	if c.Sound != nil {
		prefs.Sound = *c.Sound
	}
	if c.DailyChallenge != nil {
		prefs.DailyChallenge = *c.DailyChallenge
	}

	if err := ctx.Store.SaveReminders(user.ID, prefs); err != nil {
		return err
	}
	fmt.Println("Reminder preferences updated.")
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
