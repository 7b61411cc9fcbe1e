package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/cli/auth"
	"github.com/julianstephens/habitkit/internal/cli/focus"
	"github.com/julianstephens/habitkit/internal/cli/habits"
	"github.com/julianstephens/habitkit/internal/cli/puzzles"
	"github.com/julianstephens/habitkit/internal/cli/reminders"
	"github.com/julianstephens/habitkit/internal/cli/system"
	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/errs"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A directory opens the Badger backend, a .db file SQLite, a .json file the flat-file backend." default:"~/.config/habitkit/habitkit"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init      system.InitCmd         `cmd:"" help:"Initialize the storage and backup directories."`
	Signup    auth.SignupCmd         `cmd:"" help:"Create an account (and log in)."`
	Login     auth.LoginCmd          `cmd:"" help:"Log in."`
	Logout    auth.LogoutCmd         `cmd:"" help:"Log out."`
	Whoami    auth.WhoamiCmd         `cmd:"" help:"Show the active account."`
	Habit     habits.HabitCmd        `cmd:"" help:"Manage habits and daily check-ins."`
	Focus     focus.FocusCmd         `cmd:"" help:"Run and review focus sessions."`
	Puzzle    puzzles.PuzzleCmd      `cmd:"" help:"Solve puzzles for reward points."`
	Stats     cli.StatsCmd           `cmd:"" help:"Show your dashboard summary."`
	Reminders reminders.RemindersCmd `cmd:"" help:"Manage reminder preferences."`
	Doctor    system.DoctorCmd       `cmd:"" help:"Run health checks and diagnostics."`
	Reset     system.ResetCmd        `cmd:"" help:"Erase all data."`
	Backup    struct {
		Create  system.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    system.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore system.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-first habit tracker with focus sessions and daily puzzles"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	path := expandPath(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(strings.TrimRight(path, string(os.PathSeparator))),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	st, err := store.Open(path)
	if err != nil {
		errs.Fatal(err)
	}

	appCtx := &cli.Context{Store: st}

	err = ctx.Run(appCtx)
	if closeErr := st.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	errs.Fatal(err)
}

// expandPath resolves a leading ~ against the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
