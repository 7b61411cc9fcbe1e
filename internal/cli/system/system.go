// Package system implements maintenance commands: doctor, reset, and
// backups.
package system

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitkit/internal/backup"
	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/keyring"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	// Opening the store already created the storage path; make the backup
	// directory too so the first automatic backup cannot fail on it.
	mgr := backup.NewManager(ctx.Store.ConfigPath())
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		return err
	}

	fmt.Printf("Initialized storage at %s\n", ctx.Store.ConfigPath())
	fmt.Printf("Backups will be kept in %s\n", mgr.BackupDir())
	if !keyring.IsAvailable() {
		fmt.Println("Note: no OS keyring found, sessions will be stored on disk.")
	}
	return nil
}

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Printf("Storage path: %s\n", ctx.Store.ConfigPath())

	habits := ctx.Store.Habits()
	users := ctx.Store.Users()
	completions := ctx.Store.CompletionLogs()
	sessions := ctx.Store.ProductivityLogs()
	fmt.Printf("Records:      %d users, %d habits, %d completions, %d focus sessions\n",
		len(users), len(habits), len(completions), len(sessions))

	if keyring.IsAvailable() {
		fmt.Println("OS keyring:   available")
	} else {
		fmt.Println("OS keyring:   unavailable (session falls back to the store)")
	}

	user, err := ctx.Store.CurrentUser()
	if err != nil {
		return err
	}
	if user != nil {
		fmt.Printf("Session:      %s\n", user.Email)
	} else {
		fmt.Println("Session:      none")
	}

	mgr := backup.NewManager(ctx.Store.ConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	fmt.Printf("Backups:      %d in %s\n", len(backups), mgr.BackupDir())
	return nil
}

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		var confirmed bool
		err := huh.NewConfirm().
			Title("Erase all data?").
			Description("Every habit, log, account, and preference will be deleted.").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.EraseAll(); err != nil {
		return err
	}
	fmt.Println("All data erased.")
	return nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.ConfigPath())
	path, err := mgr.Create(ctx.Store.Backend())
	if err != nil {
		return err
	}
	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.ConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  (%d bytes)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), b.Path, b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" optional:"" help:"Backup file to restore (default: most recent)."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.ConfigPath())

	path := c.Path
	if path == "" {
		backups, err := mgr.List()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			return fmt.Errorf("no backups available")
		}
		path = backups[0].Path
	}

	// Snapshot current state first so a bad restore is recoverable.
	ctx.PerformAutomaticBackup()

	if err := mgr.Restore(ctx.Store.Backend(), path); err != nil {
		return err
	}
	fmt.Printf("Restored from %s\n", path)
	return nil
}
