package cli

import (
	"github.com/julianstephens/habitkit/internal/backup"
	"github.com/julianstephens/habitkit/internal/errs"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/store"
)

// Context is passed to every command's Run method.
type Context struct {
	Store *store.Store
}

// RequireUser returns the active session's account or ErrNotLoggedIn.
func (c *Context) RequireUser() (models.User, error) {
	user, err := c.Store.CurrentUser()
	if err != nil {
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, errs.ErrNotLoggedIn
	}
	return *user, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.ConfigPath())
	if _, err := mgr.Create(c.Store.Backend()); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
