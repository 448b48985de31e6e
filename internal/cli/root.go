package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/daywell/internal/backup"
	"github.com/julianstephens/daywell/internal/errors"
	"github.com/julianstephens/daywell/internal/logger"
	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/internal/storage/backend"
	"github.com/julianstephens/daywell/internal/tracker"
	"github.com/julianstephens/daywell/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Backend backend.Resolved
	Clock   utils.Clock
	Out     io.Writer

	service *tracker.Service
}

// Service returns the tracker for the loaded store with rollover applied.
func (c *Context) Service() (*tracker.Service, error) {
	if c.service == nil {
		svc, err := tracker.New(c.Store, c.Clock)
		if err != nil {
			return nil, err
		}
		c.service = svc
	}
	if err := c.service.EnsureRollover(); err != nil {
		return nil, err
	}
	return c.service, nil
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}

// Writer exposes the command output stream.
func (c *Context) Writer() io.Writer {
	return c.out()
}

// Advise turns a NotFoundError into an advisory message and no error, so a
// stale id never fails the command. Other errors pass through.
func (c *Context) Advise(err error) error {
	if err != nil && errors.IsNotFound(err) {
		c.Printf("ℹ %v, nothing changed\n", err)
		logger.Info("Operation on missing record", "error", err)
		return nil
	}
	return err
}

// PerformAutomaticBackup creates a backup of file-based stores and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if c.Backend.Kind != backend.KindSQLite {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
