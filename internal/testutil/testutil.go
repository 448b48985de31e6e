// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/internal/storage/sqlite"
)

// NewSQLiteStore returns an initialized sqlite store in a temp dir.
func NewSQLiteStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// NewJSONStore returns an initialized JSON file store in a temp dir.
func NewJSONStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

// Clock is a settable clock for tests.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts at noon UTC on date (YYYY-MM-DD).
func NewClock(t *testing.T, date string) *Clock {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad clock date %q: %v", date, err)
	}
	return &Clock{now: d.Add(12 * time.Hour)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to an exact instant.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Today is the clock's date in UTC.
func (c *Clock) Today() string {
	return c.Now().UTC().Format("2006-01-02")
}
