// Package clitest builds command contexts for CLI tests.
package clitest

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/prefs"
	"github.com/julianstephens/daywell/internal/storage/backend"
	"github.com/julianstephens/daywell/internal/storage/sqlite"
)

// Now is the fixed instant of contexts built by New.
var Now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// New returns a Context over a fresh sqlite store in UTC, writing output to
// the returned buffer.
func New(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	settings := prefs.Defaults()
	settings.Timezone = "UTC"
	if err := prefs.New(store).Save(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	out := &bytes.Buffer{}
	return &cli.Context{
		Store:   store,
		Backend: backend.Resolved{Conn: dbPath, Kind: backend.KindSQLite, Source: backend.SourceFlag},
		Clock:   func() time.Time { return Now },
		Out:     out,
	}, out
}
