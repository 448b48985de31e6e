package migration

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyMigrations(t *testing.T) {
	db := openTestDB(t)
	migrationFS := fstest.MapFS{
		"001_init.sql":  {Data: []byte("CREATE TABLE kv (partition TEXT, key TEXT, value TEXT);")},
		"002_index.sql": {Data: []byte("CREATE INDEX idx_kv ON kv (partition);")},
		"README.md":     {Data: []byte("ignored")},
	}
	runner := NewRunner(db, migrationFS)

	var messages []string
	applied, err := runner.ApplyMigrations(func(s string) { messages = append(messages, s) })
	if err != nil {
		t.Fatalf("ApplyMigrations() failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	if len(messages) == 0 {
		t.Error("expected progress messages")
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() failed: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Second run is a no-op.
	applied, err = runner.ApplyMigrations(nil)
	if err != nil || applied != 0 {
		t.Errorf("second ApplyMigrations() = %d, %v; want 0, nil", applied, err)
	}

	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() = %v", err)
	}
}

func TestValidateVersionBehind(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
	})
	if err := runner.ValidateVersion(); !errors.Is(err, ErrSchemaBehind) {
		t.Errorf("ValidateVersion() on fresh database = %v, want ErrSchemaBehind", err)
	}
}

func TestReadMigrationFilesErrors(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{name: "missing underscore", fs: fstest.MapFS{"001.sql": {Data: []byte("")}}},
		{name: "non numeric", fs: fstest.MapFS{"abc_init.sql": {Data: []byte("")}}},
		{name: "zero version", fs: fstest.MapFS{"000_init.sql": {Data: []byte("")}}},
		{name: "duplicate", fs: fstest.MapFS{
			"001_a.sql": {Data: []byte("")},
			"001_b.sql": {Data: []byte("")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(nil, tt.fs)
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Error("ReadMigrationFiles() should fail")
			}
		})
	}
}

func TestFailedMigrationRollsBack(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"001_init.sql":   {Data: []byte("CREATE TABLE ok (id INTEGER);")},
		"002_broken.sql": {Data: []byte("THIS IS NOT SQL;")},
	})

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("ApplyMigrations() should fail on broken migration")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
	version, _ := runner.GetCurrentVersion()
	if version != 1 {
		t.Errorf("version = %d, want 1 after failed migration", version)
	}
}

func TestNewerSchemaIsRejected(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
	})
	if err := runner.EnsureSchemaVersionTable(); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (5)"); err != nil {
		t.Fatal(err)
	}

	if _, err := runner.ApplyMigrations(nil); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("ApplyMigrations() = %v, want ErrSchemaTooNew", err)
	}
	if err := runner.ValidateVersion(); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("ValidateVersion() = %v, want ErrSchemaTooNew", err)
	}
}
