// Package migration applies the numbered NNN_name.sql files embedded with
// each SQL backend and tracks the applied version in schema_version.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrSchemaTooNew means the database was written by a newer daywell.
	ErrSchemaTooNew = errors.New("database schema is newer than this build supports")
	// ErrSchemaBehind means migrations are pending.
	ErrSchemaBehind = errors.New("database schema is behind")
)

type Migration struct {
	Version int
	Name    string
	SQL     string
}

type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

func (d Dialect) setVersionSQL() string {
	if d == DialectPostgres {
		return "INSERT INTO schema_version (version) VALUES ($1)"
	}
	return "INSERT INTO schema_version (version) VALUES (?)"
}

type Runner struct {
	db      *sql.DB
	fs      fs.FS
	dialect Dialect
}

func NewRunner(db *sql.DB, migrationFS fs.FS) *Runner {
	return NewRunnerWithDialect(db, migrationFS, DialectSQLite)
}

func NewRunnerWithDialect(db *sql.DB, migrationFS fs.FS, dialect Dialect) *Runner {
	return &Runner{db: db, fs: migrationFS, dialect: dialect}
}

func (r *Runner) EnsureSchemaVersionTable() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`)
	return err
}

// GetCurrentVersion is 0 for a database no migration has touched.
func (r *Runner) GetCurrentVersion() (int, error) {
	if err := r.EnsureSchemaVersionTable(); err != nil {
		return 0, fmt.Errorf("failed to ensure schema_version table: %w", err)
	}
	var version int
	switch err := r.db.QueryRow("SELECT version FROM schema_version").Scan(&version); {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// parseName splits "007_add_moods.sql" into 7 and "add_moods".
func parseName(filename string) (int, string, error) {
	prefix, name, ok := strings.Cut(strings.TrimSuffix(filename, ".sql"), "_")
	if !ok {
		return 0, "", fmt.Errorf("invalid migration filename %s (expected NNN_name.sql)", filename)
	}
	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, "", fmt.Errorf("invalid version in migration filename %s: %w", filename, err)
	}
	if version < 1 {
		return 0, "", fmt.Errorf("invalid version in migration filename %s: must be at least 1", filename)
	}
	return version, name, nil
}

// ReadMigrationFiles returns the .sql files sorted by version. Other files
// are ignored.
func (r *Runner) ReadMigrationFiles() ([]Migration, error) {
	entries, err := fs.ReadDir(r.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var out []Migration
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".sql" {
			continue
		}
		version, name, err := parseName(e.Name())
		if err != nil {
			return nil, err
		}
		body, err := fs.ReadFile(r.fs, e.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", e.Name(), err)
		}
		out = append(out, Migration{Version: version, Name: name, SQL: string(body)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	for i := 1; i < len(out); i++ {
		if out[i].Version == out[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", out[i].Version)
		}
	}
	return out, nil
}

func (r *Runner) GetLatestVersion() (int, error) {
	migrations, err := r.ReadMigrationFiles()
	if err != nil || len(migrations) == 0 {
		return 0, err
	}
	return migrations[len(migrations)-1].Version, nil
}

// apply runs one migration and records its version in the same transaction.
func (r *Runner) apply(m Migration) (err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(m.SQL); err != nil {
		return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
	}
	if _, err = tx.Exec("DELETE FROM schema_version"); err != nil {
		return fmt.Errorf("failed to clear schema version in migration %d: %w", m.Version, err)
	}
	if _, err = tx.Exec(r.dialect.setVersionSQL(), m.Version); err != nil {
		return fmt.Errorf("failed to record schema version %d: %w", m.Version, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}

// ApplyMigrations runs every pending migration in order and returns how many
// succeeded. A failure stops at the failing migration; earlier ones stay applied.
func (r *Runner) ApplyMigrations(logFn func(string)) (int, error) {
	if logFn == nil {
		logFn = func(string) {}
	}

	current, err := r.GetCurrentVersion()
	if err != nil {
		return 0, err
	}
	migrations, err := r.ReadMigrationFiles()
	if err != nil {
		return 0, err
	}
	if len(migrations) == 0 {
		logFn("No migration files found")
		return 0, nil
	}

	latest := migrations[len(migrations)-1].Version
	if current > latest {
		return 0, fmt.Errorf("%w: version %d, supported %d; upgrade daywell", ErrSchemaTooNew, current, latest)
	}

	var pending []Migration
	for _, m := range migrations {
		if m.Version > current {
			pending = append(pending, m)
		}
	}
	if len(pending) == 0 {
		logFn(fmt.Sprintf("Database schema is up to date (version %d)", current))
		return 0, nil
	}

	logFn(fmt.Sprintf("Applying %d migration(s) from version %d to %d", len(pending), current, latest))
	start := time.Now()
	for i, m := range pending {
		if err := r.apply(m); err != nil {
			return i, err
		}
		logFn(fmt.Sprintf("  ✓ Migration %d (%s) applied", m.Version, m.Name))
	}
	logFn(fmt.Sprintf("Applied %d migration(s) in %v", len(pending), time.Since(start)))
	return len(pending), nil
}

// ValidateVersion fails unless the database is exactly at the latest version.
func (r *Runner) ValidateVersion() error {
	current, err := r.GetCurrentVersion()
	if err != nil {
		return err
	}
	latest, err := r.GetLatestVersion()
	if err != nil {
		return err
	}
	switch {
	case current > latest:
		return fmt.Errorf("%w: version %d, supported %d; upgrade daywell", ErrSchemaTooNew, current, latest)
	case current < latest:
		return fmt.Errorf("%w: version %d, latest %d; run 'daywell migrate'", ErrSchemaBehind, current, latest)
	}
	return nil
}
