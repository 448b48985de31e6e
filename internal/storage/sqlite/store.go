package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/daywell/internal/logger"
	"github.com/julianstephens/daywell/internal/migration"
	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/migrations"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// One writer at a time keeps SQLite from returning SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if s.db == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'daywell init' first")
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) migrationRunner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS), nil
}

func (s *Store) runMigrations() error {
	runner, err := s.migrationRunner()
	if err != nil {
		return err
	}
	_, err = runner.ApplyMigrations(func(msg string) {
		logger.Info(msg)
	})
	return err
}

func (s *Store) validateSchemaVersion() error {
	runner, err := s.migrationRunner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

// Migrate applies pending migrations to an existing database.
func (s *Store) Migrate(logFn func(string)) (int, error) {
	if s.db == nil {
		if err := s.open(); err != nil {
			return 0, err
		}
	}
	runner, err := s.migrationRunner()
	if err != nil {
		return 0, err
	}
	return runner.ApplyMigrations(logFn)
}

// SchemaVersions reports the applied and the newest known schema version.
func (s *Store) SchemaVersions() (current, latest int, err error) {
	if s.db == nil {
		if err := s.open(); err != nil {
			return 0, 0, err
		}
	}
	runner, err := s.migrationRunner()
	if err != nil {
		return 0, 0, err
	}
	if current, err = runner.GetCurrentVersion(); err != nil {
		return 0, 0, err
	}
	if latest, err = runner.GetLatestVersion(); err != nil {
		return 0, 0, err
	}
	return current, latest, nil
}

func (s *Store) Get(p storage.Partition, key string) (string, bool, error) {
	if err := storage.CheckPartition(p); err != nil {
		return "", false, err
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE partition = ? AND key = ?`, string(p), key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s/%s: %w", p, key, err)
	}
	return value, true, nil
}

func (s *Store) Set(p storage.Partition, key, value string) error {
	return s.SetMany(p, map[string]string{key: value})
}

func (s *Store) SetMany(p storage.Partition, values map[string]string) error {
	if err := storage.CheckPartition(p); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO kv (partition, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(partition, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().Format(time.RFC3339)
	for k, v := range values {
		if _, err := stmt.Exec(string(p), k, v, now); err != nil {
			return fmt.Errorf("failed to write %s/%s: %w", p, k, err)
		}
	}

	return tx.Commit()
}

func (s *Store) Delete(p storage.Partition, key string) error {
	if err := storage.CheckPartition(p); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM kv WHERE partition = ? AND key = ?`, string(p), key)
	return err
}

func (s *Store) Keys(p storage.Partition, prefix string) ([]string, error) {
	if err := storage.CheckPartition(p); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT key FROM kv
		WHERE partition = ? AND substr(key, 1, length(?)) = ?
		ORDER BY key`, string(p), prefix, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection.
// Returns nil if the database has not been initialized or loaded.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
