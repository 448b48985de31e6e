package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/logger"
	"github.com/julianstephens/daywell/internal/migration"
	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/migrations"
)

type Store struct {
	connStr string
	db      *sql.DB
}

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

func New(connStr string) *Store {
	s := &Store{
		connStr: connStr,
	}
	s.ensureSearchPath()
	return s
}

// ensureSearchPath pins the session to the application schema unless the
// caller already chose one.
func (s *Store) ensureSearchPath() {
	if isURL(s.connStr) {
		u, err := url.Parse(s.connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
			s.connStr = u.String()
		}
		return
	}
	if !hasDSNParam(s.connStr, "search_path") {
		s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
	}
}

func isURL(connStr string) bool {
	return strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://")
}

// hasDSNParam reports whether a space-separated key=value DSN sets name.
func hasDSNParam(connStr, name string) bool {
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), name) {
			return true
		}
	}
	return false
}

func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}
	return hasDSNParam(connStr, "sslmode")
}

// ValidateConnString checks that connStr is a PostgreSQL URI or DSN and that
// it carries no password. Credentials belong in the OS keyring or ~/.pgpass.
func ValidateConnString(connStr string) (bool, error) {
	if strings.TrimSpace(connStr) == "" {
		return false, fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return false, fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if isURL(connStr) {
		parsedURL, err := url.Parse(connStr)
		if err != nil {
			return false, fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}
		if _, isSet := parsedURL.User.Password(); isSet {
			return false, ErrEmbeddedCredentials
		}
		if parsedURL.Host == "" && parsedURL.User == nil && (parsedURL.Path == "" || parsedURL.Path == "/") {
			return false, fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
		return true, nil
	}

	if hasDSNParam(connStr, "password") {
		return false, ErrEmbeddedCredentials
	}
	return true, nil
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

func (s *Store) ping() error {
	if err := s.db.Ping(); err != nil {
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

func (s *Store) Init() error {
	db, err := s.open()
	if err != nil {
		return err
	}

	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + constants.AppName); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db

	if err := s.ping(); err != nil {
		return err
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

	db, err := s.open()
	if err != nil {
		return err
	}
	s.db = db

	if err := s.ping(); err != nil {
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
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunnerWithDialect(s.db, subFS, migration.DialectPostgres), nil
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

// Migrate applies pending migrations.
func (s *Store) Migrate(logFn func(string)) (int, error) {
	if s.db == nil {
		db, err := s.open()
		if err != nil {
			return 0, err
		}
		s.db = db
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
		db, err := s.open()
		if err != nil {
			return 0, 0, err
		}
		s.db = db
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
	err := s.db.QueryRow(`SELECT value FROM kv WHERE partition = $1 AND key = $2`, string(p), key).Scan(&value)
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
		VALUES ($1, $2, $3, now())
		ON CONFLICT (partition, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for k, v := range values {
		if _, err := stmt.Exec(string(p), k, v); err != nil {
			return fmt.Errorf("failed to write %s/%s: %w", p, k, err)
		}
	}

	return tx.Commit()
}

func (s *Store) Delete(p storage.Partition, key string) error {
	if err := storage.CheckPartition(p); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM kv WHERE partition = $1 AND key = $2`, string(p), key)
	return err
}

func (s *Store) Keys(p storage.Partition, prefix string) ([]string, error) {
	if err := storage.CheckPartition(p); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT key FROM kv
		WHERE partition = $1 AND key LIKE $2 ESCAPE '\'
		ORDER BY key COLLATE "C"`, string(p), likePrefix(prefix))
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

// likePrefix escapes LIKE metacharacters in prefix and appends the wildcard.
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}

// GetConfigPath returns the connection string with any password redacted.
func (s *Store) GetConfigPath() string {
	if isURL(s.connStr) {
		if u, err := url.Parse(s.connStr); err == nil {
			return u.Redacted()
		}
	}
	return s.connStr
}

// GetDB returns the underlying database connection.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
