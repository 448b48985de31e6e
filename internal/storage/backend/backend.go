// Package backend selects and constructs the storage.Provider for a
// --config value.
package backend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/keyring"
	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/internal/storage/postgres"
	"github.com/julianstephens/daywell/internal/storage/sqlite"
)

// Kind names a storage backend.
type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
	KindJSON     Kind = "json"
)

// Source records where a connection string came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceKeyring Source = "keyring"
)

var (
	keyringGetFunc = keyring.GetConnectionString
	lookupEnvFunc  = os.LookupEnv
	userHomeFunc   = os.UserHomeDir
)

// Resolved is the outcome of Resolve.
type Resolved struct {
	Conn   string
	Kind   Kind
	Source Source
}

// Resolve turns a --config value into a connection string. The literal
// "keyring" reads the OS keyring. When config is the default path and
// DAYWELL_DB_CONNECTION is set, the environment wins.
func Resolve(config string) (Resolved, error) {
	config = strings.TrimSpace(config)

	switch {
	case config == constants.KeyringConfigValue:
		conn, err := keyringGetFunc()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return Resolved{}, fmt.Errorf("no connection string in keyring, run 'daywell keyring set' first")
			}
			return Resolved{}, err
		}
		return Resolved{Conn: conn, Kind: Detect(conn), Source: SourceKeyring}, nil

	case config == "" || config == constants.DefaultConfigPath:
		if conn, ok := lookupEnvFunc(constants.ConnectionEnvVar); ok && strings.TrimSpace(conn) != "" {
			conn = strings.TrimSpace(conn)
			kind := Detect(conn)
			if kind != KindPostgres {
				conn = expandHome(conn)
			}
			return Resolved{Conn: conn, Kind: kind, Source: SourceEnv}, nil
		}
		return Resolved{Conn: expandHome(constants.DefaultConfigPath), Kind: KindSQLite, Source: SourceFlag}, nil
	}

	kind := Detect(config)
	if kind == KindPostgres {
		if HasEmbeddedCredentials(config) {
			return Resolved{}, fmt.Errorf("%w: store it with 'daywell keyring set' or export %s instead",
				postgres.ErrEmbeddedCredentials, constants.ConnectionEnvVar)
		}
		if _, err := postgres.ValidateConnString(config); err != nil {
			return Resolved{}, err
		}
		return Resolved{Conn: config, Kind: kind, Source: SourceFlag}, nil
	}
	return Resolved{Conn: expandHome(config), Kind: kind, Source: SourceFlag}, nil
}

// Detect picks the backend for a connection string or path.
func Detect(conn string) Kind {
	lower := strings.ToLower(conn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return KindPostgres
	case strings.HasSuffix(lower, ".json"):
		return KindJSON
	default:
		return KindSQLite
	}
}

// HasEmbeddedCredentials reports whether a postgres URL carries a password.
func HasEmbeddedCredentials(conn string) bool {
	_, err := postgres.ValidateConnString(conn)
	return errors.Is(err, postgres.ErrEmbeddedCredentials)
}

// New constructs the provider for r without opening it.
func New(r Resolved) storage.Provider {
	switch r.Kind {
	case KindPostgres:
		return postgres.New(r.Conn)
	case KindJSON:
		return storage.NewJSONStore(r.Conn)
	default:
		return sqlite.NewStore(r.Conn)
	}
}

var (
	_ Migrator = (*sqlite.Store)(nil)
	_ Migrator = (*postgres.Store)(nil)
)

// Migrator is implemented by the SQL backends.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	SchemaVersions() (current, latest int, err error)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := userHomeFunc()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
