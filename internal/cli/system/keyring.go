package system

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/keyring"
	"github.com/julianstephens/daywell/internal/storage/backend"
	"github.com/julianstephens/daywell/internal/storage/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Check whether the OS keyring is usable." default:"1"`
}

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring"`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	conn := strings.TrimSpace(cmd.ConnectionString)
	if backend.Detect(conn) != backend.KindPostgres && !strings.Contains(conn, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := postgres.ValidateConnString(conn); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		// The keyring is encrypted, so an embedded password is tolerated here.
		ctx.Println("⚠️  Warning: Connection string contains embedded credentials.")
		ctx.Println("   It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(conn); err != nil {
		return err
	}

	ctx.Println("✓ Connection string stored in OS keyring")
	ctx.Printf("  Use it with: %s --config %s\n", constants.AppName, constants.KeyringConfigValue)
	return nil
}

type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	conn, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring. Use 'daywell keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}

	ctx.Println("Connection string retrieved from keyring:")
	ctx.Println(maskPassword(conn))
	return nil
}

type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return err
	}

	ctx.Println("✓ Connection string deleted from OS keyring")
	return nil
}

type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		ctx.Println("❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}

	ctx.Println("✓ OS keyring is available")
	_, err := keyring.GetConnectionString()
	switch {
	case err == nil:
		ctx.Println("✓ Connection string is stored in keyring")
	case errors.Is(err, keyring.ErrNotFound):
		ctx.Println("ℹ No connection string stored in keyring")
	default:
		ctx.Printf("⚠ Could not read keyring: %v\n", err)
	}
	return nil
}

// maskPassword hides the password of a URL or key=value connection string.
func maskPassword(conn string) string {
	if backend.Detect(conn) == backend.KindPostgres {
		if u, err := url.Parse(conn); err == nil && u.User != nil {
			if _, ok := u.User.Password(); ok {
				u.User = url.UserPassword(u.User.Username(), "xxxxx")
				return strings.Replace(u.String(), "xxxxx", "****", 1)
			}
		}
		return conn
	}

	fields := strings.Fields(conn)
	for i, f := range fields {
		if strings.HasPrefix(f, "password=") {
			fields[i] = "password=****"
		}
	}
	return strings.Join(fields, " ")
}
