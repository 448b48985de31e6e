// Package keyring keeps the PostgreSQL connection string in the OS
// credential store so it never lands in shell history or config files.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/daywell/internal/constants"
)

var (
	ErrNotFound           = errors.New("credentials not found in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// probeUser is looked up only to see whether the backend answers at all.
const probeUser = "availability-probe"

func service() string { return constants.AppName }

// translate maps go-keyring errors onto this package's sentinels.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, keyring.ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %s: %v", ErrKeyringUnavailable, op, err)
	}
}

func GetConnectionString() (string, error) {
	conn, err := keyring.Get(service(), constants.DefaultKeyringUser)
	if err != nil {
		return "", translate("get", err)
	}
	return conn, nil
}

func SetConnectionString(conn string) error {
	if conn == "" {
		return errors.New("connection string cannot be empty")
	}
	return translate("set", keyring.Set(service(), constants.DefaultKeyringUser, conn))
}

func DeleteConnectionString() error {
	return translate("delete", keyring.Delete(service(), constants.DefaultKeyringUser))
}

// IsAvailable reports whether the OS keyring answered a lookup. A missing
// entry still counts as available.
func IsAvailable() bool {
	_, err := keyring.Get(service(), probeUser)
	return !errors.Is(translate("probe", err), ErrKeyringUnavailable)
}
