package keyring

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestConnectionStringRoundTrip(t *testing.T) {
	keyring.MockInit()

	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetConnectionString() on empty keyring = %v, want ErrNotFound", err)
	}

	if err := SetConnectionString("postgres://me:pw@localhost/daywell"); err != nil {
		t.Fatalf("SetConnectionString() error = %v", err)
	}
	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() error = %v", err)
	}
	if got != "postgres://me:pw@localhost/daywell" {
		t.Errorf("GetConnectionString() = %q", got)
	}

	if !IsAvailable() {
		t.Error("IsAvailable() = false with mock keyring")
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() error = %v", err)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteConnectionString() = %v, want ErrNotFound", err)
	}
}

func TestSetConnectionStringRejectsEmpty(t *testing.T) {
	keyring.MockInit()
	if err := SetConnectionString(""); err == nil {
		t.Error("SetConnectionString(\"\") expected error")
	}
}

func TestTranslate(t *testing.T) {
	if err := translate("get", nil); err != nil {
		t.Errorf("translate(nil) = %v", err)
	}
	if err := translate("get", keyring.ErrNotFound); !errors.Is(err, ErrNotFound) {
		t.Errorf("translate(ErrNotFound) = %v", err)
	}
	err := translate("set", errors.New("dbus: no session bus"))
	if !errors.Is(err, ErrKeyringUnavailable) {
		t.Errorf("translate(other) = %v, want ErrKeyringUnavailable", err)
	}
}
