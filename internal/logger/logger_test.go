package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCreatesLogFile(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")
	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(Close)

	want := filepath.Join(configDir, "logs", "daywell.log")
	if Path() != want {
		t.Errorf("Path() = %q, want %q", Path(), want)
	}

	Info("rollover applied", "partition", "habits")
	Debug("hidden below info")

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "rollover applied") {
		t.Errorf("log file missing message, got %q", got)
	}
	if strings.Contains(got, "hidden below info") {
		t.Errorf("debug message written at info level: %q", got)
	}
}

func TestDebugLevel(t *testing.T) {
	configDir := t.TempDir()
	if err := Init(Config{Debug: true, ConfigDir: configDir}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(Close)

	Debug("hydration reminder skipped", "reason", "disabled")

	data, err := os.ReadFile(Path())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hydration reminder skipped") {
		t.Errorf("debug message missing, got %q", string(data))
	}
}

func TestHelpersAreSafeWithoutInit(t *testing.T) {
	Close()
	if Path() != "" {
		t.Errorf("Path() = %q after Close", Path())
	}

	Debug("no logger")
	Info("no logger")
	Warn("no logger")
	Error("no logger")
}
