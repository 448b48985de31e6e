package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	derrors "github.com/julianstephens/daywell/internal/errors"
	"github.com/julianstephens/daywell/internal/logger"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type harness struct {
	t      *testing.T
	dbPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{t: t, dbPath: filepath.Join(t.TempDir(), "daywell.db")}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	var out bytes.Buffer
	full := append([]string{"--config", h.dbPath}, args...)
	err := run(full, &out, func() time.Time { return fixedNow })
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	if err != nil {
		h.t.Fatalf("daywell %s: %v\noutput:\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestWorkflow(t *testing.T) {
	h := newHarness(t)

	if out := h.mustRun("init"); !strings.Contains(out, "Initialized daywell storage") {
		t.Fatalf("init output = %q", out)
	}
	h.mustRun("settings", "--timezone", "UTC")

	h.mustRun("habit", "add", "Stretch")
	h.mustRun("habit", "add", "Read", "-d", "20 pages")
	if out := h.mustRun("habit", "done", "stretch"); !strings.Contains(out, "Total: 2  Completed: 1  Remaining: 1  (50%)") {
		t.Errorf("habit done output = %q", out)
	}

	h.mustRun("water", "glass")
	if out := h.mustRun("water", "double"); !strings.Contains(out, "600/1600 ml") {
		t.Errorf("water output = %q", out)
	}

	if out := h.mustRun("mood", "log", "Happy"); !strings.Contains(out, "Today's average mood: 5.0/5.0") {
		t.Errorf("mood log output = %q", out)
	}

	out := h.mustRun("stats", "--format", "json")
	var summary struct {
		Days           int     `json:"days"`
		AverageMood    float64 `json:"average_mood"`
		PositiveStreak int     `json:"positive_streak"`
	}
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("stats output is not JSON: %v\n%s", err, out)
	}
	if summary.Days != 7 || summary.AverageMood != 5 || summary.PositiveStreak != 1 {
		t.Errorf("summary = %+v", summary)
	}

	if out := h.mustRun("doctor"); !strings.Contains(out, "All diagnostics passed!") {
		t.Errorf("doctor output = %q", out)
	}
}

func TestDataSurvivesBetweenInvocations(t *testing.T) {
	h := newHarness(t)
	h.mustRun("init")
	h.mustRun("settings", "--timezone", "UTC")
	h.mustRun("habit", "add", "Walk")

	out := h.mustRun("habit", "list")
	if !strings.Contains(out, "[ ]") || !strings.Contains(out, "Walk") {
		t.Errorf("habit list output = %q", out)
	}
}

func TestMissingHabitIsAdvisory(t *testing.T) {
	h := newHarness(t)
	h.mustRun("init")

	out, err := h.run("habit", "done", "ghost")
	if err != nil {
		t.Fatalf("habit done on a missing habit returned %v", err)
	}
	if !strings.Contains(out, "nothing changed") {
		t.Errorf("output = %q, want advisory", out)
	}
}

func TestInvalidWaterAmount(t *testing.T) {
	h := newHarness(t)
	h.mustRun("init")

	if _, err := h.run("water", "add", "0"); !derrors.IsValidation(err) {
		t.Errorf("water add 0 err = %v, want ValidationError", err)
	}
}

func TestUnknownCommand(t *testing.T) {
	h := newHarness(t)
	if _, err := h.run("juggle"); err == nil {
		t.Error("expected a parse error for an unknown command")
	}
}

func TestRunReleasesLogFile(t *testing.T) {
	h := newHarness(t)
	h.mustRun("init")

	if logger.Path() != "" || logger.Logger != nil {
		t.Errorf("logger still open after run: %q", logger.Path())
	}
}
