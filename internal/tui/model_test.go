package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daywell/internal/analytics"
	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/internal/testutil"
	"github.com/julianstephens/daywell/internal/tracker"
	"github.com/julianstephens/daywell/internal/tui/components/habits"
)

func newTestModel(t *testing.T) (Model, *tracker.Service) {
	t.Helper()
	store := testutil.NewSQLiteStore(t)
	clock := testutil.NewClock(t, "2024-05-01")
	svc := tracker.NewWithLocation(store, clock.Now, time.UTC)
	return NewModel(svc), svc
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers msg and then every message produced by the returned command.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(Model)
		}
	}
	return m
}

func sized(t *testing.T, m Model) Model {
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func TestToggleHabit(t *testing.T) {
	m, svc := newTestModel(t)
	if _, err := svc.Habits.Add("Read", ""); err != nil {
		t.Fatal(err)
	}
	m.refresh()
	m = sized(t, m)

	m = send(t, m, runes("x"))
	list, _ := svc.Habits.List()
	if !list[0].Completed {
		t.Fatal("expected habit to be completed")
	}
	if m.dashboard.Summary.Completed != 1 {
		t.Errorf("dashboard not refreshed: %+v", m.dashboard.Summary)
	}

	m = send(t, m, runes("x"))
	list, _ = svc.Habits.List()
	if list[0].Completed {
		t.Error("expected second toggle to clear completion")
	}
}

func TestDeleteHabit(t *testing.T) {
	m, svc := newTestModel(t)
	svc.Habits.Add("Run", "")
	m.refresh()
	m = sized(t, m)

	m = send(t, m, runes("d"))
	list, _ := svc.Habits.List()
	if len(list) != 0 {
		t.Errorf("expected habit deleted, got %+v", list)
	}
	if m.status != "Habit deleted" {
		t.Errorf("status = %q", m.status)
	}
}

// lockedStore rejects writes once locked is set.
type lockedStore struct {
	storage.Provider
	locked bool
}

var errLocked = errors.New("store is read-only")

func (s *lockedStore) Set(p storage.Partition, key, value string) error {
	if s.locked {
		return errLocked
	}
	return s.Provider.Set(p, key, value)
}

func (s *lockedStore) SetMany(p storage.Partition, values map[string]string) error {
	if s.locked {
		return errLocked
	}
	return s.Provider.SetMany(p, values)
}

func TestDeleteHabitFailureIsReported(t *testing.T) {
	store := &lockedStore{Provider: testutil.NewSQLiteStore(t)}
	clock := testutil.NewClock(t, "2024-05-01")
	svc := tracker.NewWithLocation(store, clock.Now, time.UTC)
	h, err := svc.Habits.Add("Run", "")
	if err != nil {
		t.Fatal(err)
	}
	m := sized(t, NewModel(svc))

	store.locked = true
	next, _ := m.Update(habits.DeleteHabitMsg{ID: h.ID})
	m = next.(Model)

	if !strings.Contains(m.status, errLocked.Error()) {
		t.Errorf("status = %q, want the write error", m.status)
	}
	list, _ := svc.Habits.List()
	if len(list) != 1 {
		t.Errorf("habit list = %+v, want the habit kept", list)
	}
}

func TestAddHabitFormCancel(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	next, _ := m.Update(habits.AddHabitMsg{})
	m = next.(Model)
	if m.state != StateAddHabit || m.form == nil {
		t.Fatalf("expected add habit form, state=%v", m.state)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.state != StateHabits {
		t.Errorf("expected esc to return to habits, got %v", m.state)
	}
}

func TestWaterTab(t *testing.T) {
	m, svc := newTestModel(t)
	m = sized(t, m)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != StateWater {
		t.Fatalf("expected water tab, got %v", m.state)
	}

	m = send(t, m, runes("g"))
	m = send(t, m, runes("d"))
	state, _ := svc.Hydration.Snapshot()
	if state.IntakeMl != 600 {
		t.Errorf("intake = %d, want 600", state.IntakeMl)
	}
	if m.dashboard.Hydration.IntakeMl != 600 {
		t.Errorf("dashboard intake = %d, want 600", m.dashboard.Hydration.IntakeMl)
	}
	if !strings.Contains(m.View(), "600 / 1600 ml") {
		t.Errorf("water view missing intake:\n%s", m.View())
	}

	m = send(t, m, runes("r"))
	if m.dashboard.Hydration.IntakeMl != 0 {
		t.Errorf("expected reset, got %d", m.dashboard.Hydration.IntakeMl)
	}
}

func TestMoodTabLogsSelectedMood(t *testing.T) {
	m, svc := newTestModel(t)
	m = sized(t, m)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	entries, err := svc.Mood.Today()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Label != "Happy" {
		t.Fatalf("expected Happy entry, got %+v", entries)
	}
	if !strings.Contains(m.status, "Logged 😊 Happy") {
		t.Errorf("status = %q", m.status)
	}
}

func TestStatsPeriodToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.state != StateStats {
		t.Fatalf("expected stats tab, got %v", m.state)
	}
	if m.summary.Period != analytics.PeriodWeekly || m.summary.Days != 7 {
		t.Errorf("unexpected summary: %+v", m.summary)
	}

	m = send(t, m, runes("p"))
	if m.summary.Period != analytics.PeriodMonthly || m.summary.Days != 30 {
		t.Errorf("expected monthly summary, got %+v", m.summary)
	}
	if !strings.Contains(m.View(), "Last 30 days") {
		t.Errorf("stats view missing header:\n%s", m.View())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(runes("q"))
	if !next.(Model).quitting || cmd == nil {
		t.Error("expected quit")
	}
}
