package rollover

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/daywell/internal/storage"
)

type counterResetter struct {
	resets int
}

func (c *counterResetter) Name() string { return "counter" }

func (c *counterResetter) Marker() (storage.Partition, string) {
	return storage.PartitionSettings, "counter_last_date"
}

func (c *counterResetter) ResetForNewDay(today string) (map[string]string, error) {
	c.resets++
	return map[string]string{"counter": "0"}, nil
}

func setupStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "state.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return store
}

func TestApplyIsIdempotent(t *testing.T) {
	store := setupStore(t)
	r := &counterResetter{}

	if err := store.Set(storage.PartitionSettings, "counter", "7"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	reset, err := Apply(store, r, "2024-05-01")
	if err != nil || !reset {
		t.Fatalf("first Apply() = %v, %v; want reset", reset, err)
	}
	reset, err = Apply(store, r, "2024-05-01")
	if err != nil || reset {
		t.Fatalf("second Apply() = %v, %v; want no reset", reset, err)
	}
	if r.resets != 1 {
		t.Errorf("resets = %d, want 1", r.resets)
	}

	v, _, _ := store.Get(storage.PartitionSettings, "counter")
	if v != "0" {
		t.Errorf("counter = %q, want 0", v)
	}
	marker, _, _ := store.Get(storage.PartitionSettings, "counter_last_date")
	if marker != "2024-05-01" {
		t.Errorf("marker = %q, want 2024-05-01", marker)
	}
}

func TestBackwardClockCountsAsNewDay(t *testing.T) {
	store := setupStore(t)
	r := &counterResetter{}

	for _, day := range []string{"2024-05-02", "2024-05-01"} {
		if _, err := Apply(store, r, day); err != nil {
			t.Fatalf("Apply(%s) error = %v", day, err)
		}
	}
	if r.resets != 2 {
		t.Errorf("resets = %d, want 2", r.resets)
	}
}

func TestEngineAppliesAllParticipants(t *testing.T) {
	store := setupStore(t)
	a := &counterResetter{}
	b := &otherResetter{}
	engine := NewEngine(store, a)
	engine.Register(b)

	for i := 0; i < 3; i++ {
		if err := engine.EnsureApplied("2024-05-03"); err != nil {
			t.Fatalf("EnsureApplied() error = %v", err)
		}
	}
	if a.resets != 1 || b.resets != 1 {
		t.Errorf("resets = %d/%d, want 1/1", a.resets, b.resets)
	}
}

type otherResetter struct {
	resets int
}

func (o *otherResetter) Name() string { return "other" }

func (o *otherResetter) Marker() (storage.Partition, string) {
	return storage.PartitionHabits, "other_last_date"
}

func (o *otherResetter) ResetForNewDay(today string) (map[string]string, error) {
	o.resets++
	return nil, nil
}
