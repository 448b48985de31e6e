package sqlite

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/daywell/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreImplementsProvider(t *testing.T) {
	var _ storage.Provider = NewStore("unused.db")
}

func TestGetSet(t *testing.T) {
	store := setupTestStore(t)

	if _, ok, err := store.Get(storage.PartitionHabits, "habits_json"); err != nil || ok {
		t.Fatalf("Get() on empty store = ok=%v err=%v", ok, err)
	}

	if err := store.Set(storage.PartitionHabits, "habits_json", "[]"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(storage.PartitionHabits, "habits_json", `[{"id":"a"}]`); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get(storage.PartitionHabits, "habits_json")
	if err != nil || !ok {
		t.Fatalf("Get() = ok=%v err=%v", ok, err)
	}
	if v != `[{"id":"a"}]` {
		t.Errorf("Get() = %q, want overwritten value", v)
	}
}

func TestSetManyCommitsTogether(t *testing.T) {
	store := setupTestStore(t)

	err := store.SetMany(storage.PartitionSettings, map[string]string{
		"hydration_intake":    "0",
		"hydration_last_date": "2024-05-02",
	})
	if err != nil {
		t.Fatalf("SetMany() failed: %v", err)
	}

	for _, k := range []string{"hydration_intake", "hydration_last_date"} {
		if _, ok, err := store.Get(storage.PartitionSettings, k); err != nil || !ok {
			t.Errorf("Get(%s) after SetMany = ok=%v err=%v", k, ok, err)
		}
	}
}

func TestKeysPrefixAndOrder(t *testing.T) {
	store := setupTestStore(t)

	for _, k := range []string{"habit_hist_2024-02-01", "habit_hist_2024-01-31", "habit_histX", "zzz"} {
		if err := store.Set(storage.PartitionHabitHistory, k, "{}"); err != nil {
			t.Fatalf("Set(%s) failed: %v", k, err)
		}
	}
	if err := store.Set(storage.PartitionMood, "habit_hist_2024-01-01", "[]"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	keys, err := store.Keys(storage.PartitionHabitHistory, "habit_hist_")
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	want := []string{"habit_hist_2024-01-31", "habit_hist_2024-02-01"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}

	all, err := store.Keys(storage.PartitionHabitHistory, "")
	if err != nil {
		t.Fatalf("Keys() with empty prefix failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Keys(\"\") returned %d keys, want 4", len(all))
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := setupTestStore(t)

	if err := store.Set(storage.PartitionMood, "2024-01-01", "[]"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := store.Delete(storage.PartitionMood, "2024-01-01"); err != nil {
			t.Fatalf("Delete() #%d failed: %v", i+1, err)
		}
	}
	if _, ok, _ := store.Get(storage.PartitionMood, "2024-01-01"); ok {
		t.Error("key still present after Delete()")
	}
}

func TestLoadExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reload.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := store.Set(storage.PartitionSettings, "dark_mode", "true"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get(storage.PartitionSettings, "dark_mode")
	if err != nil || !ok || v != "true" {
		t.Errorf("Get() after reload = %q, %v, %v", v, ok, err)
	}
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() should fail when the database file does not exist")
	}
}

func TestUnknownPartition(t *testing.T) {
	store := setupTestStore(t)
	if _, _, err := store.Get(storage.Partition("nope"), "k"); err == nil {
		t.Error("Get() on unknown partition should fail")
	}
}
