package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func setupTestJSONStore(t *testing.T) (*JSONStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daywell.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init json store: %v", err)
	}
	return store, path
}

func TestJSONStoreGetSet(t *testing.T) {
	store, _ := setupTestJSONStore(t)

	if _, ok, err := store.Get(PartitionSettings, "dark_mode"); err != nil || ok {
		t.Fatalf("Get() on empty store = ok=%v err=%v, want absent", ok, err)
	}

	if err := store.Set(PartitionSettings, "dark_mode", "true"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	v, ok, err := store.Get(PartitionSettings, "dark_mode")
	if err != nil || !ok || v != "true" {
		t.Errorf("Get() = %q, %v, %v; want \"true\", true, nil", v, ok, err)
	}

	// Same key in another partition is independent.
	if _, ok, _ := store.Get(PartitionHabits, "dark_mode"); ok {
		t.Error("key leaked across partitions")
	}
}

func TestJSONStorePersistsAcrossReload(t *testing.T) {
	store, path := setupTestJSONStore(t)

	if err := store.SetMany(PartitionSettings, map[string]string{
		"hydration_intake":    "400",
		"hydration_last_date": "2024-03-01",
	}); err != nil {
		t.Fatalf("SetMany() failed: %v", err)
	}
	store.Close()

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	v, ok, err := reopened.Get(PartitionSettings, "hydration_intake")
	if err != nil || !ok || v != "400" {
		t.Errorf("after reload Get() = %q, %v, %v", v, ok, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}

func TestJSONStoreKeysAndDelete(t *testing.T) {
	store, _ := setupTestJSONStore(t)

	for _, k := range []string{"habit_hist_2024-01-02", "habit_hist_2024-01-01", "other"} {
		if err := store.Set(PartitionHabitHistory, k, "{}"); err != nil {
			t.Fatalf("Set(%s) failed: %v", k, err)
		}
	}

	keys, err := store.Keys(PartitionHabitHistory, "habit_hist_")
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	want := []string{"habit_hist_2024-01-01", "habit_hist_2024-01-02"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}

	if err := store.Delete(PartitionHabitHistory, "other"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := store.Delete(PartitionHabitHistory, "other"); err != nil {
		t.Errorf("Delete() of absent key should be a no-op, got %v", err)
	}
}

func TestJSONStoreRejectsUnknownPartition(t *testing.T) {
	store, _ := setupTestJSONStore(t)
	if err := store.Set(Partition("bogus"), "k", "v"); err == nil {
		t.Error("Set() on unknown partition should fail")
	}
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("Load() on missing file should fail")
	}
}
