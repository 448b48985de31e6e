package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "daywell.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Set(storage.PartitionHabits, "habits_json", `[{"id":"1","name":"Walk","description":null,"completed":false}]`); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	store.Close()
	return dbPath
}

func stubNow(t *testing.T, start time.Time) func(time.Duration) {
	t.Helper()
	now := start
	old := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = old })
	return func(d time.Duration) { now = now.Add(d) }
}

func readHabits(t *testing.T, dbPath string) string {
	t.Helper()
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer store.Close()
	v, _, err := store.Get(storage.PartitionHabits, "habits_json")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	return v
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	stubNow(t, time.Date(2024, 5, 1, 8, 30, 0, 0, time.Local))

	mgr := NewManager(dbPath)
	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if filepath.Base(path) != "daywell-20240501-083000.db" {
		t.Errorf("backup name = %s", filepath.Base(path))
	}
	if got := readHabits(t, path); got == "" {
		t.Error("backup does not contain habits")
	}

	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second CreateBackup() error = %v", err)
	}
	if filepath.Base(second) != "daywell-20240501-083000-1.db" {
		t.Errorf("second backup name = %s", filepath.Base(second))
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup() expected error for missing database")
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	dbPath := setupTestDB(t)
	advance := stubNow(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local))
	mgr := NewManager(dbPath)

	for i := 0; i < 3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		advance(time.Hour)
	}
	os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("x"), 0600)
	os.WriteFile(filepath.Join(mgr.GetBackupDir(), "daywell-garbage.db"), []byte("x"), 0600)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("len(backups) = %d, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if !backups[i-1].Timestamp.After(backups[i].Timestamp) {
			t.Errorf("backups not sorted newest first: %v then %v", backups[i-1].Timestamp, backups[i].Timestamp)
		}
	}
}

func TestListBackupsWithoutDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "daywell.db"))
	backups, err := mgr.ListBackups()
	if err != nil || len(backups) != 0 {
		t.Errorf("ListBackups() = %v, %v", backups, err)
	}
}

func TestRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	advance := stubNow(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local))
	mgr := NewManager(dbPath)
	mgr.keep = 3

	for i := 0; i < 5; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		advance(time.Minute)
	}

	backups, _ := mgr.ListBackups()
	if len(backups) != 3 {
		t.Fatalf("len(backups) = %d, want 3", len(backups))
	}
	if filepath.Base(backups[0].Path) != "daywell-20240501-000400.db" {
		t.Errorf("newest kept = %s", filepath.Base(backups[0].Path))
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	advance := stubNow(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local))
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	store.Set(storage.PartitionHabits, "habits_json", "[]")
	store.Close()

	advance(time.Minute)
	previous, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	if previous == "" {
		t.Error("RestoreBackup() did not back up the current database")
	}
	if got := readHabits(t, dbPath); got == "[]" {
		t.Error("database was not restored")
	}
	if got := readHabits(t, previous); got != "[]" {
		t.Errorf("pre-restore backup = %q, want the replaced state", got)
	}
}

func TestRestoreRejectsInvalidBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	os.WriteFile(bogus, []byte("not a database"), 0600)

	if _, err := mgr.RestoreBackup(bogus); err == nil {
		t.Error("RestoreBackup() expected error for invalid file")
	}
	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("RestoreBackup() expected error for missing file")
	}
}
