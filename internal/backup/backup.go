// Package backup snapshots and restores the sqlite database file.
package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/logger"
)

const timestampLayout = "20060102-150405"

var nowFunc = time.Now

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates, lists, rotates and restores backups next to the database.
type Manager struct {
	dbPath    string
	backupDir string
	keep      int
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
		keep:      constants.MaxBackups,
	}
}

func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup writes a new backup and prunes the oldest beyond the limit.
func (m *Manager) CreateBackup() (string, error) {
	path, err := m.createBackup()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) createBackup() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", m.dbPath)
	}

	path, err := m.nextPath()
	if err != nil {
		return "", err
	}

	if err := vacuumInto(m.dbPath, path); err != nil {
		return "", fmt.Errorf("failed to backup database: %w", err)
	}
	logger.Info("Created backup", "path", path)
	return path, nil
}

// nextPath picks an unused file name for the current second.
func (m *Manager) nextPath() (string, error) {
	stamp := nowFunc().Format(timestampLayout)
	for n := 0; n <= 100; n++ {
		name := constants.BackupFilePrefix + stamp
		if n > 0 {
			name += "-" + strconv.Itoa(n)
		}
		path := filepath.Join(m.backupDir, name+constants.BackupFileSuffix)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

// vacuumInto copies src with VACUUM INTO, falling back to a plain file copy.
func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		logger.Debug("VACUUM INTO failed, copying file", "error", err)
		db.Close()
		return copyFile(src, dst)
	}
	return nil
}

// ListBackups returns backups newest first. Unrecognized files are skipped.
func (m *Manager) ListBackups() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		path := filepath.Join(m.backupDir, entry.Name())
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: path, Timestamp: ts, Size: fi.Size()})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseName reads the timestamp out of "daywell-YYYYMMDD-HHMMSS[-N].db".
func parseName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		return time.Time{}, false
	}
	stem := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
	if len(stem) > len(timestampLayout) {
		suffix := stem[len(timestampLayout):]
		if !strings.HasPrefix(suffix, "-") {
			return time.Time{}, false
		}
		if _, err := strconv.Atoi(suffix[1:]); err != nil {
			return time.Time{}, false
		}
		stem = stem[:len(timestampLayout)]
	}
	ts, err := time.ParseInLocation(timestampLayout, stem, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func (m *Manager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := m.keep; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the database with backupPath. The current database,
// if any, is backed up first; its path is returned.
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := verify(backupPath); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var previous string
	if _, err := os.Stat(m.dbPath); err == nil {
		p, err := m.createBackup()
		if err != nil {
			return "", fmt.Errorf("failed to backup current database before restore: %w", err)
		}
		previous = p
	}

	tempPath := m.dbPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return previous, fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.dbPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("Failed to remove temporary restore file", "path", tempPath, "error", removeErr)
		}
		return previous, fmt.Errorf("failed to restore database: %w", err)
	}

	logger.Info("Restored backup", "from", backupPath)
	return previous, nil
}

func verify(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM kv").Scan(&count)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
