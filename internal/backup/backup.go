package backup

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/acampos-dev/secondbrain/internal/constants"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles snapshot backups of the SQLite database file.
type Manager struct {
	dbPath    string
	backupDir string
}

// NewManager creates a new backup manager
func NewManager(dbPath string) *Manager {
	configDir := filepath.Dir(dbPath)
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(configDir, constants.BackupDirName),
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup creates a new timestamped backup of the database and rotates
// old backups beyond constants.MaxBackups.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", m.dbPath)
	}

	backupPath, err := m.uniqueBackupPath()
	if err != nil {
		return "", err
	}

	if err := m.snapshotDatabase(backupPath); err != nil {
		return "", fmt.Errorf("failed to backup database: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			// Rotation failure should not discard a successful backup.
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

func (m *Manager) uniqueBackupPath() (string, error) {
	timestamp := time.Now().Format("20060102-1504")
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+constants.BackupFileSuffix)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	timestamp = time.Now().Format("20060102-150405")
	path = filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+constants.BackupFileSuffix)
	for counter := 0; counter <= 100; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		path = filepath.Join(m.backupDir,
			fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter+1, constants.BackupFileSuffix))
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

// snapshotDatabase copies the database with VACUUM INTO, falling back to a
// plain file copy when the SQLite build lacks it.
func (m *Manager) snapshotDatabase(destPath string) error {
	srcDB, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		return copyFile(m.dbPath, destPath)
	}
	return nil
}

// ListBackups returns all available backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}

		timestamp, ok := parseBackupTimestamp(name)
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// Restore replaces the live database with the given backup, snapshotting the
// current database first so the restore itself is recoverable.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	if _, err := os.Stat(m.dbPath); err == nil {
		if _, err := m.createBackup(true); err != nil {
			return fmt.Errorf("failed to backup current database before restore: %w", err)
		}
	}

	return copyFile(backupPath, m.dbPath)
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for _, old := range backups[min(len(backups), constants.MaxBackups):] {
		if err := os.Remove(old.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", old.Path, err)
		}
	}
	return nil
}

func parseBackupTimestamp(name string) (time.Time, bool) {
	s := strings.TrimPrefix(name, constants.BackupFilePrefix)
	s = strings.TrimSuffix(s, constants.BackupFileSuffix)

	// Strip a trailing "-N" collision counter when present.
	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		last := parts[len(parts)-1]
		if len(last) != 4 && len(last) != 6 {
			s = strings.Join(parts[:len(parts)-1], "-")
		}
	}

	for _, layout := range []string{"20060102-1504", "20060102-150405"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
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

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
