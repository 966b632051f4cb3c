package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewManagerDerivesBackupDir(t *testing.T) {
	mgr := NewManager("/tmp/sb/secondbrain.db")
	if mgr.GetBackupDir() != "/tmp/sb/backups" {
		t.Errorf("backup dir = %q, want /tmp/sb/backups", mgr.GetBackupDir())
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("backing up a nonexistent database should fail")
	}
}

func TestListBackupsEmptyDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "secondbrain.db"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestListBackupsSortedNewestFirst(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(filepath.Join(dir, "secondbrain.db"))
	backupDir := mgr.GetBackupDir()
	if err := os.MkdirAll(backupDir, 0700); err != nil {
		t.Fatal(err)
	}

	names := []string{
		"secondbrain-20250101-0900.db",
		"secondbrain-20250301-0900.db",
		"secondbrain-20250201-0900.db",
		"notes.txt", // ignored
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(backupDir, name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("got %d backups, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Error("backups not sorted newest first")
		}
	}
}

func TestParseBackupTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		want    time.Time
		wantOK  bool
	}{
		{
			name:   "minute precision",
			file:   "secondbrain-20250312-0930.db",
			want:   time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "second precision",
			file:   "secondbrain-20250312-093015.db",
			want:   time.Date(2025, 3, 12, 9, 30, 15, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "collision counter stripped",
			file:   "secondbrain-20250312-093015-2.db",
			want:   time.Date(2025, 3, 12, 9, 30, 15, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "garbage",
			file:   "secondbrain-hello.db",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseBackupTimestamp(tt.file)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("timestamp = %v, want %v", got, tt.want)
			}
		})
	}
}
