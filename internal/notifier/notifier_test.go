package notifier

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "lockfile")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindAndValidateTrayProcessRejectsBadLockfiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "missing fields", content: "8080|1234"},
		{name: "empty port", content: "|1234|secret"},
		{name: "non-numeric port", content: "http|1234|secret"},
		{name: "port out of range", content: "70000|1234|secret"},
		{name: "non-numeric pid", content: "8080|abc|secret"},
		{name: "empty secret", content: "8080|1234| "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLockfile(t, tt.content)
			if _, _, err := findAndValidateTrayProcess(path); err == nil {
				t.Errorf("lockfile %q should be rejected", tt.content)
			}
		})
	}
}

func TestFindAndValidateTrayProcessMissingFile(t *testing.T) {
	if _, _, err := findAndValidateTrayProcess(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("missing lockfile should be an error")
	}
}
