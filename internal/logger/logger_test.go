package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesLogDirectory(t *testing.T) {
	dir := t.TempDir()

	if err := Init(Config{ConfigDir: dir}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
	if Logger == nil {
		t.Error("Logger not set after Init")
	}
}

func TestLoggingWithoutInitDoesNotPanic(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message", "key", "value")
}
