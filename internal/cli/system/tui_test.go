package system

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/storage"
)

type captureSender struct {
	mu   sync.Mutex
	sent []string
}

func (c *captureSender) Notify(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, text)
	return nil
}

func (c *captureSender) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.sent...)
}

func TestStartRemindersFiresDueActivity(t *testing.T) {
	// The watcher fires on activities starting in the current wall-clock
	// minute. Wait out a minute rollover so the activity stays due for the
	// whole poll window.
	if time.Now().Second() >= 55 {
		time.Sleep(time.Duration(61-time.Now().Second()) * time.Second)
	}

	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "secondbrain.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.AddActivity(models.Activity{
		ID: uuid.NewString(), Title: "Standup", Frequency: constants.FrequencyDaily,
		Time: time.Now().Format("15:04"), DurationMin: 15, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	sender := &captureSender{}
	stop := startReminders(store, sender)
	defer stop()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		sent := sender.snapshot()
		if len(sent) == 1 && strings.Contains(sent[0], "Standup") {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatalf("sent = %v, want one Standup notification", sender.snapshot())
}
