package reminder

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/storage"
)

type captureSender struct {
	sent []string
}

func (c *captureSender) Notify(text string) error {
	c.sent = append(c.sent, text)
	return nil
}

func newTestWatcher(t *testing.T) (*Watcher, storage.Provider, *captureSender) {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "secondbrain.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sender := &captureSender{}
	return NewWatcher(store, sender), store, sender
}

func TestWatcherFiresOncePerDay(t *testing.T) {
	w, store, sender := newTestWatcher(t)

	if err := store.AddActivity(models.Activity{
		ID: "run", Title: "Morning Run", Frequency: constants.FrequencyDaily,
		Time: "06:30", DurationMin: 30, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	now := time.Date(2025, 3, 12, 6, 30, 10, 0, time.Local)
	w.now = func() time.Time { return now }

	if err := w.tick(); err != nil {
		t.Fatalf("tick() error = %v", err)
	}
	if len(sender.sent) != 1 || !strings.Contains(sender.sent[0], "Morning Run") {
		t.Fatalf("sent = %v, want one Morning Run notification", sender.sent)
	}

	// Later the same minute, and later the same day: no repeat.
	if err := w.tick(); err != nil {
		t.Fatalf("tick() error = %v", err)
	}
	now = now.Add(45 * time.Second)
	if err := w.tick(); err != nil {
		t.Fatalf("tick() error = %v", err)
	}
	if len(sender.sent) != 1 {
		t.Errorf("sent = %v, want exactly one notification", sender.sent)
	}
}

func TestWatcherQuietOutsideStartMinute(t *testing.T) {
	w, store, sender := newTestWatcher(t)

	if err := store.AddActivity(models.Activity{
		ID: "run", Title: "Morning Run", Frequency: constants.FrequencyDaily,
		Time: "06:30", CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	for _, clock := range []time.Time{
		time.Date(2025, 3, 12, 6, 29, 59, 0, time.Local),
		time.Date(2025, 3, 12, 6, 31, 0, 0, time.Local),
	} {
		w.now = func() time.Time { return clock }
		if err := w.tick(); err != nil {
			t.Fatalf("tick() error = %v", err)
		}
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent = %v, want none outside the start minute", sender.sent)
	}
}

func TestWatcherRespectsNotificationSetting(t *testing.T) {
	w, store, sender := newTestWatcher(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	settings.NotificationsEnabled = false
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	if err := store.AddActivity(models.Activity{
		ID: "run", Title: "Morning Run", Frequency: constants.FrequencyDaily,
		Time: "06:30", CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	w.now = func() time.Time { return time.Date(2025, 3, 12, 6, 30, 0, 0, time.Local) }
	if err := w.tick(); err != nil {
		t.Fatalf("tick() error = %v", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent = %v, want none while notifications are disabled", sender.sent)
	}
}

func TestWatcherIncludesAdaptationEvent(t *testing.T) {
	w, store, sender := newTestWatcher(t)

	if err := store.SaveAdaptation(models.Adaptation{
		Date:             "2025-03-12",
		EventTitle:       "Dentist",
		EventTime:        "14:00",
		EventDurationMin: 60,
		CreatedAt:        time.Now(),
	}); err != nil {
		t.Fatalf("SaveAdaptation() error = %v", err)
	}

	w.now = func() time.Time { return time.Date(2025, 3, 12, 14, 0, 5, 0, time.Local) }
	if err := w.tick(); err != nil {
		t.Fatalf("tick() error = %v", err)
	}
	if len(sender.sent) != 1 || !strings.Contains(sender.sent[0], "Dentist") {
		t.Errorf("sent = %v, want the event notification", sender.sent)
	}
}
