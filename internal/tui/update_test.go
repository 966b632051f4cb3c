package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/storage"
	"github.com/acampos-dev/secondbrain/internal/timeline"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "secondbrain.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewModel(store)
}

func TestToggleSelectedRefusesSpillover(t *testing.T) {
	m := newTestModel(t)

	if err := m.store.AddActivity(models.Activity{
		ID: "shift", Title: "Night Shift", Frequency: constants.FrequencyDaily,
		Time: "23:30", DurationMin: 60, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	m.blocks = []timeline.Block{{ActivityID: "shift", IsSpillover: true}}
	m.selected = 0
	m.toggleSelected()

	if m.status == "" {
		t.Error("toggling a continuation strip should set a status message")
	}
	activity, err := m.store.GetActivity("shift")
	if err != nil {
		t.Fatalf("GetActivity() error = %v", err)
	}
	if len(activity.CompletedDates) != 0 {
		t.Errorf("CompletedDates = %v, want none", activity.CompletedDates)
	}
}

func TestToggleSelectedRefusesEvent(t *testing.T) {
	m := newTestModel(t)

	m.blocks = []timeline.Block{{ID: "evt", Title: "Flight", IsEvent: true}}
	m.selected = 0
	m.toggleSelected()

	if m.status == "" {
		t.Error("toggling an event should set a status message")
	}
}

func TestToggleSelectedMarksActivityComplete(t *testing.T) {
	m := newTestModel(t)

	if err := m.store.AddActivity(models.Activity{
		ID: "run", Title: "Morning Run", Frequency: constants.FrequencyDaily,
		Time: "06:30", DurationMin: 30, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}
	m.reload()
	if len(m.blocks) == 0 {
		t.Fatal("expected a laid-out block")
	}

	m.selected = 0
	m.toggleSelected()

	activity, err := m.store.GetActivity("run")
	if err != nil {
		t.Fatalf("GetActivity() error = %v", err)
	}
	want := m.date.Format(constants.DateFormat)
	if len(activity.CompletedDates) != 1 || activity.CompletedDates[0] != want {
		t.Errorf("CompletedDates = %v, want [%s]", activity.CompletedDates, want)
	}
}
