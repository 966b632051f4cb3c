package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "secondbrain.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on missing database should return an error")
	}
}

func TestInitSeedsDefaultSettings(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings.DayStart != constants.DefaultDayStart {
		t.Errorf("DayStart = %q, want %q", settings.DayStart, constants.DefaultDayStart)
	}
	if settings.FocusMin != constants.DefaultFocusMin {
		t.Errorf("FocusMin = %d, want %d", settings.FocusMin, constants.DefaultFocusMin)
	}
	if !settings.NotificationsEnabled {
		t.Error("NotificationsEnabled should default to true")
	}

	settings.DayStart = "05:30"
	settings.FocusMin = 50
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got.DayStart != "05:30" || got.FocusMin != 50 {
		t.Errorf("settings not persisted: got %+v", got)
	}
}

func TestActivityRoundTrip(t *testing.T) {
	store := newTestStore(t)

	activity := models.Activity{
		ID:        "morning-run",
		Title:     "Morning Run",
		Category:  "health",
		Frequency: constants.FrequencySpecificDays,
		RepeatDays: []time.Weekday{
			time.Monday, time.Wednesday, time.Friday,
		},
		Schedule: map[time.Weekday]models.ScheduleEntry{
			time.Friday: {Time: "07:30", DurationMin: 45},
		},
		Time:        "06:30",
		DurationMin: 30,
		PreMin:      10,
		RewardMin:   5,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	if err := store.AddActivity(activity); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	got, err := store.GetActivity("morning-run")
	if err != nil {
		t.Fatalf("GetActivity() error = %v", err)
	}
	if got.Title != activity.Title || got.Time != activity.Time {
		t.Errorf("GetActivity() = %+v, want %+v", got, activity)
	}
	if len(got.RepeatDays) != 3 || got.RepeatDays[1] != time.Wednesday {
		t.Errorf("RepeatDays = %v", got.RepeatDays)
	}
	entry, ok := got.ScheduleFor(time.Friday)
	if !ok || entry.Time != "07:30" || entry.DurationMin != 45 {
		t.Errorf("ScheduleFor(Friday) = %+v, %v", entry, ok)
	}
}

func TestActivityCompletionAndExclusion(t *testing.T) {
	store := newTestStore(t)

	activity := models.Activity{
		ID:        "journal",
		Title:     "Journal",
		Frequency: constants.FrequencyDaily,
		CreatedAt: time.Now(),
	}
	if err := store.AddActivity(activity); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	if err := store.SetActivityCompleted("journal", "2025-03-12", true); err != nil {
		t.Fatalf("SetActivityCompleted() error = %v", err)
	}
	// Marking the same day twice must not error or duplicate.
	if err := store.SetActivityCompleted("journal", "2025-03-12", true); err != nil {
		t.Fatalf("SetActivityCompleted() repeat error = %v", err)
	}
	if err := store.SetActivityExcluded("journal", "2025-03-14", true); err != nil {
		t.Fatalf("SetActivityExcluded() error = %v", err)
	}

	got, err := store.GetActivity("journal")
	if err != nil {
		t.Fatalf("GetActivity() error = %v", err)
	}
	if len(got.CompletedDates) != 1 || got.CompletedDates[0] != "2025-03-12" {
		t.Errorf("CompletedDates = %v", got.CompletedDates)
	}
	if len(got.ExcludedDates) != 1 || got.ExcludedDates[0] != "2025-03-14" {
		t.Errorf("ExcludedDates = %v", got.ExcludedDates)
	}

	if err := store.SetActivityCompleted("journal", "2025-03-12", false); err != nil {
		t.Fatalf("SetActivityCompleted(false) error = %v", err)
	}
	got, _ = store.GetActivity("journal")
	if len(got.CompletedDates) != 0 {
		t.Errorf("CompletedDates after unmark = %v", got.CompletedDates)
	}
}

func TestActivityArchiveAndSoftDelete(t *testing.T) {
	store := newTestStore(t)

	for _, id := range []string{"a", "b"} {
		activity := models.Activity{ID: id, Title: id, Frequency: constants.FrequencyDaily, CreatedAt: time.Now()}
		if err := store.AddActivity(activity); err != nil {
			t.Fatalf("AddActivity(%s) error = %v", id, err)
		}
	}

	if err := store.ArchiveActivity("a"); err != nil {
		t.Fatalf("ArchiveActivity() error = %v", err)
	}
	active, err := store.GetAllActivities(false, false)
	if err != nil {
		t.Fatalf("GetAllActivities() error = %v", err)
	}
	if len(active) != 1 || active[0].ID != "b" {
		t.Errorf("active activities = %v", active)
	}
	all, _ := store.GetAllActivities(true, false)
	if len(all) != 2 {
		t.Errorf("with archived: got %d, want 2", len(all))
	}

	if err := store.UnarchiveActivity("a"); err != nil {
		t.Fatalf("UnarchiveActivity() error = %v", err)
	}
	if err := store.DeleteActivity("b"); err != nil {
		t.Fatalf("DeleteActivity() error = %v", err)
	}
	if _, err := store.GetActivity("b"); err == nil {
		t.Error("GetActivity() on deleted activity should return an error")
	}
	if err := store.RestoreActivity("b"); err != nil {
		t.Fatalf("RestoreActivity() error = %v", err)
	}
	if _, err := store.GetActivity("b"); err != nil {
		t.Errorf("GetActivity() after restore error = %v", err)
	}

	if err := store.DeleteActivity("missing"); err == nil {
		t.Error("DeleteActivity() on unknown id should return an error")
	}
}

func TestAdaptationUpsert(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetAdaptation("2025-03-12")
	if err != nil {
		t.Fatalf("GetAdaptation() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetAdaptation() on empty store = %+v, want nil", got)
	}

	adaptation := models.Adaptation{
		Date: "2025-03-12",
		Entries: map[string]models.AdaptedEntry{
			"journal": {Time: "21:00", Rationale: "late meeting"},
		},
		EventTitle:       "Dentist",
		EventTime:        "14:00",
		EventDurationMin: 90,
		CreatedAt:        time.Now(),
	}
	if err := store.SaveAdaptation(adaptation); err != nil {
		t.Fatalf("SaveAdaptation() error = %v", err)
	}

	adaptation.EventTime = "15:00"
	if err := store.SaveAdaptation(adaptation); err != nil {
		t.Fatalf("SaveAdaptation() upsert error = %v", err)
	}

	got, err = store.GetAdaptation("2025-03-12")
	if err != nil {
		t.Fatalf("GetAdaptation() error = %v", err)
	}
	if got == nil {
		t.Fatal("GetAdaptation() = nil after save")
	}
	if got.EventTime != "15:00" {
		t.Errorf("EventTime = %q, want 15:00 after upsert", got.EventTime)
	}
	entry, ok := got.EntryFor("journal")
	if !ok || entry.Time != "21:00" || entry.Rationale != "late meeting" {
		t.Errorf("EntryFor(journal) = %+v, %v", entry, ok)
	}

	if err := store.DeleteAdaptation("2025-03-12"); err != nil {
		t.Fatalf("DeleteAdaptation() error = %v", err)
	}
	if got, _ := store.GetAdaptation("2025-03-12"); got != nil {
		t.Errorf("adaptation still present after delete: %+v", got)
	}
}

func TestProjectAndAreaLifecycle(t *testing.T) {
	store := newTestStore(t)

	area := models.Area{ID: "health", Name: "Health", CreatedAt: time.Now()}
	if err := store.AddArea(area); err != nil {
		t.Fatalf("AddArea() error = %v", err)
	}

	project := models.Project{
		ID: "marathon", Name: "Run a marathon", AreaID: "health",
		Status: constants.ProjectActive, CreatedAt: time.Now(),
	}
	if err := store.AddProject(project); err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}

	project.Status = constants.ProjectArchived
	if err := store.UpdateProject(project); err != nil {
		t.Fatalf("UpdateProject() error = %v", err)
	}

	active, err := store.GetAllProjects(false)
	if err != nil {
		t.Fatalf("GetAllProjects() error = %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active projects = %v, want none", active)
	}
	all, _ := store.GetAllProjects(true)
	if len(all) != 1 || all[0].Status != constants.ProjectArchived {
		t.Errorf("all projects = %v", all)
	}

	if err := store.DeleteArea("health"); err != nil {
		t.Fatalf("DeleteArea() error = %v", err)
	}
	areas, _ := store.GetAllAreas()
	if len(areas) != 0 {
		t.Errorf("areas after delete = %v", areas)
	}
}

func TestTaskLifecycle(t *testing.T) {
	store := newTestStore(t)

	task := models.Task{
		ID: "t1", Title: "File taxes", Status: constants.TaskStatusNext,
		Due: "2025-04-15", CreatedAt: time.Now(),
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	task.Status = constants.TaskStatusDone
	task.CompletedAt = &now
	if err := store.UpdateTask(task); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	open, err := store.GetAllTasks(false, false)
	if err != nil {
		t.Fatalf("GetAllTasks() error = %v", err)
	}
	if len(open) != 0 {
		t.Errorf("open tasks = %v, want none", open)
	}
	done, _ := store.GetAllTasks(true, false)
	if len(done) != 1 || done[0].CompletedAt == nil {
		t.Errorf("done tasks = %+v", done)
	}

	if err := store.DeleteTask("t1"); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if err := store.RestoreTask("t1"); err != nil {
		t.Fatalf("RestoreTask() error = %v", err)
	}
	if _, err := store.GetTask("t1"); err != nil {
		t.Errorf("GetTask() after restore error = %v", err)
	}
}

func TestNoteRoundTrip(t *testing.T) {
	store := newTestStore(t)

	note := models.Note{
		ID: "n1", Title: "Book ideas", Body: "- deep work\n- atomic habits",
		Tags:      []string{"reading", "someday"},
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	if err := store.AddNote(note); err != nil {
		t.Fatalf("AddNote() error = %v", err)
	}

	got, err := store.GetNote("n1")
	if err != nil {
		t.Fatalf("GetNote() error = %v", err)
	}
	if got.Body != note.Body || len(got.Tags) != 2 || got.Tags[0] != "reading" {
		t.Errorf("GetNote() = %+v", got)
	}

	if err := store.DeleteNote("n1"); err != nil {
		t.Fatalf("DeleteNote() error = %v", err)
	}
	notes, _ := store.GetAllNotes()
	if len(notes) != 0 {
		t.Errorf("notes after delete = %v", notes)
	}
}

func TestFocusSessionQueries(t *testing.T) {
	store := newTestStore(t)

	sessions := []models.FocusSession{
		{ID: "f1", Day: "2025-03-10", StartedAt: time.Now(), Minutes: 25, Kind: constants.SessionFocus},
		{ID: "f2", Day: "2025-03-12", StartedAt: time.Now(), Minutes: 5, Kind: constants.SessionBreak},
		{ID: "f3", Day: "2025-03-14", StartedAt: time.Now(), Minutes: 25, Kind: constants.SessionFocus, ActivityID: "journal"},
	}
	for _, fs := range sessions {
		if err := store.AddFocusSession(fs); err != nil {
			t.Fatalf("AddFocusSession(%s) error = %v", fs.ID, err)
		}
	}

	day, err := store.GetFocusSessionsForDay("2025-03-12")
	if err != nil {
		t.Fatalf("GetFocusSessionsForDay() error = %v", err)
	}
	if len(day) != 1 || day[0].Kind != constants.SessionBreak {
		t.Errorf("sessions for day = %+v", day)
	}

	week, err := store.GetFocusSessions("2025-03-10", "2025-03-16")
	if err != nil {
		t.Fatalf("GetFocusSessions() error = %v", err)
	}
	if len(week) != 3 {
		t.Errorf("sessions for week = %d, want 3", len(week))
	}
}

func TestMetricQueries(t *testing.T) {
	store := newTestStore(t)

	metrics := []models.Metric{
		{ID: "m1", Day: "2025-03-10", Kind: "weight", Value: 81.4, Unit: "kg", CreatedAt: time.Now()},
		{ID: "m2", Day: "2025-03-11", Kind: "sleep", Value: 7.5, Unit: "h", CreatedAt: time.Now()},
		{ID: "m3", Day: "2025-03-12", Kind: "weight", Value: 81.1, Unit: "kg", CreatedAt: time.Now()},
	}
	for _, m := range metrics {
		if err := store.AddMetric(m); err != nil {
			t.Fatalf("AddMetric(%s) error = %v", m.ID, err)
		}
	}

	weights, err := store.GetMetrics("weight", "2025-03-01", "2025-03-31")
	if err != nil {
		t.Fatalf("GetMetrics() error = %v", err)
	}
	if len(weights) != 2 || weights[1].Value != 81.1 {
		t.Errorf("weight metrics = %+v", weights)
	}

	all, _ := store.GetMetrics("", "2025-03-01", "2025-03-31")
	if len(all) != 3 {
		t.Errorf("all metrics = %d, want 3", len(all))
	}

	if err := store.DeleteMetric("m2"); err != nil {
		t.Fatalf("DeleteMetric() error = %v", err)
	}
	if rest, _ := store.GetMetrics("", "2025-03-01", "2025-03-31"); len(rest) != 2 {
		t.Errorf("metrics after delete = %d, want 2", len(rest))
	}
}
