package storage

import "github.com/acampos-dev/secondbrain/internal/models"

// Provider is the persistence boundary for every entity the application owns.
// All reads exclude soft-deleted rows unless a method says otherwise.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Activities
	AddActivity(models.Activity) error
	GetActivity(id string) (models.Activity, error)
	GetAllActivities(includeArchived, includeDeleted bool) ([]models.Activity, error)
	UpdateActivity(models.Activity) error
	ArchiveActivity(id string) error
	UnarchiveActivity(id string) error
	DeleteActivity(id string) error
	RestoreActivity(id string) error
	// SetActivityCompleted toggles the completion mark for one calendar day.
	SetActivityCompleted(id, day string, completed bool) error
	// SetActivityExcluded suppresses or restores the activity for one day.
	SetActivityExcluded(id, day string, excluded bool) error

	// Adaptations (at most one per date; Save upserts)
	SaveAdaptation(models.Adaptation) error
	// GetAdaptation returns nil when the date has no adaptation record.
	GetAdaptation(date string) (*models.Adaptation, error)
	DeleteAdaptation(date string) error

	// Areas
	AddArea(models.Area) error
	GetAllAreas() ([]models.Area, error)
	DeleteArea(id string) error

	// Projects
	AddProject(models.Project) error
	GetProject(id string) (models.Project, error)
	GetAllProjects(includeArchived bool) ([]models.Project, error)
	UpdateProject(models.Project) error
	DeleteProject(id string) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks(includeDone, includeDeleted bool) ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error
	RestoreTask(id string) error

	// Notes
	AddNote(models.Note) error
	GetNote(id string) (models.Note, error)
	GetAllNotes() ([]models.Note, error)
	UpdateNote(models.Note) error
	DeleteNote(id string) error

	// Focus sessions
	AddFocusSession(models.FocusSession) error
	GetFocusSessionsForDay(day string) ([]models.FocusSession, error)
	GetFocusSessions(startDay, endDay string) ([]models.FocusSession, error)

	// Metrics
	AddMetric(models.Metric) error
	// GetMetrics filters by kind when kind is non-empty.
	GetMetrics(kind, startDay, endDay string) ([]models.Metric, error)
	DeleteMetric(id string) error
}
