package models

import (
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
)

// Area is a PARA area of responsibility ("Health", "Finances", ...).
type Area struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Project groups tasks toward an outcome, optionally under an area.
type Project struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	AreaID    string                  `json:"area_id,omitempty"`
	Status    constants.ProjectStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	DeletedAt *time.Time              `json:"deleted_at,omitempty"`
}

// Task is a single actionable item.
type Task struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Status      constants.TaskStatus `json:"status"`
	Due         string               `json:"due,omitempty"` // YYYY-MM-DD
	ProjectID   string               `json:"project_id,omitempty"`
	Note        string               `json:"note,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`
	DeletedAt   *time.Time           `json:"deleted_at,omitempty"`
}

// Overdue reports whether the task has a due date strictly before today.
// Done tasks are never overdue.
func (t Task) Overdue(today string) bool {
	if t.Status == constants.TaskStatusDone || t.Due == "" {
		return false
	}
	return t.Due < today
}
