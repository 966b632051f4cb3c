package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
)

func (s *Store) AddArea(area models.Area) error {
	_, err := s.db.Exec(`
		INSERT INTO areas (id, name, created_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		area.ID, area.Name, area.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save area: %w", err)
	}
	return nil
}

func (s *Store) GetAllAreas() ([]models.Area, error) {
	rows, err := s.db.Query(
		`SELECT id, name, created_at FROM areas WHERE deleted_at IS NULL ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query areas: %w", err)
	}
	defer rows.Close()

	var areas []models.Area
	for rows.Next() {
		var a models.Area
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Name, &createdAt); err != nil {
			return nil, err
		}
		if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

func (s *Store) DeleteArea(id string) error {
	result, err := s.db.Exec(`UPDATE areas SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}
	return requireRow(result, "area", id)
}

func (s *Store) AddProject(project models.Project) error {
	_, err := s.db.Exec(`
		INSERT INTO projects (id, name, area_id, status, created_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			area_id = excluded.area_id,
			status = excluded.status`,
		project.ID, project.Name, project.AreaID, string(project.Status),
		project.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (s *Store) UpdateProject(project models.Project) error {
	return s.AddProject(project)
}

func (s *Store) GetProject(id string) (models.Project, error) {
	row := s.db.QueryRow(`
		SELECT id, name, area_id, status, created_at
		FROM projects WHERE id = ? AND deleted_at IS NULL`, id)
	return scanProject(row)
}

func (s *Store) GetAllProjects(includeArchived bool) ([]models.Project, error) {
	query := `SELECT id, name, area_id, status, created_at FROM projects WHERE deleted_at IS NULL`
	if !includeArchived {
		query += ` AND status != '` + string(constants.ProjectArchived) + `'`
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *Store) DeleteProject(id string) error {
	result, err := s.db.Exec(`UPDATE projects SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return requireRow(result, "project", id)
}

func scanProject(row rowScanner) (models.Project, error) {
	var p models.Project
	var status, createdAt string
	if err := row.Scan(&p.ID, &p.Name, &p.AreaID, &status, &createdAt); err != nil {
		return models.Project{}, err
	}
	p.Status = constants.ProjectStatus(status)
	var err error
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.Project{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return p, nil
}

func (s *Store) AddTask(task models.Task) error {
	var completedAt any
	if task.CompletedAt != nil {
		completedAt = task.CompletedAt.Format(time.RFC3339)
	}
	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, status, due, project_id, note, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			status = excluded.status,
			due = excluded.due,
			project_id = excluded.project_id,
			note = excluded.note,
			completed_at = excluded.completed_at`,
		task.ID, task.Title, string(task.Status), task.Due, task.ProjectID, task.Note,
		task.CreatedAt.Format(time.RFC3339), completedAt)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

func (s *Store) UpdateTask(task models.Task) error {
	return s.AddTask(task)
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, title, status, due, project_id, note, created_at, completed_at, deleted_at
		FROM tasks WHERE id = ? AND deleted_at IS NULL`, id)
	return scanTask(row)
}

func (s *Store) GetAllTasks(includeDone, includeDeleted bool) ([]models.Task, error) {
	query := `SELECT id, title, status, due, project_id, note, created_at, completed_at, deleted_at
		FROM tasks WHERE 1=1`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeDone {
		query += ` AND status != '` + string(constants.TaskStatusDone) + `'`
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) DeleteTask(id string) error {
	result, err := s.db.Exec(`UPDATE tasks SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireRow(result, "task", id)
}

func (s *Store) RestoreTask(id string) error {
	result, err := s.db.Exec(`UPDATE tasks SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to restore task: %w", err)
	}
	return requireRow(result, "deleted task", id)
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var status, createdAt string
	var completedAt, deletedAt sql.NullString
	if err := row.Scan(&t.ID, &t.Title, &status, &t.Due, &t.ProjectID, &t.Note,
		&createdAt, &completedAt, &deletedAt); err != nil {
		return models.Task{}, err
	}
	t.Status = constants.TaskStatus(status)

	var err error
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.Task{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if completedAt.Valid {
		ts, err := time.Parse(time.RFC3339, completedAt.String)
		if err != nil {
			return models.Task{}, fmt.Errorf("failed to parse completed_at: %w", err)
		}
		t.CompletedAt = &ts
	}
	if deletedAt.Valid {
		ts, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Task{}, fmt.Errorf("failed to parse deleted_at: %w", err)
		}
		t.DeletedAt = &ts
	}
	return t, nil
}
