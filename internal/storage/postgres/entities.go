package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
)

func (s *Store) SaveAdaptation(adaptation models.Adaptation) error {
	entries, err := json.Marshal(adaptation.Entries)
	if err != nil {
		return fmt.Errorf("failed to encode adaptation entries: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO adaptations (date, entries, event_title, event_time, event_duration_min, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date) DO UPDATE SET
			entries = EXCLUDED.entries,
			event_title = EXCLUDED.event_title,
			event_time = EXCLUDED.event_time,
			event_duration_min = EXCLUDED.event_duration_min`,
		adaptation.Date, string(entries),
		adaptation.EventTitle, adaptation.EventTime, adaptation.EventDurationMin,
		adaptation.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save adaptation: %w", err)
	}
	return nil
}

func (s *Store) GetAdaptation(date string) (*models.Adaptation, error) {
	var ad models.Adaptation
	var entries, createdAt string

	err := s.db.QueryRow(`
		SELECT date, entries, event_title, event_time, event_duration_min, created_at
		FROM adaptations WHERE date = $1`, date).
		Scan(&ad.Date, &entries, &ad.EventTitle, &ad.EventTime, &ad.EventDurationMin, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query adaptation: %w", err)
	}

	if err := json.Unmarshal([]byte(entries), &ad.Entries); err != nil {
		return nil, fmt.Errorf("failed to decode adaptation entries: %w", err)
	}
	ad.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &ad, nil
}

func (s *Store) DeleteAdaptation(date string) error {
	result, err := s.db.Exec(`DELETE FROM adaptations WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete adaptation: %w", err)
	}
	return requireRow(result, "adaptation", date)
}

func (s *Store) AddArea(area models.Area) error {
	_, err := s.db.Exec(`
		INSERT INTO areas (id, name, created_at) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
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
	result, err := s.db.Exec(`UPDATE areas SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}
	return requireRow(result, "area", id)
}

func (s *Store) AddProject(project models.Project) error {
	_, err := s.db.Exec(`
		INSERT INTO projects (id, name, area_id, status, created_at) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			area_id = EXCLUDED.area_id,
			status = EXCLUDED.status`,
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
		FROM projects WHERE id = $1 AND deleted_at IS NULL`, id)
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
	result, err := s.db.Exec(`UPDATE projects SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			status = EXCLUDED.status,
			due = EXCLUDED.due,
			project_id = EXCLUDED.project_id,
			note = EXCLUDED.note,
			completed_at = EXCLUDED.completed_at`,
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
		FROM tasks WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanTask(row)
}

func (s *Store) GetAllTasks(includeDone, includeDeleted bool) ([]models.Task, error) {
	query := `SELECT id, title, status, due, project_id, note, created_at, completed_at, deleted_at
		FROM tasks WHERE TRUE`
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
	result, err := s.db.Exec(`UPDATE tasks SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireRow(result, "task", id)
}

func (s *Store) RestoreTask(id string) error {
	result, err := s.db.Exec(`UPDATE tasks SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`, id)
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

func (s *Store) AddNote(note models.Note) error {
	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO notes (id, title, body, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			tags = EXCLUDED.tags,
			updated_at = EXCLUDED.updated_at`,
		note.ID, note.Title, note.Body, string(tags),
		note.CreatedAt.Format(time.RFC3339), note.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	return nil
}

func (s *Store) UpdateNote(note models.Note) error {
	return s.AddNote(note)
}

func (s *Store) GetNote(id string) (models.Note, error) {
	row := s.db.QueryRow(`
		SELECT id, title, body, tags, created_at, updated_at
		FROM notes WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanNote(row)
}

func (s *Store) GetAllNotes() ([]models.Note, error) {
	rows, err := s.db.Query(`
		SELECT id, title, body, tags, created_at, updated_at
		FROM notes WHERE deleted_at IS NULL ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *Store) DeleteNote(id string) error {
	result, err := s.db.Exec(`UPDATE notes SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return requireRow(result, "note", id)
}

func scanNote(row rowScanner) (models.Note, error) {
	var n models.Note
	var tags, createdAt, updatedAt string
	if err := row.Scan(&n.ID, &n.Title, &n.Body, &tags, &createdAt, &updatedAt); err != nil {
		return models.Note{}, err
	}
	if err := json.Unmarshal([]byte(tags), &n.Tags); err != nil {
		return models.Note{}, fmt.Errorf("failed to decode tags: %w", err)
	}
	var err error
	if n.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.Note{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if n.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return models.Note{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return n, nil
}

func (s *Store) AddFocusSession(session models.FocusSession) error {
	_, err := s.db.Exec(`
		INSERT INTO focus_sessions (id, activity_id, day, started_at, minutes, kind, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		session.ID, session.ActivityID, session.Day,
		session.StartedAt.Format(time.RFC3339), session.Minutes, string(session.Kind), session.Note)
	if err != nil {
		return fmt.Errorf("failed to save focus session: %w", err)
	}
	return nil
}

func (s *Store) GetFocusSessionsForDay(day string) ([]models.FocusSession, error) {
	return s.GetFocusSessions(day, day)
}

func (s *Store) GetFocusSessions(startDay, endDay string) ([]models.FocusSession, error) {
	rows, err := s.db.Query(`
		SELECT id, activity_id, day, started_at, minutes, kind, note
		FROM focus_sessions WHERE day >= $1 AND day <= $2 ORDER BY started_at`,
		startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("failed to query focus sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.FocusSession
	for rows.Next() {
		var fs models.FocusSession
		var startedAt, kind string
		if err := rows.Scan(&fs.ID, &fs.ActivityID, &fs.Day, &startedAt, &fs.Minutes, &kind, &fs.Note); err != nil {
			return nil, err
		}
		fs.Kind = constants.SessionKind(kind)
		if fs.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		sessions = append(sessions, fs)
	}
	return sessions, rows.Err()
}

func (s *Store) AddMetric(metric models.Metric) error {
	_, err := s.db.Exec(`
		INSERT INTO metrics (id, day, kind, value, unit, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		metric.ID, metric.Day, metric.Kind, metric.Value, metric.Unit, metric.Note,
		metric.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save metric: %w", err)
	}
	return nil
}

func (s *Store) GetMetrics(kind, startDay, endDay string) ([]models.Metric, error) {
	query := `SELECT id, day, kind, value, unit, note, created_at
		FROM metrics WHERE day >= $1 AND day <= $2`
	args := []any{startDay, endDay}
	if kind != "" {
		query += " AND kind = $3"
		args = append(args, kind)
	}
	query += " ORDER BY day, created_at"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics: %w", err)
	}
	defer rows.Close()

	var metrics []models.Metric
	for rows.Next() {
		var m models.Metric
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Day, &m.Kind, &m.Value, &m.Unit, &m.Note, &createdAt); err != nil {
			return nil, err
		}
		if m.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

func (s *Store) DeleteMetric(id string) error {
	result, err := s.db.Exec(`DELETE FROM metrics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete metric: %w", err)
	}
	return requireRow(result, "metric", id)
}
