package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
)

const activityColumns = `id, title, category, frequency, repeat_days, schedule,
	time, duration_min, pre_min, reward_min, total_override_min,
	archived, created_at, deleted_at`

func (s *Store) AddActivity(activity models.Activity) error {
	repeatDays, err := json.Marshal(activity.RepeatDays)
	if err != nil {
		return fmt.Errorf("failed to encode repeat days: %w", err)
	}
	schedule, err := json.Marshal(activity.Schedule)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO activities (id, title, category, frequency, repeat_days, schedule,
			time, duration_min, pre_min, reward_min, total_override_min, archived, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			category = EXCLUDED.category,
			frequency = EXCLUDED.frequency,
			repeat_days = EXCLUDED.repeat_days,
			schedule = EXCLUDED.schedule,
			time = EXCLUDED.time,
			duration_min = EXCLUDED.duration_min,
			pre_min = EXCLUDED.pre_min,
			reward_min = EXCLUDED.reward_min,
			total_override_min = EXCLUDED.total_override_min,
			archived = EXCLUDED.archived`,
		activity.ID, activity.Title, activity.Category, string(activity.Frequency),
		string(repeatDays), string(schedule),
		activity.Time, activity.DurationMin, activity.PreMin, activity.RewardMin,
		activity.TotalOverrideMin, activity.Archived,
		activity.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save activity: %w", err)
	}

	for _, day := range activity.CompletedDates {
		if err := s.SetActivityCompleted(activity.ID, day, true); err != nil {
			return err
		}
	}
	for _, day := range activity.ExcludedDates {
		if err := s.SetActivityExcluded(activity.ID, day, true); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) UpdateActivity(activity models.Activity) error {
	return s.AddActivity(activity)
}

func (s *Store) GetActivity(id string) (models.Activity, error) {
	row := s.db.QueryRow(
		`SELECT `+activityColumns+` FROM activities WHERE id = $1 AND deleted_at IS NULL`, id)
	return s.scanActivity(row)
}

func (s *Store) GetAllActivities(includeArchived, includeDeleted bool) ([]models.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE TRUE`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeArchived {
		query += " AND NOT archived"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		activity, err := s.scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}

func (s *Store) ArchiveActivity(id string) error {
	return s.setActivityFlag(id, "archived", true)
}

func (s *Store) UnarchiveActivity(id string) error {
	return s.setActivityFlag(id, "archived", false)
}

func (s *Store) DeleteActivity(id string) error {
	result, err := s.db.Exec(`UPDATE activities SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return requireRow(result, "activity", id)
}

func (s *Store) RestoreActivity(id string) error {
	result, err := s.db.Exec(`UPDATE activities SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to restore activity: %w", err)
	}
	return requireRow(result, "deleted activity", id)
}

func (s *Store) SetActivityCompleted(id, day string, completed bool) error {
	return s.setDayMark("activity_completions", id, day, completed)
}

func (s *Store) SetActivityExcluded(id, day string, excluded bool) error {
	return s.setDayMark("activity_exclusions", id, day, excluded)
}

func (s *Store) setDayMark(table, id, day string, set bool) error {
	var err error
	if set {
		_, err = s.db.Exec(
			`INSERT INTO `+table+` (activity_id, day) VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, day)
	} else {
		_, err = s.db.Exec(`DELETE FROM `+table+` WHERE activity_id = $1 AND day = $2`, id, day)
	}
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	return nil
}

func (s *Store) setActivityFlag(id, column string, value bool) error {
	result, err := s.db.Exec(
		`UPDATE activities SET `+column+` = $1 WHERE id = $2 AND deleted_at IS NULL`, value, id)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return requireRow(result, "activity", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanActivity(row rowScanner) (models.Activity, error) {
	var a models.Activity
	var frequency, repeatDays, schedule, createdAt string
	var deletedAt sql.NullString

	err := row.Scan(
		&a.ID, &a.Title, &a.Category, &frequency, &repeatDays, &schedule,
		&a.Time, &a.DurationMin, &a.PreMin, &a.RewardMin, &a.TotalOverrideMin,
		&a.Archived, &createdAt, &deletedAt,
	)
	if err != nil {
		return models.Activity{}, err
	}

	a.Frequency = constants.Frequency(frequency)

	if err := json.Unmarshal([]byte(repeatDays), &a.RepeatDays); err != nil {
		return models.Activity{}, fmt.Errorf("failed to decode repeat days: %w", err)
	}
	if err := json.Unmarshal([]byte(schedule), &a.Schedule); err != nil {
		return models.Activity{}, fmt.Errorf("failed to decode schedule: %w", err)
	}

	a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Activity{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Activity{}, fmt.Errorf("failed to parse deleted_at: %w", err)
		}
		a.DeletedAt = &t
	}

	a.CompletedDates, err = s.dayMarks("activity_completions", a.ID)
	if err != nil {
		return models.Activity{}, err
	}
	a.ExcludedDates, err = s.dayMarks("activity_exclusions", a.ID)
	if err != nil {
		return models.Activity{}, err
	}

	return a, nil
}

func (s *Store) dayMarks(table, activityID string) ([]string, error) {
	rows, err := s.db.Query(`SELECT day FROM `+table+` WHERE activity_id = $1 ORDER BY day`, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func requireRow(result sql.Result, what, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s not found: %s", what, id)
	}
	return nil
}
