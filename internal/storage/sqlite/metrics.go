package sqlite

import (
	"fmt"
	"time"

	"github.com/acampos-dev/secondbrain/internal/models"
)

func (s *Store) AddMetric(metric models.Metric) error {
	_, err := s.db.Exec(`
		INSERT INTO metrics (id, day, kind, value, unit, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		metric.ID, metric.Day, metric.Kind, metric.Value, metric.Unit, metric.Note,
		metric.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save metric: %w", err)
	}
	return nil
}

func (s *Store) GetMetrics(kind, startDay, endDay string) ([]models.Metric, error) {
	query := `SELECT id, day, kind, value, unit, note, created_at
		FROM metrics WHERE day >= ? AND day <= ?`
	args := []any{startDay, endDay}
	if kind != "" {
		query += " AND kind = ?"
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
	result, err := s.db.Exec(`DELETE FROM metrics WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete metric: %w", err)
	}
	return requireRow(result, "metric", id)
}
