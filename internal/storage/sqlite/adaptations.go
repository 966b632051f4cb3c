package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/acampos-dev/secondbrain/internal/models"
)

func (s *Store) SaveAdaptation(adaptation models.Adaptation) error {
	entries, err := json.Marshal(adaptation.Entries)
	if err != nil {
		return fmt.Errorf("failed to encode adaptation entries: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO adaptations (date, entries, event_title, event_time, event_duration_min, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			entries = excluded.entries,
			event_title = excluded.event_title,
			event_time = excluded.event_time,
			event_duration_min = excluded.event_duration_min`,
		adaptation.Date, string(entries),
		adaptation.EventTitle, adaptation.EventTime, adaptation.EventDurationMin,
		adaptation.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save adaptation: %w", err)
	}
	return nil
}

// GetAdaptation returns nil without error when no adaptation exists for the
// date, so callers can pass the result straight to the layout engine.
func (s *Store) GetAdaptation(date string) (*models.Adaptation, error) {
	var ad models.Adaptation
	var entries, createdAt string

	err := s.db.QueryRow(`
		SELECT date, entries, event_title, event_time, event_duration_min, created_at
		FROM adaptations WHERE date = ?`, date).
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
	result, err := s.db.Exec(`DELETE FROM adaptations WHERE date = ?`, date)
	if err != nil {
		return fmt.Errorf("failed to delete adaptation: %w", err)
	}
	return requireRow(result, "adaptation", date)
}
