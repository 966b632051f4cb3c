package sqlite

import (
	"fmt"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
)

func (s *Store) AddFocusSession(session models.FocusSession) error {
	_, err := s.db.Exec(`
		INSERT INTO focus_sessions (id, activity_id, day, started_at, minutes, kind, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
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
		FROM focus_sessions WHERE day >= ? AND day <= ? ORDER BY started_at`,
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
