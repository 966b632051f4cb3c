package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/acampos-dev/secondbrain/internal/models"
)

func (s *Store) AddNote(note models.Note) error {
	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO notes (id, title, body, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			tags = excluded.tags,
			updated_at = excluded.updated_at`,
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
		FROM notes WHERE id = ? AND deleted_at IS NULL`, id)
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
	result, err := s.db.Exec(`UPDATE notes SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
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
