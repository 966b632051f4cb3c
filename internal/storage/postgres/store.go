package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
)

type Store struct {
	connStr string
	db      *sql.DB
}

func NewStore(connStr string) *Store {
	return &Store{
		connStr: connStr,
	}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		day_start TEXT NOT NULL,
		day_end TEXT NOT NULL,
		timezone TEXT NOT NULL DEFAULT 'Local',
		notifications_enabled BOOLEAN NOT NULL DEFAULT TRUE,
		focus_min INTEGER NOT NULL,
		short_break_min INTEGER NOT NULL,
		long_break_min INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		frequency TEXT NOT NULL,
		repeat_days TEXT NOT NULL DEFAULT '[]',
		schedule TEXT NOT NULL DEFAULT '{}',
		time TEXT NOT NULL DEFAULT '',
		duration_min INTEGER NOT NULL DEFAULT 0,
		pre_min INTEGER NOT NULL DEFAULT 0,
		reward_min INTEGER NOT NULL DEFAULT 0,
		total_override_min INTEGER NOT NULL DEFAULT 0,
		archived BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TEXT NOT NULL,
		deleted_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS activity_completions (
		activity_id TEXT NOT NULL,
		day TEXT NOT NULL,
		PRIMARY KEY (activity_id, day)
	)`,
	`CREATE TABLE IF NOT EXISTS activity_exclusions (
		activity_id TEXT NOT NULL,
		day TEXT NOT NULL,
		PRIMARY KEY (activity_id, day)
	)`,
	`CREATE TABLE IF NOT EXISTS adaptations (
		date TEXT PRIMARY KEY,
		entries TEXT NOT NULL DEFAULT '{}',
		event_title TEXT NOT NULL DEFAULT '',
		event_time TEXT NOT NULL DEFAULT '',
		event_duration_min INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS areas (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL,
		deleted_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		area_id TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		created_at TEXT NOT NULL,
		deleted_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		status TEXT NOT NULL,
		due TEXT NOT NULL DEFAULT '',
		project_id TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		completed_at TEXT,
		deleted_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		body TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		deleted_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS focus_sessions (
		id TEXT PRIMARY KEY,
		activity_id TEXT NOT NULL DEFAULT '',
		day TEXT NOT NULL,
		started_at TEXT NOT NULL,
		minutes INTEGER NOT NULL,
		kind TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS metrics (
		id TEXT PRIMARY KEY,
		day TEXT NOT NULL,
		kind TEXT NOT NULL,
		value DOUBLE PRECISION NOT NULL,
		unit TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	if _, err := s.GetSettings(); err != nil {
		defaults := models.Settings{
			DayStart:             constants.DefaultDayStart,
			DayEnd:               constants.DefaultDayEnd,
			Timezone:             "Local",
			NotificationsEnabled: true,
			FocusMin:             constants.DefaultFocusMin,
			ShortBreakMin:        constants.DefaultShortBreakMin,
			LongBreakMin:         constants.DefaultLongBreakMin,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}
	return nil
}

func (s *Store) Load() error {
	if err := s.open(); err != nil {
		return err
	}

	var initialized bool
	err := s.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'settings')`).
		Scan(&initialized)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if !initialized {
		return fmt.Errorf("storage not initialized, run 'sb init' first")
	}

	// Existing databases may predate newer tables; creating is idempotent.
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to verify schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.connStr
}

func (s *Store) GetSettings() (models.Settings, error) {
	var settings models.Settings
	err := s.db.QueryRow(`
		SELECT day_start, day_end, timezone, notifications_enabled,
			focus_min, short_break_min, long_break_min
		FROM settings WHERE id = 1`).
		Scan(&settings.DayStart, &settings.DayEnd, &settings.Timezone,
			&settings.NotificationsEnabled,
			&settings.FocusMin, &settings.ShortBreakMin, &settings.LongBreakMin)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, day_start, day_end, timezone, notifications_enabled,
			focus_min, short_break_min, long_break_min)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			day_start = EXCLUDED.day_start,
			day_end = EXCLUDED.day_end,
			timezone = EXCLUDED.timezone,
			notifications_enabled = EXCLUDED.notifications_enabled,
			focus_min = EXCLUDED.focus_min,
			short_break_min = EXCLUDED.short_break_min,
			long_break_min = EXCLUDED.long_break_min`,
		settings.DayStart, settings.DayEnd, settings.Timezone, settings.NotificationsEnabled,
		settings.FocusMin, settings.ShortBreakMin, settings.LongBreakMin)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
