package storage

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/acampos-dev/secondbrain/internal/models"
)

// Snapshot is the portable JSON document produced by export and consumed by
// import. Adaptations are keyed by date in storage but exported as a list.
type Snapshot struct {
	Version    int                 `json:"version"`
	Settings   models.Settings     `json:"settings"`
	Activities []models.Activity   `json:"activities,omitempty"`
	Areas      []models.Area       `json:"areas,omitempty"`
	Projects   []models.Project    `json:"projects,omitempty"`
	Tasks      []models.Task       `json:"tasks,omitempty"`
	Notes      []models.Note       `json:"notes,omitempty"`
	Sessions   []models.FocusSession `json:"focus_sessions,omitempty"`
	Metrics    []models.Metric     `json:"metrics,omitempty"`
}

const snapshotVersion = 1

// Export writes the full contents of the provider as an indented JSON
// snapshot. Archived activities and done tasks are included; soft-deleted
// rows are not.
func Export(p Provider, w io.Writer) error {
	settings, err := p.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	snapshot := Snapshot{
		Version:  snapshotVersion,
		Settings: settings,
	}
	if snapshot.Activities, err = p.GetAllActivities(true, false); err != nil {
		return err
	}
	if snapshot.Areas, err = p.GetAllAreas(); err != nil {
		return err
	}
	if snapshot.Projects, err = p.GetAllProjects(true); err != nil {
		return err
	}
	if snapshot.Tasks, err = p.GetAllTasks(true, false); err != nil {
		return err
	}
	if snapshot.Notes, err = p.GetAllNotes(); err != nil {
		return err
	}
	if snapshot.Sessions, err = p.GetFocusSessions("0000-00-00", "9999-12-31"); err != nil {
		return err
	}
	if snapshot.Metrics, err = p.GetMetrics("", "0000-00-00", "9999-12-31"); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot)
}

// ImportResult reports what an import run wrote.
type ImportResult struct {
	Activities int
	Areas      int
	Projects   int
	Tasks      int
	Notes      int
	Sessions   int
	Metrics    int
}

// Import reads either a full snapshot document or a bare array of legacy
// activity records and upserts everything into the provider. Legacy records
// go through the alias normalizer, so historical exports with keys like
// "Habit" or "Duration (minutes)" load cleanly.
func Import(p Provider, r io.Reader) (ImportResult, error) {
	var result ImportResult

	data, err := io.ReadAll(r)
	if err != nil {
		return result, fmt.Errorf("failed to read import data: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err == nil {
		for _, record := range records {
			activity := models.ActivityFromRecord(record)
			if activity.Title == "" {
				return result, fmt.Errorf("record has no recognizable title: %v", record)
			}
			if activity.ID == "" {
				activity.ID = uuid.NewString()
			}
			if err := p.AddActivity(activity); err != nil {
				return result, err
			}
			result.Activities++
		}
		return result, nil
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return result, fmt.Errorf("failed to parse import data: %w", err)
	}

	for _, activity := range snapshot.Activities {
		if err := p.AddActivity(activity); err != nil {
			return result, err
		}
		result.Activities++
	}
	for _, area := range snapshot.Areas {
		if err := p.AddArea(area); err != nil {
			return result, err
		}
		result.Areas++
	}
	for _, project := range snapshot.Projects {
		if err := p.AddProject(project); err != nil {
			return result, err
		}
		result.Projects++
	}
	for _, task := range snapshot.Tasks {
		if err := p.AddTask(task); err != nil {
			return result, err
		}
		result.Tasks++
	}
	for _, note := range snapshot.Notes {
		if err := p.AddNote(note); err != nil {
			return result, err
		}
		result.Notes++
	}
	for _, session := range snapshot.Sessions {
		if err := p.AddFocusSession(session); err != nil {
			return result, err
		}
		result.Sessions++
	}
	for _, metric := range snapshot.Metrics {
		if err := p.AddMetric(metric); err != nil {
			return result, err
		}
		result.Metrics++
	}

	return result, nil
}
