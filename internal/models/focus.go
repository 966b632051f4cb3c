package models

import (
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
)

// FocusSession records one pomodoro-style focus or break interval, optionally
// attributed to an activity.
type FocusSession struct {
	ID         string                 `json:"id"`
	ActivityID string                 `json:"activity_id,omitempty"`
	Day        string                 `json:"day"` // YYYY-MM-DD
	StartedAt  time.Time              `json:"started_at"`
	Minutes    int                    `json:"minutes"`
	Kind       constants.SessionKind  `json:"kind"`
	Note       string                 `json:"note,omitempty"`
}
