package timeline

import (
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

// DayStatus classifies one scheduled day of an activity's week.
type DayStatus string

const (
	StatusCompleted DayStatus = "completed"
	StatusMissed    DayStatus = "missed"
	StatusFuture    DayStatus = "future"
)

// WeekDay is one scheduled day within a weekly shape.
type WeekDay struct {
	Date    string // YYYY-MM-DD
	Weekday time.Weekday
	Status  DayStatus
}

// WeekSummary is the per-scheduled-day completion picture for the
// Monday-start week containing a reference date.
type WeekSummary struct {
	Days           []WeekDay
	CompletedCount int
}

// WeekShape computes the weekly completion shape for one activity. The week
// is the Monday-start week containing ref; only days the activity is
// scheduled on appear. A day counts as completed whenever it is in the
// activity's completed set, even when it is chronologically after today —
// pre-logged completions must not render as future.
func WeekShape(a models.Activity, ref time.Time, today string) WeekSummary {
	monday := utils.MondayOf(ref)

	var summary WeekSummary
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i)
		if !scheduledOn(a, date.Weekday()) {
			continue
		}

		day := date.Format(constants.DateFormat)
		status := StatusMissed
		switch {
		case a.CompletedOn(day):
			status = StatusCompleted
			summary.CompletedCount++
		case day > today:
			status = StatusFuture
		}

		summary.Days = append(summary.Days, WeekDay{
			Date:    day,
			Weekday: date.Weekday(),
			Status:  status,
		})
	}

	return summary
}

// scheduledOn reports whether the activity's recurrence includes the weekday.
// Unlike ActiveOn it ignores archival and per-day exclusions: the weekly
// shape reflects the nominal schedule.
func scheduledOn(a models.Activity, wd time.Weekday) bool {
	if a.Frequency == constants.FrequencyDaily {
		return true
	}
	for _, d := range a.RepeatDays {
		if d == wd {
			return true
		}
	}
	return false
}
