package models

import (
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
)

// ScheduleEntry overrides an activity's timing for one weekday. A zero value
// means "no override": Time == "" falls back to the activity's scalar fields.
type ScheduleEntry struct {
	Time        string `json:"time,omitempty"`         // HH:MM or free-form ("7:30 pm")
	DurationMin int    `json:"duration_min,omitempty"` // core duration
	PreMin      int    `json:"pre_min,omitempty"`
	RewardMin   int    `json:"reward_min,omitempty"`
}

// Activity is a recurring habit-like record with scheduling rules.
type Activity struct {
	ID         string                           `json:"id"`
	Title      string                           `json:"title"`
	Category   string                           `json:"category,omitempty"`
	Frequency  constants.Frequency              `json:"frequency"`
	RepeatDays []time.Weekday                   `json:"repeat_days,omitempty"` // used when frequency = specific_days
	Schedule   map[time.Weekday]ScheduleEntry   `json:"schedule,omitempty"`    // per-weekday overrides

	// Scalar fallbacks used when no per-weekday schedule entry exists.
	Time        string `json:"time,omitempty"`
	DurationMin int    `json:"duration_min,omitempty"` // core duration
	PreMin      int    `json:"pre_min,omitempty"`
	RewardMin   int    `json:"reward_min,omitempty"`

	// TotalOverrideMin, when set, replaces the pre+core+reward sum outright.
	TotalOverrideMin int `json:"total_override_min,omitempty"`

	CompletedDates []string `json:"completed_dates,omitempty"` // YYYY-MM-DD
	ExcludedDates  []string `json:"excluded_dates,omitempty"`  // YYYY-MM-DD, per-day suppression

	Archived  bool       `json:"archived"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// ActiveOn reports whether the activity occurs on the given date: not archived,
// the date is not excluded, and the recurrence matches the date's weekday.
func (a Activity) ActiveOn(date time.Time) bool {
	if a.Archived {
		return false
	}
	if a.ExcludedOn(date.Format(constants.DateFormat)) {
		return false
	}
	switch a.Frequency {
	case constants.FrequencyDaily:
		return true
	case constants.FrequencySpecificDays:
		for _, wd := range a.RepeatDays {
			if wd == date.Weekday() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CompletedOn reports whether the activity was marked complete on the given day.
func (a Activity) CompletedOn(day string) bool {
	for _, d := range a.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// ExcludedOn reports whether the activity is suppressed for the given day.
func (a Activity) ExcludedOn(day string) bool {
	for _, d := range a.ExcludedDates {
		if d == day {
			return true
		}
	}
	return false
}

// ScheduleFor resolves the timing for a weekday: the per-weekday schedule entry
// when one exists, otherwise the scalar fallback fields.
func (a Activity) ScheduleFor(wd time.Weekday) ScheduleEntry {
	if entry, ok := a.Schedule[wd]; ok && entry.Time != "" {
		return entry
	}
	return ScheduleEntry{
		Time:        a.Time,
		DurationMin: a.DurationMin,
		PreMin:      a.PreMin,
		RewardMin:   a.RewardMin,
	}
}
