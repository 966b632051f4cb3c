package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

// ActivityFromRecord builds a typed Activity from a legacy string-keyed record.
// Historical exports stored activity attributes in an untyped data bag with
// inconsistent key names; this adapter resolves the aliases once, at the import
// boundary, so nothing downstream has to know about them.
func ActivityFromRecord(record map[string]any) Activity {
	a := Activity{
		ID:        stringField(record, "id", "Id", "ID"),
		Title:     stringField(record, "title", "Title", "name", "Name", "Habit", "habit"),
		Category:  stringField(record, "category", "Category", "System"),
		Time:      stringField(record, "time", "Time", "Start Time", "start_time"),
		Frequency: constants.Frequency(strings.ToLower(stringField(record, "frequency", "Frequency"))),
		CreatedAt: time.Now(),
	}

	if a.Frequency != constants.FrequencyDaily && a.Frequency != constants.FrequencySpecificDays {
		a.Frequency = constants.FrequencyDaily
	}

	a.DurationMin = intField(record, "duration", "Duration", "duration_min")
	a.PreMin = intField(record, "preHabitDuration", "Pre-Habit Duration", "pre_min")
	a.RewardMin = intField(record, "rewardDuration", "Reward Duration", "reward_min")
	// The legacy "Duration (minutes)" key was an explicit total that won over the
	// segment sum, so it maps to the override rather than the core duration.
	a.TotalOverrideMin = intField(record, "Duration (minutes)", "total_duration", "total_override_min")

	for _, raw := range stringListField(record, "repeatDays", "Repeat Days", "repeat_days") {
		if wd, ok := utils.ParseWeekday(raw); ok {
			a.RepeatDays = append(a.RepeatDays, wd)
		}
	}

	if sched, ok := record["schedule"].(map[string]any); ok {
		a.Schedule = make(map[time.Weekday]ScheduleEntry)
		for key, val := range sched {
			wd, ok := utils.ParseWeekday(key)
			if !ok {
				continue
			}
			entry, ok := val.(map[string]any)
			if !ok {
				continue
			}
			a.Schedule[wd] = ScheduleEntry{
				Time:        stringField(entry, "time", "Time"),
				DurationMin: intField(entry, "duration", "Duration", "duration_min"),
				PreMin:      intField(entry, "preHabitDuration", "pre_min"),
				RewardMin:   intField(entry, "rewardDuration", "reward_min"),
			}
		}
	}

	a.CompletedDates = stringListField(record, "completedDates", "Completed Dates", "completed_dates")
	a.ExcludedDates = stringListField(record, "excludedDates", "Excluded Dates", "excluded_dates")
	a.Archived = boolField(record, "archived", "Archived")

	return a
}

func stringField(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := record[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func intField(record map[string]any, keys ...string) int {
	for _, key := range keys {
		v, ok := record[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case string:
			if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				return parsed
			}
		}
	}
	return 0
}

func boolField(record map[string]any, keys ...string) bool {
	for _, key := range keys {
		v, ok := record[key]
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case string:
			return strings.EqualFold(b, "true") || b == "1"
		}
	}
	return false
}

func stringListField(record map[string]any, keys ...string) []string {
	for _, key := range keys {
		v, ok := record[key]
		if !ok {
			continue
		}
		switch list := v.(type) {
		case []string:
			return list
		case []any:
			var out []string
			for _, item := range list {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return nil
}
