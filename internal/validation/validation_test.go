package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
)

func conflictTypes(result ValidationResult) map[ConflictType]int {
	types := make(map[ConflictType]int)
	for _, c := range result.Conflicts {
		types[c.Type]++
	}
	return types
}

func TestValidateActivitiesClean(t *testing.T) {
	v := New()
	result := v.ValidateActivities([]models.Activity{
		{ID: "a", Title: "Run", Frequency: constants.FrequencyDaily, Time: "06:30", DurationMin: 30},
		{ID: "b", Title: "Read", Frequency: constants.FrequencySpecificDays,
			RepeatDays: []time.Weekday{time.Sunday}, Time: "8 pm"},
	})
	if result.HasConflicts() {
		t.Errorf("unexpected conflicts: %s", result.FormatReport())
	}
	if got := result.FormatReport(); got != "No problems detected." {
		t.Errorf("FormatReport() = %q", got)
	}
}

func TestValidateActivitiesDuplicateTitles(t *testing.T) {
	v := New()
	result := v.ValidateActivities([]models.Activity{
		{ID: "a", Title: "Run", Frequency: constants.FrequencyDaily},
		{ID: "b", Title: "Run", Frequency: constants.FrequencyDaily},
	})
	types := conflictTypes(result)
	if types[ConflictDuplicateTitle] != 1 {
		t.Errorf("conflicts = %v, want one duplicate_title", types)
	}
}

func TestValidateActivitiesDeletedIgnored(t *testing.T) {
	now := time.Now()
	v := New()
	result := v.ValidateActivities([]models.Activity{
		{ID: "a", Title: "Run", Frequency: constants.FrequencyDaily},
		{ID: "b", Title: "Run", Frequency: constants.FrequencyDaily, DeletedAt: &now},
	})
	if result.HasConflicts() {
		t.Errorf("deleted activities should not count: %s", result.FormatReport())
	}
}

func TestValidateActivitiesBadData(t *testing.T) {
	v := New()
	result := v.ValidateActivities([]models.Activity{
		{ID: "a", Title: "Stretch", Frequency: constants.FrequencyDaily, Time: "banana"},
		{ID: "b", Title: "Lift", Frequency: constants.FrequencyDaily, DurationMin: -10},
		{ID: "c", Title: "Swim", Frequency: constants.FrequencySpecificDays},
		{ID: "d", Title: "Walk", Frequency: constants.FrequencyDaily,
			CompletedDates: []string{"03/12/2025"}},
		{Title: "Ghost", Frequency: constants.FrequencyDaily},
	})

	types := conflictTypes(result)
	for _, want := range []ConflictType{
		ConflictUnparseableTime, ConflictNegativeDuration,
		ConflictNoRepeatDays, ConflictMalformedDate, ConflictMissingID,
	} {
		if types[want] == 0 {
			t.Errorf("missing conflict %s in %v", want, types)
		}
	}
	if !strings.Contains(result.FormatReport(), "midnight") {
		t.Errorf("unparseable time report should mention the midnight fallback:\n%s", result.FormatReport())
	}
}

func TestValidateActivitiesScheduleEntryTime(t *testing.T) {
	v := New()
	result := v.ValidateActivities([]models.Activity{
		{ID: "a", Title: "Yoga", Frequency: constants.FrequencySpecificDays,
			Schedule: map[time.Weekday]models.ScheduleEntry{
				time.Tuesday: {Time: "not a time"},
			}},
	})
	if conflictTypes(result)[ConflictUnparseableTime] != 1 {
		t.Errorf("conflicts = %s", result.FormatReport())
	}
}

func TestValidateAdaptation(t *testing.T) {
	v := New()
	activities := []models.Activity{{ID: "run", Title: "Run"}}

	result := v.ValidateAdaptation(nil, activities)
	if result.HasConflicts() {
		t.Errorf("nil adaptation should be clean")
	}

	result = v.ValidateAdaptation(&models.Adaptation{
		Date: "2025-03-12",
		Entries: map[string]models.AdaptedEntry{
			"run":   {Time: "oops"},
			"ghost": {Time: "10:00"},
		},
		EventTitle: "Dentist",
		EventTime:  "garbage",
	}, activities)

	types := conflictTypes(result)
	if types[ConflictDanglingAdaptation] != 1 {
		t.Errorf("want one dangling_adaptation, got %v", types)
	}
	if types[ConflictUnparseableTime] != 2 {
		t.Errorf("want two unparseable_time, got %v", types)
	}
}
