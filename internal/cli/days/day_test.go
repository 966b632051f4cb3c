package days

import (
	"strings"
	"testing"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/timeline"
)

func TestRenderBlocksEmpty(t *testing.T) {
	if got := RenderBlocks(nil); !strings.Contains(got, "nothing scheduled") {
		t.Errorf("RenderBlocks(nil) = %q", got)
	}
}

func TestRenderBlocks(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	activities := []models.Activity{
		{
			ID: "run", Title: "Morning Run", Category: "health",
			Frequency: constants.FrequencyDaily, Time: "06:30", DurationMin: 30,
			CompletedDates: []string{"2025-03-12"},
		},
		{
			ID: "standup", Title: "Standup",
			Frequency: constants.FrequencyDaily, Time: "07:00", DurationMin: 15,
		},
	}

	out := RenderBlocks(timeline.Layout(activities, nil, date, ""))

	if !strings.Contains(out, "[x] 6:30 AM") {
		t.Errorf("completed block missing its mark:\n%s", out)
	}
	if !strings.Contains(out, "Morning Run (30m) [health]") {
		t.Errorf("category tag missing:\n%s", out)
	}
	// Run ends at 7:00; standup starts at 7:00, within the connector gap.
	if !strings.Contains(out, "|") {
		t.Errorf("adjacency connector missing:\n%s", out)
	}
}

func TestRenderBlocksAdaptedAndEvent(t *testing.T) {
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	activities := []models.Activity{
		{ID: "run", Title: "Morning Run", Frequency: constants.FrequencyDaily, Time: "06:30"},
	}
	adaptation := &models.Adaptation{
		Date: "2025-03-12",
		Entries: map[string]models.AdaptedEntry{
			"run": {Time: "18:00", Rationale: "flight in the morning"},
		},
		EventTitle:       "Flight home",
		EventTime:        "08:00",
		EventDurationMin: 180,
	}

	out := RenderBlocks(timeline.Layout(activities, adaptation, date, ""))
	if !strings.Contains(out, "flight in the morning") {
		t.Errorf("adaptation rationale missing:\n%s", out)
	}
	if !strings.Contains(out, "Flight home (180m) [event]") {
		t.Errorf("event block missing:\n%s", out)
	}
}

func TestRenderBlocksSpilloverHasNoTitleOrMark(t *testing.T) {
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	activities := []models.Activity{
		{ID: "shift", Title: "Night Shift", Frequency: constants.FrequencyDaily,
			Time: "23:30", DurationMin: 60},
	}

	out := RenderBlocks(timeline.Layout(activities, nil, date, ""))

	var continuation string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "from yesterday") {
			continuation = line
		}
	}
	if continuation == "" {
		t.Fatalf("continuation strip missing:\n%s", out)
	}
	if strings.Contains(continuation, "Night Shift") {
		t.Errorf("continuation strip should not carry the title: %q", continuation)
	}
	if strings.Contains(continuation, "[ ]") || strings.Contains(continuation, "[x]") {
		t.Errorf("continuation strip should not carry a completion mark: %q", continuation)
	}
	if !strings.Contains(continuation, "12:00 AM") || !strings.Contains(continuation, "(30m)") {
		t.Errorf("continuation strip = %q, want midnight start and 30m", continuation)
	}
}

func TestRenderWeekShape(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	activity := models.Activity{
		ID: "yoga", Title: "Yoga", Frequency: constants.FrequencySpecificDays,
		RepeatDays:     []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		CompletedDates: []string{"2025-03-10"},
	}

	// Today is Wednesday the 12th and it was not completed.
	summary := timeline.WeekShape(activity, monday, "2025-03-12")
	strip := RenderWeekShape(summary, monday)

	if strip != "●·○·-··" {
		t.Errorf("strip = %q, want ●·○·-··", strip)
	}
	if badge := weekBadge(summary); badge != "1/3" {
		t.Errorf("badge = %q, want 1/3", badge)
	}
}

func TestWeekBadgeUnscheduled(t *testing.T) {
	if badge := weekBadge(timeline.WeekSummary{}); badge != "(unscheduled this week)" {
		t.Errorf("badge = %q", badge)
	}
}
