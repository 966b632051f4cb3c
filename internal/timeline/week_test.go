package timeline

import (
	"testing"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
)

func TestWeekShape(t *testing.T) {
	// Reference week: Monday 2025-03-10 through Sunday 2025-03-16.
	ref := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		activity      models.Activity
		today         string
		wantDays      int
		wantCompleted int
		wantStatuses  map[string]DayStatus
	}{
		{
			name: "daily activity yields all seven days",
			activity: models.Activity{
				Frequency:      constants.FrequencyDaily,
				CompletedDates: []string{"2025-03-10", "2025-03-11"},
			},
			today:         "2025-03-12",
			wantDays:      7,
			wantCompleted: 2,
			wantStatuses: map[string]DayStatus{
				"2025-03-10": StatusCompleted,
				"2025-03-11": StatusCompleted,
				"2025-03-12": StatusMissed,
				"2025-03-13": StatusFuture,
			},
		},
		{
			name: "specific days filters to scheduled weekdays",
			activity: models.Activity{
				Frequency:      constants.FrequencySpecificDays,
				RepeatDays:     []time.Weekday{time.Monday, time.Wednesday},
				CompletedDates: []string{"2025-03-10"},
			},
			today:         "2025-03-11",
			wantDays:      2,
			wantCompleted: 1,
			wantStatuses: map[string]DayStatus{
				"2025-03-10": StatusCompleted,
				"2025-03-12": StatusFuture,
			},
		},
		{
			name: "pre-logged completion beats future",
			activity: models.Activity{
				Frequency:      constants.FrequencySpecificDays,
				RepeatDays:     []time.Weekday{time.Monday, time.Friday},
				CompletedDates: []string{"2025-03-14"},
			},
			today:         "2025-03-11",
			wantDays:      2,
			wantCompleted: 1,
			wantStatuses: map[string]DayStatus{
				"2025-03-10": StatusMissed,
				"2025-03-14": StatusCompleted,
			},
		},
		{
			name: "zero scheduled occurrences",
			activity: models.Activity{
				Frequency:      constants.FrequencySpecificDays,
				RepeatDays:     nil,
				CompletedDates: []string{"2025-03-10", "2025-03-11", "2025-03-12"},
			},
			today:         "2025-03-12",
			wantDays:      0,
			wantCompleted: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := WeekShape(tt.activity, ref, tt.today)
			if len(summary.Days) != tt.wantDays {
				t.Fatalf("got %d scheduled days, want %d", len(summary.Days), tt.wantDays)
			}
			if summary.CompletedCount != tt.wantCompleted {
				t.Errorf("CompletedCount = %d, want %d", summary.CompletedCount, tt.wantCompleted)
			}
			for _, d := range summary.Days {
				want, ok := tt.wantStatuses[d.Date]
				if !ok {
					continue
				}
				if d.Status != want {
					t.Errorf("status for %s = %q, want %q", d.Date, d.Status, want)
				}
			}
		})
	}
}

func TestWeekShapeMondayStart(t *testing.T) {
	a := models.Activity{Frequency: constants.FrequencyDaily}

	// Any reference day within the same week yields the same window.
	for i := 0; i < 7; i++ {
		ref := time.Date(2025, 3, 10+i, 0, 0, 0, 0, time.UTC)
		summary := WeekShape(a, ref, "2025-03-12")
		if summary.Days[0].Date != "2025-03-10" {
			t.Errorf("ref %s: week starts %s, want 2025-03-10", ref.Format("2006-01-02"), summary.Days[0].Date)
		}
		if summary.Days[0].Weekday != time.Monday {
			t.Errorf("ref %s: first day is %s, want Monday", ref.Format("2006-01-02"), summary.Days[0].Weekday)
		}
	}
}
