package insights

import (
	"testing"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
)

// 2025-03-12 is a Wednesday.
var today = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

func daysBack(n int) []string {
	var days []string
	for i := 0; i < n; i++ {
		days = append(days, today.AddDate(0, 0, -i).Format(constants.DateFormat))
	}
	return days
}

func TestStatsForActivityDaily(t *testing.T) {
	activity := models.Activity{
		ID: "run", Title: "Run", Frequency: constants.FrequencyDaily,
		// Completed today and yesterday, missed the day before, completed the
		// three days before that.
		CompletedDates: []string{
			"2025-03-12", "2025-03-11",
			"2025-03-09", "2025-03-08", "2025-03-07",
		},
	}

	stats := StatsForActivity(activity, today, 7)
	if stats.ScheduledDays != 7 {
		t.Errorf("ScheduledDays = %d, want 7", stats.ScheduledDays)
	}
	if stats.CompletedDays != 5 {
		t.Errorf("CompletedDays = %d, want 5", stats.CompletedDays)
	}
	if stats.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", stats.CurrentStreak)
	}
	if stats.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3", stats.BestStreak)
	}
}

func TestStatsForActivitySpecificDays(t *testing.T) {
	activity := models.Activity{
		ID: "yoga", Title: "Yoga", Frequency: constants.FrequencySpecificDays,
		RepeatDays:     []time.Weekday{time.Monday, time.Wednesday},
		CompletedDates: []string{"2025-03-10", "2025-03-12"},
	}

	// Window covers Thu 2025-03-06 through Wed 2025-03-12: one Monday and
	// one Wednesday.
	stats := StatsForActivity(activity, today, 7)
	if stats.ScheduledDays != 2 || stats.CompletedDays != 2 {
		t.Errorf("stats = %+v, want 2/2", stats)
	}
	if stats.CompletionRate != 1.0 {
		t.Errorf("CompletionRate = %v, want 1.0", stats.CompletionRate)
	}
	if stats.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", stats.CurrentStreak)
	}
}

func TestStatsExcludedDaysNotScheduled(t *testing.T) {
	activity := models.Activity{
		ID: "read", Title: "Read", Frequency: constants.FrequencyDaily,
		ExcludedDates:  []string{"2025-03-11"},
		CompletedDates: []string{"2025-03-10", "2025-03-12"},
	}

	stats := StatsForActivity(activity, today, 3)
	if stats.ScheduledDays != 2 || stats.CompletedDays != 2 {
		t.Errorf("stats = %+v, want 2 scheduled, 2 completed", stats)
	}
	// The excluded middle day must not break the streak.
	if stats.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", stats.CurrentStreak)
	}
}

func TestAnalyzeActivityThresholds(t *testing.T) {
	daily := models.Activity{ID: "a", Title: "A", Frequency: constants.FrequencyDaily}
	specific := models.Activity{ID: "b", Title: "B", Frequency: constants.FrequencySpecificDays}

	tests := []struct {
		name     string
		activity models.Activity
		stats    ActivityStats
		want     SuggestionType
		wantNone bool
	}{
		{
			name:     "too little history",
			activity: daily,
			stats:    ActivityStats{ScheduledDays: 3, CompletedDays: 0},
			wantNone: true,
		},
		{
			name:     "nearly abandoned",
			activity: daily,
			stats:    ActivityStats{ScheduledDays: 14, CompletedDays: 1, CompletionRate: 1.0 / 14},
			want:     SuggestionArchive,
		},
		{
			name:     "struggling daily",
			activity: daily,
			stats:    ActivityStats{ScheduledDays: 14, CompletedDays: 5, CompletionRate: 5.0 / 14},
			want:     SuggestionReduceFrequency,
		},
		{
			name:     "struggling specific days",
			activity: specific,
			stats:    ActivityStats{ScheduledDays: 8, CompletedDays: 3, CompletionRate: 3.0 / 8},
			want:     SuggestionReschedule,
		},
		{
			name:     "healthy",
			activity: daily,
			stats:    ActivityStats{ScheduledDays: 14, CompletedDays: 12, CompletionRate: 12.0 / 14},
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := AnalyzeActivity(tt.activity, tt.stats)
			if tt.wantNone {
				if len(suggestions) != 0 {
					t.Errorf("suggestions = %+v, want none", suggestions)
				}
				return
			}
			if len(suggestions) != 1 || suggestions[0].Type != tt.want {
				t.Errorf("suggestions = %+v, want one %s", suggestions, tt.want)
			}
		})
	}
}
