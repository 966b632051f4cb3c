package insights

import (
	"fmt"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/storage"
)

// SuggestionType represents the type of adjustment suggested
type SuggestionType string

const (
	SuggestionReduceFrequency SuggestionType = "reduce_frequency"
	SuggestionReschedule      SuggestionType = "reschedule"
	SuggestionArchive         SuggestionType = "archive"
)

// ActivityStats summarizes one activity's completion history over a window.
type ActivityStats struct {
	ActivityID     string  `json:"activity_id"`
	Title          string  `json:"title"`
	ScheduledDays  int     `json:"scheduled_days"`
	CompletedDays  int     `json:"completed_days"`
	CompletionRate float64 `json:"completion_rate"` // 0..1, zero when never scheduled
	CurrentStreak  int     `json:"current_streak"`  // consecutive scheduled days completed, ending today
	BestStreak     int     `json:"best_streak"`
}

// Suggestion is a proposed adjustment to a struggling or thriving activity.
type Suggestion struct {
	ActivityID string         `json:"activity_id"`
	Title      string         `json:"title"`
	Type       SuggestionType `json:"type"`
	Reason     string         `json:"reason"`
}

// Analyzer computes completion statistics and suggests schedule adjustments
type Analyzer struct {
	store storage.Provider
}

// NewAnalyzer creates a new Analyzer
func NewAnalyzer(store storage.Provider) *Analyzer {
	return &Analyzer{store: store}
}

// StatsForActivity computes completion stats for the windowDays days ending
// at today inclusive. Excluded days do not count as scheduled.
func StatsForActivity(activity models.Activity, today time.Time, windowDays int) ActivityStats {
	stats := ActivityStats{
		ActivityID: activity.ID,
		Title:      activity.Title,
	}

	streak := 0
	for i := windowDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		day := date.Format(constants.DateFormat)
		if !activity.ActiveOn(date) || activity.ExcludedOn(day) {
			continue
		}
		stats.ScheduledDays++
		if activity.CompletedOn(day) {
			stats.CompletedDays++
			streak++
			if streak > stats.BestStreak {
				stats.BestStreak = streak
			}
		} else {
			streak = 0
		}
	}
	stats.CurrentStreak = streak

	if stats.ScheduledDays > 0 {
		stats.CompletionRate = float64(stats.CompletedDays) / float64(stats.ScheduledDays)
	}
	return stats
}

// AnalyzeActivity returns suggestions for one activity based on its stats.
func AnalyzeActivity(activity models.Activity, stats ActivityStats) []Suggestion {
	// Too little history to say anything useful.
	if stats.ScheduledDays < 7 {
		return nil
	}

	var suggestions []Suggestion

	if stats.CompletionRate < 0.2 {
		suggestions = append(suggestions, Suggestion{
			ActivityID: activity.ID,
			Title:      activity.Title,
			Type:       SuggestionArchive,
			Reason: fmt.Sprintf("completed %d of %d scheduled days (%.0f%%), consider archiving",
				stats.CompletedDays, stats.ScheduledDays, stats.CompletionRate*100),
		})
		return suggestions
	}

	if stats.CompletionRate < 0.5 {
		if activity.Frequency == constants.FrequencyDaily {
			suggestions = append(suggestions, Suggestion{
				ActivityID: activity.ID,
				Title:      activity.Title,
				Type:       SuggestionReduceFrequency,
				Reason: fmt.Sprintf("completed %.0f%% of scheduled days, a few specific days may stick better than daily",
					stats.CompletionRate*100),
			})
		} else {
			suggestions = append(suggestions, Suggestion{
				ActivityID: activity.ID,
				Title:      activity.Title,
				Type:       SuggestionReschedule,
				Reason: fmt.Sprintf("completed %.0f%% of scheduled days, the current time slot may not fit",
					stats.CompletionRate*100),
			})
		}
	}

	return suggestions
}

// AnalyzeAll computes stats and suggestions for every active activity.
func (a *Analyzer) AnalyzeAll(today time.Time, windowDays int) ([]ActivityStats, []Suggestion, error) {
	activities, err := a.store.GetAllActivities(false, false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get activities: %w", err)
	}

	var allStats []ActivityStats
	var allSuggestions []Suggestion
	for _, activity := range activities {
		stats := StatsForActivity(activity, today, windowDays)
		allStats = append(allStats, stats)
		allSuggestions = append(allSuggestions, AnalyzeActivity(activity, stats)...)
	}
	return allStats, allSuggestions, nil
}
