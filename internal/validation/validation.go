package validation

import (
	"fmt"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/timeline"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateTitle     ConflictType = "duplicate_title"
	ConflictMissingID          ConflictType = "missing_id"
	ConflictUnparseableTime    ConflictType = "unparseable_time"
	ConflictNegativeDuration   ConflictType = "negative_duration"
	ConflictNoRepeatDays       ConflictType = "no_repeat_days"
	ConflictDanglingAdaptation ConflictType = "dangling_adaptation"
	ConflictMalformedDate      ConflictType = "malformed_date"
)

// Conflict represents a detected problem in the stored data
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Activity titles involved
	ActivityIDs []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No problems detected."
	}

	report := "Problems detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks activities and adaptations for data problems the layout
// engine would otherwise paper over silently.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateActivities checks the activity set for conflicts.
func (v *Validator) ValidateActivities(activities []models.Activity) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	titleCount := make(map[string][]string)
	for _, activity := range activities {
		if activity.DeletedAt != nil {
			continue
		}
		if activity.ID == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingID,
				Description: fmt.Sprintf("Activity %q has no id", activity.Title),
				Items:       []string{activity.Title},
			})
		}
		if activity.Title != "" {
			titleCount[activity.Title] = append(titleCount[activity.Title], activity.ID)
		}
	}

	for title, ids := range titleCount {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateTitle,
				Description: fmt.Sprintf("Duplicate activity title: %q (IDs: %v)", title, ids),
				Items:       []string{title},
				ActivityIDs: ids,
			})
		}
	}

	for _, activity := range activities {
		if activity.DeletedAt != nil {
			continue
		}
		v.checkActivity(activity, &result)
	}

	return result
}

func (v *Validator) checkActivity(activity models.Activity, result *ValidationResult) {
	// The layout engine falls back to midnight for unparseable times, which
	// is almost never what the user meant.
	if activity.Time != "" {
		if _, _, ok := timeline.ParseClock(activity.Time); !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnparseableTime,
				Description: fmt.Sprintf("Activity %q has unparseable time %q, it will render at midnight", activity.Title, activity.Time),
				Items:       []string{activity.Title},
				ActivityIDs: []string{activity.ID},
			})
		}
	}
	for wd, entry := range activity.Schedule {
		if entry.Time == "" {
			continue
		}
		if _, _, ok := timeline.ParseClock(entry.Time); !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnparseableTime,
				Description: fmt.Sprintf("Activity %q has unparseable %s time %q", activity.Title, wd, entry.Time),
				Items:       []string{activity.Title},
				ActivityIDs: []string{activity.ID},
			})
		}
	}

	for _, d := range []int{activity.DurationMin, activity.PreMin, activity.RewardMin, activity.TotalOverrideMin} {
		if d < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNegativeDuration,
				Description: fmt.Sprintf("Activity %q has a negative duration", activity.Title),
				Items:       []string{activity.Title},
				ActivityIDs: []string{activity.ID},
			})
			break
		}
	}

	if activity.Frequency == constants.FrequencySpecificDays &&
		len(activity.RepeatDays) == 0 && len(activity.Schedule) == 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictNoRepeatDays,
			Description: fmt.Sprintf("Activity %q repeats on specific days but names none, it will never be scheduled", activity.Title),
			Items:       []string{activity.Title},
			ActivityIDs: []string{activity.ID},
		})
	}

	for _, day := range append(append([]string{}, activity.CompletedDates...), activity.ExcludedDates...) {
		if !utils.ValidateDateFormat(day) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMalformedDate,
				Description: fmt.Sprintf("Activity %q has malformed date mark %q", activity.Title, day),
				Items:       []string{activity.Title},
				ActivityIDs: []string{activity.ID},
			})
		}
	}
}

// ValidateAdaptation checks a date's adaptation against the known activities.
func (v *Validator) ValidateAdaptation(adaptation *models.Adaptation, activities []models.Activity) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	if adaptation == nil {
		return result
	}

	known := make(map[string]bool, len(activities))
	for _, activity := range activities {
		known[activity.ID] = true
	}

	for id, entry := range adaptation.Entries {
		if !known[id] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDanglingAdaptation,
				Description: fmt.Sprintf("Adaptation for %s reschedules unknown activity %q", adaptation.Date, id),
				ActivityIDs: []string{id},
			})
		}
		if entry.Time != "" {
			if _, _, ok := timeline.ParseClock(entry.Time); !ok {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictUnparseableTime,
					Description: fmt.Sprintf("Adaptation for %s has unparseable time %q for %q", adaptation.Date, entry.Time, id),
					ActivityIDs: []string{id},
				})
			}
		}
	}

	if adaptation.EventTime != "" {
		if _, _, ok := timeline.ParseClock(adaptation.EventTime); !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnparseableTime,
				Description: fmt.Sprintf("Adaptation for %s has unparseable event time %q", adaptation.Date, adaptation.EventTime),
			})
		}
	}

	return result
}
