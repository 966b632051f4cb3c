package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/acampos-dev/secondbrain/internal/backup"
	"github.com/acampos-dev/secondbrain/internal/logger"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/storage"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Today returns the current date string in the configured timezone.
func (c *Context) Today() string {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Now().Format("2006-01-02")
	}
	today, err := models.GetTodayFromSettings(settings)
	if err != nil {
		return time.Now().Format("2006-01-02")
	}
	return today
}

// ResolveActivity finds an activity by id, or by exact title when no id
// matches. Title matching is case-insensitive.
func (c *Context) ResolveActivity(ref string) (models.Activity, error) {
	if activity, err := c.Store.GetActivity(ref); err == nil {
		return activity, nil
	}

	activities, err := c.Store.GetAllActivities(true, false)
	if err != nil {
		return models.Activity{}, fmt.Errorf("failed to get activities: %w", err)
	}
	for _, activity := range activities {
		if strings.EqualFold(activity.Title, ref) {
			return activity, nil
		}
	}
	return models.Activity{}, fmt.Errorf("no activity matches %q", ref)
}

// FormatScheduleSummary renders an activity's recurrence for list output.
func FormatScheduleSummary(activity models.Activity) string {
	switch {
	case len(activity.Schedule) > 0:
		var days []time.Weekday
		for wd := range activity.Schedule {
			days = append(days, wd)
		}
		sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
		return fmt.Sprintf("per-day schedule (%s)", utils.FormatWeekdays(days))
	case len(activity.RepeatDays) > 0:
		return utils.FormatWeekdays(activity.RepeatDays)
	default:
		return "daily"
	}
}
