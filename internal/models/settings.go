package models

import "github.com/acampos-dev/secondbrain/internal/utils"

// GetTodayFromSettings returns today's date string (YYYY-MM-DD) using the timezone from settings.
func GetTodayFromSettings(settings Settings) (string, error) {
	return utils.GetTodayInTimezone(settings.Timezone)
}

// Settings represents application-wide settings
type Settings struct {
	DayStart             string `json:"day_start"`             // the time the day starts, e.g. "06:00"
	DayEnd               string `json:"day_end"`               // the time the day ends, e.g. "22:00"
	Timezone             string `json:"timezone"`              // IANA timezone name, or "Local" for system timezone
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether scheduled-time notifications are enabled
	FocusMin             int    `json:"focus_min"`             // pomodoro focus interval in minutes
	ShortBreakMin        int    `json:"short_break_min"`       // short break interval in minutes
	LongBreakMin         int    `json:"long_break_min"`        // long break interval in minutes
}
