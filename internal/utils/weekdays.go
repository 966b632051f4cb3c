package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dayMap = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses a single weekday name or number (0=Sunday, 6=Saturday).
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if wd, ok := dayMap[s]; ok {
		return wd, true
	}
	num, err := strconv.Atoi(s)
	if err == nil && num >= 0 && num <= 6 {
		return time.Weekday(num), true
	}
	return time.Sunday, false
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	for _, part := range parts {
		wd, ok := ParseWeekday(part)
		if !ok {
			return nil, fmt.Errorf("invalid weekday: %s", strings.TrimSpace(part))
		}
		weekdays = append(weekdays, wd)
	}

	return weekdays, nil
}

// FormatWeekdays renders a weekday list as short comma-separated names ("Mon,Wed").
func FormatWeekdays(weekdays []time.Weekday) string {
	var days []string
	for _, wd := range weekdays {
		days = append(days, wd.String()[:3])
	}
	return strings.Join(days, ",")
}
