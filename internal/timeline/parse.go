package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock leniently parses a free-form time-of-day string ("14:30",
// "2:30pm", "7 PM"). All characters other than digits and colons are stripped
// before splitting into hour and minute; an am/pm suffix is detected
// case-insensitively from the original string. Malformed parts default to
// zero. ok is false only when the string contains no digits at all, so the
// caller can substitute its own default hour.
func ParseClock(raw string) (hour, minute int, ok bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ':' {
			return r
		}
		return -1
	}, raw)

	if !strings.ContainsAny(cleaned, "0123456789") {
		return 0, 0, false
	}

	parts := strings.Split(cleaned, ":")
	hour, _ = strconv.Atoi(parts[0])
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(parts[1])
	}

	lower := strings.ToLower(raw)
	if strings.Contains(lower, "pm") && hour < 12 {
		hour += 12
	} else if strings.Contains(lower, "am") && hour == 12 {
		hour = 0
	}

	return hour, minute, true
}

// FormatClock renders an hour/minute pair as a 12-hour label ("2:30 PM").
func FormatClock(hour, minute int) string {
	h := hour % 24
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minute, suffix)
}
