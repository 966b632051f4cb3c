package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultDayStart is the default start-of-day boundary
	DefaultDayStart = "06:00"

	// DefaultDayEnd is the default end-of-day boundary
	DefaultDayEnd = "22:00"
)
