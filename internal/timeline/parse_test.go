package timeline

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantHour   int
		wantMinute int
		wantOK     bool
	}{
		{
			name:       "24h time",
			raw:        "14:30",
			wantHour:   14,
			wantMinute: 30,
			wantOK:     true,
		},
		{
			name:       "12h time with pm suffix",
			raw:        "2:30pm",
			wantHour:   14,
			wantMinute: 30,
			wantOK:     true,
		},
		{
			name:       "12h time with spaced uppercase suffix",
			raw:        "7 PM",
			wantHour:   19,
			wantMinute: 0,
			wantOK:     true,
		},
		{
			name:       "noon stays twelve",
			raw:        "12pm",
			wantHour:   12,
			wantMinute: 0,
			wantOK:     true,
		},
		{
			name:       "midnight wraps to zero",
			raw:        "12am",
			wantHour:   0,
			wantMinute: 0,
			wantOK:     true,
		},
		{
			name:       "midnight with minutes",
			raw:        "12:15 AM",
			wantHour:   0,
			wantMinute: 15,
			wantOK:     true,
		},
		{
			name:     "hour only",
			raw:      "9",
			wantHour: 9,
			wantOK:   true,
		},
		{
			name:       "noise around digits",
			raw:        "at 8:05 in the morning am",
			wantHour:   8,
			wantMinute: 5,
			wantOK:     true,
		},
		{
			name:   "no digits at all",
			raw:    "banana",
			wantOK: false,
		},
		{
			name:   "empty string",
			raw:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, ok := ParseClock(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseClock(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if hour != tt.wantHour || minute != tt.wantMinute {
				t.Errorf("ParseClock(%q) = %d:%02d, want %d:%02d", tt.raw, hour, minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
		want   string
	}{
		{name: "afternoon", hour: 14, minute: 30, want: "2:30 PM"},
		{name: "midnight", hour: 0, minute: 0, want: "12:00 AM"},
		{name: "noon", hour: 12, minute: 0, want: "12:00 PM"},
		{name: "morning single digit", hour: 9, minute: 5, want: "9:05 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatClock(tt.hour, tt.minute); got != tt.want {
				t.Errorf("FormatClock(%d, %d) = %q, want %q", tt.hour, tt.minute, got, tt.want)
			}
		})
	}
}
