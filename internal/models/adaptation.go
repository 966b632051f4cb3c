package models

import "time"

// AdaptedEntry reschedules a single activity for one date.
type AdaptedEntry struct {
	Time        string `json:"time,omitempty"`
	DurationMin int    `json:"duration_min,omitempty"`
	Rationale   string `json:"rationale,omitempty"`
}

// Adaptation is a per-date override document. It can reschedule specific
// activities and inject one synthetic "unexpected event" block for that date.
// At most one adaptation exists per calendar date.
type Adaptation struct {
	Date    string                  `json:"date"` // YYYY-MM-DD
	Entries map[string]AdaptedEntry `json:"entries,omitempty"` // keyed by activity id

	EventTitle       string `json:"event_title,omitempty"`
	EventTime        string `json:"event_time,omitempty"`
	EventDurationMin int    `json:"event_duration_min,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// EntryFor returns the adapted entry for an activity, if any.
func (ad *Adaptation) EntryFor(activityID string) (AdaptedEntry, bool) {
	if ad == nil {
		return AdaptedEntry{}, false
	}
	entry, ok := ad.Entries[activityID]
	return entry, ok
}

// HasEvent reports whether the adaptation carries a synthetic event block.
func (ad *Adaptation) HasEvent() bool {
	return ad != nil && ad.EventTitle != "" && ad.EventTime != ""
}
