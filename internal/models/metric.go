package models

import "time"

// Metric is one logged health or finance data point.
type Metric struct {
	ID        string    `json:"id"`
	Day       string    `json:"day"`  // YYYY-MM-DD
	Kind      string    `json:"kind"` // e.g. "weight", "sleep", "expense", "income"
	Value     float64   `json:"value"`
	Unit      string    `json:"unit,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
