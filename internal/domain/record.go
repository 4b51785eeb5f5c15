package domain

import "time"

// HistoryRecord is an immutable snapshot of a past generation.
type HistoryRecord struct {
	ID        string
	Config    Configuration
	Document  string
	CreatedAt time.Time
}

// Title returns the heading shown for the record in history listings.
func (r HistoryRecord) Title() string {
	return r.Config.Subject + " Assignment"
}
