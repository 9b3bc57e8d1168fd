package models

import "time"

// Search lookup outcome constants
const (
	OutcomeResults    = "results"
	OutcomeEmpty      = "empty"
	OutcomeNoCategory = "no_category"
)

// SearchLookup represents a per-keyword hit count by outcome.
type SearchLookup struct {
	Keyword    string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
