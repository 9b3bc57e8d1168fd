package models

import "time"

// SearchResponse is the JSON API representation of a search.
type SearchResponse struct {
	Query        string        `json:"query"`
	Keyword      string        `json:"keyword"`
	Category     Category      `json:"category,omitempty"`
	Matched      bool          `json:"matched"`
	Destinations []Destination `json:"destinations"`
	LocalTime    string        `json:"local_time,omitempty"`
	Message      string        `json:"message,omitempty"`
}

// DatasetStatusResponse is the JSON API representation of the dataset state.
type DatasetStatusResponse struct {
	State    string           `json:"state"`
	Source   string           `json:"source,omitempty"`
	LoadedAt *time.Time       `json:"loaded_at,omitempty"`
	Counts   map[Category]int `json:"counts"`
}
