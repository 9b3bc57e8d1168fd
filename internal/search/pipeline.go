// Package search resolves free-text queries into destination results.
package search

import (
	"travelrec/internal/metrics"
	"travelrec/internal/models"
)

// Lookuper returns the destinations for a category; absence degrades to empty.
type Lookuper interface {
	Lookup(category models.Category) []models.Destination
}

// Result is the outcome of resolving one query. When Matched is false the
// query named no category, which is distinct from a category with no records.
type Result struct {
	Query        string
	Keyword      string
	Category     models.Category
	Matched      bool
	Destinations []models.Destination
	// Representative is the first destination with a timezone, if any.
	Representative *models.Destination
}

// Outcome classifies the result for metrics and messaging.
func (r Result) Outcome() string {
	switch {
	case !r.Matched:
		return models.OutcomeNoCategory
	case len(r.Destinations) == 0:
		return models.OutcomeEmpty
	default:
		return models.OutcomeResults
	}
}

// Pipeline resolves queries against a dataset store.
type Pipeline struct {
	store Lookuper
}

// NewPipeline creates a pipeline reading from store.
func NewPipeline(store Lookuper) *Pipeline {
	return &Pipeline{store: store}
}

// Resolve normalizes raw, maps it to a category and fetches its destinations.
// Each call reads the current dataset snapshot; nothing is cached.
func (p *Pipeline) Resolve(raw string) Result {
	keyword := Normalize(raw)
	result := Result{Query: raw, Keyword: keyword}

	category, ok := CategoryFor(keyword)
	if !ok {
		metrics.RecordSearch(keyword, "", result.Outcome())
		return result
	}

	result.Category = category
	result.Matched = true
	result.Destinations = p.store.Lookup(category)
	result.Representative = Representative(result.Destinations)

	metrics.RecordSearch(keyword, string(category), result.Outcome())
	return result
}

// Representative returns the first destination, in order, that has a
// non-empty timezone. Later ones are ignored.
func Representative(destinations []models.Destination) *models.Destination {
	for i := range destinations {
		if destinations[i].HasTimezone() {
			d := destinations[i]
			return &d
		}
	}
	return nil
}
