package models

import "time"

// Category partitions the dataset.
type Category string

// Dataset category constants
const (
	CategoryBeaches   Category = "beaches"
	CategoryTemples   Category = "temples"
	CategoryCountries Category = "countries"
)

// Categories lists every known category in display order.
var Categories = []Category{CategoryBeaches, CategoryTemples, CategoryCountries}

// Destination is a single recommendation record.
type Destination struct {
	Name        string `json:"name,omitempty" jsonschema:"description=Display name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty" jsonschema:"description=Image URL or path"`
	Timezone    string `json:"timezone,omitempty" jsonschema:"description=IANA timezone identifier"`
}

// HasTimezone reports whether the record carries a timezone.
func (d Destination) HasTimezone() bool {
	return d.Timezone != ""
}

// Dataset is a loaded, read-only recommendations snapshot.
type Dataset struct {
	Categories map[Category][]Destination
	Source     string
	LoadedAt   time.Time
}

// Destinations returns the records for a category, or nil if there are none.
func (d *Dataset) Destinations(category Category) []Destination {
	if d == nil {
		return nil
	}
	return d.Categories[category]
}

// Counts returns the number of records per known category.
func (d *Dataset) Counts() map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		counts[c] = len(d.Destinations(c))
	}
	return counts
}

// Total returns the number of records across all categories.
func (d *Dataset) Total() int {
	total := 0
	for _, n := range d.Counts() {
		total += n
	}
	return total
}

// DatasetDocument is the JSON shape of the static recommendations resource.
type DatasetDocument struct {
	Beaches   []Destination `json:"beaches,omitempty"`
	Temples   []Destination `json:"temples,omitempty"`
	Countries []Destination `json:"countries,omitempty"`
}
