package models

import "testing"

func TestDataset_NilIsAbsent(t *testing.T) {
	var d *Dataset

	if got := d.Destinations(CategoryBeaches); got != nil {
		t.Errorf("Destinations() on nil dataset = %v, want nil", got)
	}
	if got := d.Total(); got != 0 {
		t.Errorf("Total() on nil dataset = %d, want 0", got)
	}
}

func TestDataset_Counts(t *testing.T) {
	d := &Dataset{Categories: map[Category][]Destination{
		CategoryBeaches: {{Name: "Bora Bora"}, {Name: "Copacabana"}},
		CategoryTemples: {{Name: "Angkor Wat"}},
	}}

	counts := d.Counts()
	tests := []struct {
		category Category
		expected int
	}{
		{CategoryBeaches, 2},
		{CategoryTemples, 1},
		{CategoryCountries, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if counts[tt.category] != tt.expected {
				t.Errorf("Counts()[%s] = %d, want %d", tt.category, counts[tt.category], tt.expected)
			}
		})
	}
	if d.Total() != 3 {
		t.Errorf("Total() = %d, want 3", d.Total())
	}
}

func TestDestination_HasTimezone(t *testing.T) {
	if (Destination{}).HasTimezone() {
		t.Error("empty destination should not have a timezone")
	}
	if !(Destination{Timezone: "Asia/Tokyo"}).HasTimezone() {
		t.Error("destination with timezone should report it")
	}
}
