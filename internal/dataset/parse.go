package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"travelrec/internal/models"
)

// Parse decodes a recommendations document. Missing categories and
// categories that are not arrays resolve to empty sequences. Records are
// decoded one at a time so a malformed record never drops its neighbours.
func Parse(data []byte) (map[models.Category][]models.Destination, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	categories := make(map[models.Category][]models.Destination, len(models.Categories))
	for _, category := range models.Categories {
		msg, ok := raw[string(category)]
		if !ok {
			continue
		}

		var records []json.RawMessage
		if err := json.Unmarshal(msg, &records); err != nil {
			slog.Warn("ignoring dataset category that is not an array", "category", category, "error", err)
			continue
		}

		list := make([]models.Destination, 0, len(records))
		for i, record := range records {
			d, err := parseDestination(record)
			if err != nil {
				slog.Warn("skipping malformed dataset record", "category", category, "index", i, "error", err)
				continue
			}
			list = append(list, d)
		}
		categories[category] = list
	}

	return categories, nil
}

// parseDestination decodes one record. Fields of the wrong type are treated
// as absent, except a non-string timezone, which is kept as its raw JSON
// text: it still marks the record as carrying a timezone, and the local
// time line is then omitted because the zone cannot be loaded.
func parseDestination(record json.RawMessage) (models.Destination, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(record, &fields); err != nil {
		return models.Destination{}, err
	}
	if fields == nil {
		return models.Destination{}, errors.New("record is null")
	}

	d := models.Destination{
		Name:        stringField(fields["name"]),
		Description: stringField(fields["description"]),
		ImageURL:    stringField(fields["imageUrl"]),
		Timezone:    stringField(fields["timezone"]),
	}
	if tz := fields["timezone"]; d.Timezone == "" && isTruthy(tz) {
		d.Timezone = string(bytes.TrimSpace(tz))
	}
	return d, nil
}

func stringField(msg json.RawMessage) string {
	var s string
	if len(msg) == 0 || json.Unmarshal(msg, &s) != nil {
		return ""
	}
	return s
}

// isTruthy reports whether a non-string JSON value would count as set.
func isTruthy(msg json.RawMessage) bool {
	switch string(bytes.TrimSpace(msg)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}
