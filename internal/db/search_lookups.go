package db

import (
	"context"

	"travelrec/internal/models"
)

// IncrementSearchLookup upserts a search lookup count by outcome.
func (d *DB) IncrementSearchLookup(ctx context.Context, keyword, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO search_lookups (keyword, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (keyword, outcome) DO UPDATE
		SET count = search_lookups.count + 1, last_seen_at = NOW()
	`, keyword, outcome)
	return err
}

// GetAllSearchLookups returns all search lookup rows for metrics export.
func (d *DB) GetAllSearchLookups(ctx context.Context) ([]models.SearchLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT keyword, outcome, count, last_seen_at FROM search_lookups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.SearchLookup
	for rows.Next() {
		var l models.SearchLookup
		if err := rows.Scan(&l.Keyword, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
