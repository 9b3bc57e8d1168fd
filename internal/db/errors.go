package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrContactMessageNotFound = errors.New("contact message not found")
)
