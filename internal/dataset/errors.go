package dataset

import "errors"

// Dataset load error sentinels.
var (
	ErrFetchFailed    = errors.New("failed to load recommendations")
	ErrInvalidDataset = errors.New("invalid recommendations document")
)
