// Package dataset owns the in-memory recommendations dataset.
package dataset

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"travelrec/internal/metrics"
	"travelrec/internal/models"
)

// State is the lifecycle state of a Store.
type State int32

// Store lifecycle states
const (
	StateUninitialized State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

// Store holds the most recently loaded dataset, or none.
type Store struct {
	source  Source
	now     func() time.Time
	loadMu  sync.Mutex
	current atomic.Pointer[models.Dataset]
	state   atomic.Int32
}

// NewStore creates an empty store backed by the given source.
func NewStore(source Source) *Store {
	return &Store{source: source, now: time.Now}
}

// Load fetches and parses the dataset. On success the stored dataset is
// replaced wholesale; on failure it becomes absent, even if an earlier load
// succeeded, and the error is returned.
func (s *Store) Load(ctx context.Context) (*models.Dataset, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.state.Store(int32(StateLoading))

	categories, err := s.fetch(ctx)
	if err != nil {
		s.current.Store(nil)
		s.state.Store(int32(StateFailed))
		slog.Error("error fetching recommendations", "source", s.source.Location(), "error", err)
		metrics.RecordDatasetLoad(metrics.LoadFailed, 0)
		return nil, err
	}

	ds := &models.Dataset{
		Categories: categories,
		Source:     s.source.Location(),
		LoadedAt:   s.now(),
	}
	s.current.Store(ds)
	s.state.Store(int32(StateLoaded))
	slog.Info("recommendations data loaded", "source", ds.Source, "destinations", ds.Total())
	metrics.RecordDatasetLoad(metrics.LoadSucceeded, ds.Total())
	return ds, nil
}

func (s *Store) fetch(ctx context.Context) (map[models.Category][]models.Destination, error) {
	data, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Lookup returns the records for a category. An absent dataset or a
// missing category yields an empty sequence.
func (s *Store) Lookup(category models.Category) []models.Destination {
	list := s.current.Load().Destinations(category)
	if len(list) == 0 {
		return []models.Destination{}
	}
	return slices.Clone(list)
}

// Snapshot returns the current dataset, or nil if it is absent.
func (s *Store) Snapshot() *models.Dataset {
	return s.current.Load()
}

// State returns the lifecycle state.
func (s *Store) State() State {
	return State(s.state.Load())
}

// Location returns where the dataset is loaded from.
func (s *Store) Location() string {
	return s.source.Location()
}
