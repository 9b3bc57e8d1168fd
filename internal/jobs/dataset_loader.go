package jobs

import (
	"context"
	"log"
	"time"

	"travelrec/internal/models"
)

// Loader loads the recommendations dataset.
type Loader interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

// DatasetLoader performs the single startup load in the background so the
// server can answer requests while the fetch is pending.
type DatasetLoader struct {
	loader Loader
	done   chan struct{}
}

// NewDatasetLoader creates a new startup loader.
func NewDatasetLoader(loader Loader) *DatasetLoader {
	return &DatasetLoader{loader: loader, done: make(chan struct{})}
}

// Start launches the load. It does not retry on failure.
func (d *DatasetLoader) Start(ctx context.Context) {
	go func() {
		defer close(d.done)

		start := time.Now()
		ds, err := d.loader.Load(ctx)
		if err != nil {
			log.Printf("Dataset loader: initial load failed, searches will return no recommendations: %v", err)
			return
		}
		log.Printf("Dataset loader: loaded %d destinations from %s in %v", ds.Total(), ds.Source, time.Since(start))
	}()
}

// Done is closed once the startup load has finished, successfully or not.
func (d *DatasetLoader) Done() <-chan struct{} {
	return d.done
}
