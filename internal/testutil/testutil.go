// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"sync"
)

// SampleDataset is a small recommendations document covering every category.
const SampleDataset = `{
  "beaches": [
    {"name": "Bora Bora", "description": "Turquoise lagoon", "imageUrl": "images/bora.jpg", "timezone": "Pacific/Tahiti"},
    {"name": "Copacabana Beach", "description": "Rio's famous beach", "imageUrl": "images/copacabana.jpg", "timezone": "America/Sao_Paulo"}
  ],
  "temples": [
    {"name": "Angkor Wat", "description": "Cambodian temple complex", "imageUrl": "images/angkor.jpg"},
    {"name": "Taj Mahal", "description": "Ivory-white mausoleum", "imageUrl": "images/taj.jpg", "timezone": "Asia/Kolkata"}
  ],
  "countries": [
    {"name": "Japan", "description": "Land of the rising sun", "timezone": "Asia/Tokyo"}
  ]
}`

// StaticSource is an in-memory dataset source for tests. It is safe for
// concurrent use; Set swaps the payload or error returned by Fetch.
type StaticSource struct {
	mu    sync.Mutex
	data  []byte
	err   error
	calls int
}

// NewStaticSource returns a source serving data.
func NewStaticSource(data string) *StaticSource {
	return &StaticSource{data: []byte(data)}
}

// NewFailingSource returns a source whose Fetch always fails with err.
func NewFailingSource(err error) *StaticSource {
	return &StaticSource{err: err}
}

// Set replaces what subsequent fetches return.
func (s *StaticSource) Set(data string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = []byte(data)
	s.err = err
}

// Fetch returns the configured payload or error.
func (s *StaticSource) Fetch(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

// Location identifies the source in logs.
func (s *StaticSource) Location() string {
	return "memory://test"
}

// Calls returns how many times Fetch was invoked.
func (s *StaticSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
