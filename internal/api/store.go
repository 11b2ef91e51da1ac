// internal/api/store.go
package api

import (
	"sync"

	"github.com/tamzrod/triga-plc/internal/acquire"
	"github.com/tamzrod/triga-plc/internal/record"
	"github.com/tamzrod/triga-plc/internal/status"
)

// Store keeps the latest acquisition cycle for concurrent readers.
// Writes come from the single acquisition goroutine.
type Store struct {
	mu   sync.RWMutex
	raw  record.Record
	conv record.Record
	have bool
	snap status.Snapshot
}

func NewStore() *Store {
	return &Store{
		raw:  record.New(),
		conv: record.New(),
		snap: status.NewSnapshot(),
	}
}

// Update records one cycle and folds its status into the health snapshot.
func (s *Store) Update(c acquire.Cycle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw = c.Raw
	s.conv = c.Converted
	s.have = true
	s.snap = status.Observe(s.snap, c.Raw.Status, c.Raw.Time)
}

// Latest returns the last converted (or raw) record.
// ok is false until the first cycle arrives.
func (s *Store) Latest(raw bool) (r record.Record, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if raw {
		return s.raw, s.have
	}
	return s.conv, s.have
}

// Snapshot returns the current health snapshot.
func (s *Store) Snapshot() status.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
