package analytics

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps counters in process memory. It backs tests and dev
// runs without a data directory; counters reset on restart.
type MemoryStore struct {
	mu       sync.Mutex
	counters Counters
	now      func() time.Time
}

// NewMemoryStore returns a store initialized with fresh counters.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters: NewCounters(time.Now()),
		now:      time.Now,
	}
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context) (Counters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters.clone(), nil
}

// IncrementAndSave implements Store.
func (s *MemoryStore) IncrementAndSave(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters.apply(ev, s.now())
	return nil
}

var _ Store = (*MemoryStore)(nil)
