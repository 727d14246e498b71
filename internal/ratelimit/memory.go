package ratelimit

import (
	"context"
	"sync"
	"time"
)

type record struct {
	count int64
	reset time.Time
}

// MemoryStore is a process-local Store. A background sweep removes
// records whose window has long expired so the map cannot grow without
// bound. Call Stop on shutdown.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*record
	stop    chan struct{}

	now func() time.Time // overridable in tests
}

// NewMemoryStore creates a memory store with background cleanup.
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		records: make(map[string]*record),
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	go s.sweep(sweepInterval)
	return s
}

// Stop terminates the background sweep goroutine.
func (s *MemoryStore) Stop() {
	close(s.stop)
}

// Incr implements Store. Once the window boundary passes the record is
// replaced, never incremented further.
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok || now.After(rec.reset) {
		s.records[key] = &record{count: 1, reset: now.Add(window)}
		return 1, nil
	}

	rec.count++
	return rec.count, nil
}

func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweepOnce(interval)
		}
	}
}

// sweepOnce removes records whose window ended more than maxAge ago.
func (s *MemoryStore) sweepOnce(maxAge time.Duration) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, rec := range s.records {
		if now.Sub(rec.reset) > maxAge {
			delete(s.records, key)
		}
	}
}
