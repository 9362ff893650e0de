package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	payload  []byte
	storedAt time.Time
}

// MemoryStore is an in-process Store. Expiry is lazy: an entry older than
// the TTL is treated as absent and purged on the Get that finds it. There
// is no background eviction; the cache exists to avoid redundant provider
// calls within a session, not to bound memory proactively.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an empty MemoryStore with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the payload stored under key, or false if the key is absent
// or the entry has outlived the TTL. Expired entries are removed so stale
// data does not accumulate.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.storedAt) > s.ttl {
		delete(s.entries, key)
		return nil, false
	}
	return e.payload, true
}

// Set stores payload under key, overwriting any previous entry and
// refreshing its timestamp.
func (s *MemoryStore) Set(_ context.Context, key string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{payload: payload, storedAt: s.now()}
}

// SetClock overrides the time source. Test hook.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Len reports the number of live plus not-yet-purged entries.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
