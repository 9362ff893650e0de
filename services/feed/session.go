package feed

import (
	"context"
	"sync"

	"lexifeed/models"
)

// session is the per-client loader state machine. Its mutex guards every
// field; it is released around provider calls so a filter change can land
// while a load is in flight. Each load captures the generation at issue
// time and applies its result only if the generation still matches on
// completion: a late response for a stale filter context is discarded
// silently instead of corrupting the newer context.
type session struct {
	id  string
	svc *DefaultFeedService

	mu       sync.Mutex
	category string
	query    string
	density  Density
	items    []models.ArticlePreview
	inFlight int
	gen      uint64
}

func (s *session) state() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.ArticlePreview, len(s.items))
	copy(items, s.items)
	return State{
		ID:          s.id,
		Category:    s.category,
		SearchQuery: s.query,
		Density:     s.density,
		Items:       items,
		Loading:     s.inFlight > 0,
	}
}

// setFilter applies a category or query change: items are cleared, density
// resets to compact and the generation is bumped so in-flight loads for
// the previous context discard themselves.
func (s *session) setFilter(category, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
	s.query = query
	s.items = nil
	s.density = DensityCompact
	s.gen++
}

// upgrade switches to full density, dropping the compact preview. The
// subsequent fresh load re-fetches offset 0 at the full batch size rather
// than merging with the single shown item: one extra request bought
// implementation simplicity.
func (s *session) upgrade() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.density = DensityFull
	s.items = nil
	s.gen++
}

// fetchCategory maps the sentinels to the unfiltered request the provider
// understands. Caller holds the lock.
func (s *session) fetchCategory() string {
	if s.category == models.CategoryForYou {
		return models.CategoryAll
	}
	return s.category
}

// loadFresh replaces the item list from offset 0. Only one load may be in
// flight per session; force bypasses that gate for the explicit upgrade
// action, where direct user intent wins.
func (s *session) loadFresh(ctx context.Context, force bool) {
	s.mu.Lock()
	if s.inFlight > 0 && !force {
		s.mu.Unlock()
		return
	}
	gen := s.gen
	category, query := s.fetchCategory(), s.query
	limit := s.svc.CompactLimit
	if s.density == DensityFull {
		limit = s.svc.FullLimit
	}
	s.inFlight++
	s.mu.Unlock()

	previews := s.svc.fetchPage(ctx, category, query, limit, 0)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	if gen != s.gen {
		return
	}
	s.items = previews
}

// loadAppend extends the list by one page at offset len(items). Appends
// are strictly gated: full density only, nothing in flight, at least one
// item present. An empty page is normal; the list simply stops growing.
func (s *session) loadAppend(ctx context.Context) {
	s.mu.Lock()
	if s.density != DensityFull || s.inFlight > 0 || len(s.items) == 0 {
		s.mu.Unlock()
		return
	}
	gen := s.gen
	category, query := s.fetchCategory(), s.query
	offset := len(s.items)
	limit := s.svc.FullLimit
	s.inFlight++
	s.mu.Unlock()

	previews := s.svc.fetchPage(ctx, category, query, limit, offset)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	if gen != s.gen {
		return
	}
	// Earlier pages are never reordered or deduplicated against new ones.
	s.items = append(s.items, previews...)
}
