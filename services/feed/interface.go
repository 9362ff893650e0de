package feed

import (
	"context"
	"errors"

	"lexifeed/models"
)

// Density controls how many items a fresh load requests and whether
// auto-pagination is armed.
type Density string

const (
	// DensityCompact requests a single item for a cheap first paint.
	DensityCompact Density = "compact"
	// DensityFull requests full batches and arms incremental pagination.
	DensityFull Density = "full"
)

// State is the client-visible snapshot of one feed session.
type State struct {
	ID          string                  `json:"id"`
	Category    string                  `json:"category"`
	SearchQuery string                  `json:"searchQuery,omitempty"`
	Density     Density                 `json:"density"`
	Items       []models.ArticlePreview `json:"items"`
	Loading     bool                    `json:"loading"`
}

// ErrSessionNotFound is returned for unknown session IDs.
var ErrSessionNotFound = errors.New("feed session not found")

// FeedService owns feed sessions: it decides what to fetch, merges results,
// and drives auto-pagination.
type FeedService interface {
	// CreateSession starts a new session (category All, compact density)
	// and performs its initial fresh load.
	CreateSession(ctx context.Context) State

	// GetSession returns the current state without fetching anything;
	// navigating back to the feed must not re-fetch unchanged filters.
	GetSession(id string) (State, error)

	// SelectCategory changes the topic filter: items are cleared, density
	// resets to compact and a fresh load follows.
	SelectCategory(ctx context.Context, id, category string) (State, error)

	// Search sets a free-text query, which forces the All category. Items
	// are cleared, density resets to compact and a fresh load follows.
	Search(ctx context.Context, id, query string) (State, error)

	// Upgrade forces full density, clears the compact preview and
	// re-fetches offset 0 at the full batch size. Direct user intent: it
	// may issue a fresh load even while another load is outstanding.
	Upgrade(ctx context.Context, id string) (State, error)

	// LoadMore is the proximity-triggered append. It is a no-op unless the
	// session is in full density, idle, and already has items.
	LoadMore(ctx context.Context, id string) (State, error)
}
