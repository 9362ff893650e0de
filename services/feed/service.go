package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"lexifeed/cache"
	"lexifeed/models"
	ai "lexifeed/services/intelligence"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultFeedService is the production implementation.
type DefaultFeedService struct {
	Cache        cache.Store
	Provider     ai.ContentProvider
	Logger       *zap.Logger
	CompactLimit int
	FullLimit    int

	mu       sync.Mutex
	sessions map[string]*session
}

// NewDefaultFeedService wires the loader over a response cache and a
// content provider.
func NewDefaultFeedService(store cache.Store, provider ai.ContentProvider, logger *zap.Logger, compactLimit, fullLimit int) *DefaultFeedService {
	return &DefaultFeedService{
		Cache:        store,
		Provider:     provider,
		Logger:       logger,
		CompactLimit: compactLimit,
		FullLimit:    fullLimit,
		sessions:     make(map[string]*session),
	}
}

func (f *DefaultFeedService) CreateSession(ctx context.Context) State {
	s := &session{
		id:       uuid.NewString(),
		svc:      f,
		category: models.CategoryAll,
		density:  DensityCompact,
	}
	f.mu.Lock()
	f.sessions[s.id] = s
	f.mu.Unlock()

	s.loadFresh(ctx, false)
	return s.state()
}

func (f *DefaultFeedService) GetSession(id string) (State, error) {
	s, err := f.session(id)
	if err != nil {
		return State{}, err
	}
	return s.state(), nil
}

func (f *DefaultFeedService) SelectCategory(ctx context.Context, id, category string) (State, error) {
	if category != models.CategoryAll && category != models.CategoryForYou && !models.IsCategory(category) {
		return State{}, fmt.Errorf("unknown category %q", category)
	}
	s, err := f.session(id)
	if err != nil {
		return State{}, err
	}
	s.setFilter(category, "")
	s.loadFresh(ctx, false)
	return s.state(), nil
}

func (f *DefaultFeedService) Search(ctx context.Context, id, query string) (State, error) {
	s, err := f.session(id)
	if err != nil {
		return State{}, err
	}
	// A search overrides category filtering and forces All.
	s.setFilter(models.CategoryAll, query)
	s.loadFresh(ctx, false)
	return s.state(), nil
}

func (f *DefaultFeedService) Upgrade(ctx context.Context, id string) (State, error) {
	s, err := f.session(id)
	if err != nil {
		return State{}, err
	}
	s.upgrade()
	s.loadFresh(ctx, true)
	return s.state(), nil
}

func (f *DefaultFeedService) LoadMore(ctx context.Context, id string) (State, error) {
	s, err := f.session(id)
	if err != nil {
		return State{}, err
	}
	s.loadAppend(ctx)
	return s.state(), nil
}

func (f *DefaultFeedService) session(id string) (*session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// fetchPage runs one provider request through the response cache. Provider
// failures and unparseable cache entries both degrade to an empty page;
// nothing here surfaces as an error to the caller. Empty pages are not
// cached, matching the upstream behavior of only memoizing useful results.
func (f *DefaultFeedService) fetchPage(ctx context.Context, category, query string, limit, offset int) []models.ArticlePreview {
	key := cache.FeedKey(category, query, offset, limit)
	if data, ok := f.Cache.Get(ctx, key); ok {
		var previews []models.ArticlePreview
		if err := json.Unmarshal(data, &previews); err == nil {
			return previews
		}
		f.Logger.Warn("discarding unreadable cache entry", zap.String("key", key))
	}

	previews, err := f.Provider.FetchFeed(ctx, category, limit, query, offset)
	if err != nil {
		f.Logger.Warn("feed fetch failed",
			zap.String("category", category),
			zap.String("query", query),
			zap.Int("offset", offset),
			zap.Error(err))
		return nil
	}
	if len(previews) > 0 {
		if b, err := json.Marshal(previews); err == nil {
			f.Cache.Set(ctx, key, b)
		}
	}
	return previews
}
