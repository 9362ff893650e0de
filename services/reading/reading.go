package reading

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lexifeed/cache"
	"lexifeed/models"
	ai "lexifeed/services/intelligence"

	"go.uber.org/zap"
)

// DefaultReadingService is the production implementation.
type DefaultReadingService struct {
	Cache    cache.Store
	Provider ai.ContentProvider
	Logger   *zap.Logger
	Now      func() time.Time
}

func NewDefaultReadingService(store cache.Store, provider ai.ContentProvider, logger *zap.Logger) *DefaultReadingService {
	return &DefaultReadingService{
		Cache:    store,
		Provider: provider,
		Logger:   logger,
		Now:      time.Now,
	}
}

func (s *DefaultReadingService) GetArticle(ctx context.Context, title, category, source string) (*models.ArticleContent, error) {
	key := cache.ArticleKey(title)
	if data, ok := s.Cache.Get(ctx, key); ok {
		var content models.ArticleContent
		if err := json.Unmarshal(data, &content); err == nil {
			return &content, nil
		}
		s.Logger.Warn("discarding unreadable cache entry", zap.String("key", key))
	}

	content, err := s.Provider.GenerateFullArticle(ctx, title, category, source)
	if err != nil {
		s.Logger.Warn("article generation failed", zap.String("title", title), zap.Error(err))
		return nil, fmt.Errorf("generate article %q: %w", title, err)
	}

	if b, err := json.Marshal(content); err == nil {
		s.Cache.Set(ctx, key, b)
	}
	return content, nil
}

func (s *DefaultReadingService) GetDailyQuote(ctx context.Context) (*models.DailyQuote, error) {
	key := cache.QuoteKey(s.Now())
	if data, ok := s.Cache.Get(ctx, key); ok {
		var quote models.DailyQuote
		if err := json.Unmarshal(data, &quote); err == nil {
			return &quote, nil
		}
		s.Logger.Warn("discarding unreadable cache entry", zap.String("key", key))
	}

	quote, err := s.Provider.FetchDailyQuote(ctx)
	if err != nil {
		s.Logger.Warn("daily quote fetch failed", zap.Error(err))
		return nil, fmt.Errorf("fetch daily quote: %w", err)
	}

	if b, err := json.Marshal(quote); err == nil {
		s.Cache.Set(ctx, key, b)
	}
	return quote, nil
}
