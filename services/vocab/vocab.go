package vocab

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"lexifeed/cache"
	vocabRepo "lexifeed/database/repository/vocab"
	"lexifeed/models"
	ai "lexifeed/services/intelligence"

	"go.uber.org/zap"
)

// punctuation stripped from tapped tokens before lookup.
var punctRe = regexp.MustCompile("[.,/#!$%^&*;:{}=\\-_`~()\"'?]")

// CleanWord strips punctuation and surrounding whitespace from a tapped
// token. An empty result means the token is not lookupable.
func CleanWord(word string) string {
	return strings.TrimSpace(punctRe.ReplaceAllString(word, ""))
}

// DefaultVocabService is the production implementation.
type DefaultVocabService struct {
	Cache    cache.Store
	Provider ai.ContentProvider
	Repo     vocabRepo.VocabRepository
	Logger   *zap.Logger
}

func NewDefaultVocabService(store cache.Store, provider ai.ContentProvider, repo vocabRepo.VocabRepository, logger *zap.Logger) *DefaultVocabService {
	return &DefaultVocabService{
		Cache:    store,
		Provider: provider,
		Repo:     repo,
		Logger:   logger,
	}
}

// Lookup resolves the explanation (cache first, then provider) and merges
// it with the ledger. The ledger increments once per lookup interaction,
// cache hit or not, so queryCount keeps counting across sessions.
func (s *DefaultVocabService) Lookup(ctx context.Context, word, sentence string) (*models.VocabItem, error) {
	clean := CleanWord(word)
	if len(clean) < 2 {
		return nil, ErrWordTooShort
	}

	item := s.explanation(ctx, clean, sentence)
	if item == nil {
		return nil, fmt.Errorf("no explanation available for %q", clean)
	}

	merged, err := s.Repo.RecordLookup(clean, *item)
	if err != nil {
		// The explanation is still useful without the count.
		s.Logger.Warn("vocab ledger update failed", zap.String("word", clean), zap.Error(err))
		return item, nil
	}
	return merged, nil
}

func (s *DefaultVocabService) explanation(ctx context.Context, word, sentence string) *models.VocabItem {
	key := cache.VocabKey(word)
	if data, ok := s.Cache.Get(ctx, key); ok {
		var item models.VocabItem
		if err := json.Unmarshal(data, &item); err == nil {
			return &item
		}
		s.Logger.Warn("discarding unreadable cache entry", zap.String("key", key))
	}

	item, err := s.Provider.ExplainWordInContext(ctx, word, sentence)
	if err != nil {
		s.Logger.Warn("word explanation failed", zap.String("word", word), zap.Error(err))
		return nil
	}
	if b, err := json.Marshal(item); err == nil {
		s.Cache.Set(ctx, key, b)
	}
	return item
}

func (s *DefaultVocabService) Ledger() ([]models.VocabItem, error) {
	return s.Repo.All()
}

// GetAudio returns base64 pronunciation audio, cached case-insensitively.
// Oversized payloads the cache rejects are served uncached.
func (s *DefaultVocabService) GetAudio(ctx context.Context, text string) (string, error) {
	key := cache.AudioKey(text)
	if data, ok := s.Cache.Get(ctx, key); ok {
		return string(data), nil
	}

	audio, err := s.Provider.FetchWordAudio(ctx, text)
	if err != nil {
		s.Logger.Warn("audio fetch failed", zap.String("text", text), zap.Error(err))
		return "", fmt.Errorf("fetch audio for %q: %w", text, err)
	}
	s.Cache.Set(ctx, key, []byte(audio))
	return audio, nil
}
