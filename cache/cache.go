package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultTTL is the freshness window for cached provider responses.
const DefaultTTL = 3600 * time.Second

// Store is a time-boxed response cache sitting in front of every provider
// call. Get returns false for missing or expired entries. Set overwrites
// any existing entry with a fresh timestamp and must never fail from the
// caller's perspective: a rejected write means "not cached", nothing more.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
}

// Key builders. A key must incorporate every parameter that affects the
// result so distinct logical requests never collide and identical requests
// always hit. The version segment allows invalidating old entries when a
// prompt or schema changes.

// FeedKey identifies one feed page request.
func FeedKey(category string, query string, offset, limit int) string {
	return fmt.Sprintf("feed_v1_%s_%s_%d_limit_%d", category, query, offset, limit)
}

// ArticleKey identifies a full-article request. Only the leading part of
// the title participates, matching how articles are addressed upstream.
func ArticleKey(title string) string {
	if len(title) > 30 {
		title = title[:30]
	}
	return "article_v1_" + title
}

// QuoteKey identifies the quote for one calendar day.
func QuoteKey(day time.Time) string {
	return "daily_quote_v1_" + day.Format("2006-01-02")
}

// VocabKey identifies a word explanation, case-insensitively.
func VocabKey(word string) string {
	return "vocab_v1_" + strings.ToLower(word)
}

// AudioKey identifies a pronunciation payload, case-insensitively.
func AudioKey(text string) string {
	return "audio_v1_" + strings.ToLower(text)
}
