package ai

import (
	"context"

	"lexifeed/models"
)

// ContentProvider is the external generative-content boundary. Every method
// is a network call; callers convert failures to empty/absent results at
// the boundary, so none of these errors reach a client as an exception.
type ContentProvider interface {
	// FetchFeed returns up to limit article previews for the category (or
	// "All"), optionally constrained by a free-text query, starting at the
	// given page offset. Zero results is success.
	FetchFeed(ctx context.Context, category string, limit int, query string, offset int) ([]models.ArticlePreview, error)

	// GenerateFullArticle produces the bilingual rendition for a preview.
	GenerateFullArticle(ctx context.Context, title, category, source string) (*models.ArticleContent, error)

	// FetchDailyQuote returns a quote for the current calendar day.
	FetchDailyQuote(ctx context.Context) (*models.DailyQuote, error)

	// ExplainWordInContext explains what word means inside sentence.
	ExplainWordInContext(ctx context.Context, word, sentence string) (*models.VocabItem, error)

	// FetchWordAudio synthesizes pronunciation audio for text and returns
	// the base64-encoded payload (16-bit signed PCM, 24 kHz, mono).
	FetchWordAudio(ctx context.Context, text string) (string, error)
}
