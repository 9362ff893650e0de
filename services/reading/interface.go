package reading

import (
	"context"

	"lexifeed/models"
)

// ReadingService serves full bilingual articles and the daily quote, both
// behind the response cache.
type ReadingService interface {
	// GetArticle returns the full rendition for a preview. A nil result
	// with an error is terminal for this interaction: the client renders
	// a retry-eligible failure state, and no automatic retry happens here.
	GetArticle(ctx context.Context, title, category, source string) (*models.ArticleContent, error)

	// GetDailyQuote returns the quote for the current calendar day.
	GetDailyQuote(ctx context.Context) (*models.DailyQuote, error)
}
