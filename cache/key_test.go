package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeedKeyDiscrimination(t *testing.T) {
	base := FeedKey("Technology", "", 0, 6)

	variants := map[string]string{
		"different category": FeedKey("Science", "", 0, 6),
		"different query":    FeedKey("Technology", "chips", 0, 6),
		"different offset":   FeedKey("Technology", "", 6, 6),
		"different limit":    FeedKey("Technology", "", 0, 1),
	}
	for name, key := range variants {
		assert.NotEqual(t, base, key, name)
	}

	assert.Equal(t, base, FeedKey("Technology", "", 0, 6), "identical requests must share a key")
}

func TestArticleKeyUsesTitlePrefix(t *testing.T) {
	long := "A title that is clearly longer than thirty characters in total"
	assert.Equal(t, ArticleKey(long[:30]), ArticleKey(long))
	assert.NotEqual(t, ArticleKey("One title"), ArticleKey("Another title"))
}

func TestQuoteKeyIsDayScoped(t *testing.T) {
	morning := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, QuoteKey(morning), QuoteKey(evening))
	assert.NotEqual(t, QuoteKey(morning), QuoteKey(nextDay))
}

func TestVocabAndAudioKeysAreCaseInsensitive(t *testing.T) {
	assert.Equal(t, VocabKey("Resilient"), VocabKey("resilient"))
	assert.Equal(t, AudioKey("Resilient"), AudioKey("RESILIENT"))
	assert.NotEqual(t, VocabKey("resilient"), AudioKey("resilient"))
}
