package reading

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"lexifeed/cache"
	"lexifeed/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProvider struct {
	mu           sync.Mutex
	articleCalls int
	quoteCalls   int
	articleErr   error
	quoteErr     error
}

func (p *stubProvider) GenerateFullArticle(_ context.Context, title, _, _ string) (*models.ArticleContent, error) {
	p.mu.Lock()
	p.articleCalls++
	p.mu.Unlock()
	if p.articleErr != nil {
		return nil, p.articleErr
	}
	return &models.ArticleContent{
		Title: title,
		Paragraphs: []models.ArticleParagraph{
			{EN: "First paragraph.", CN: "第一段。"},
		},
	}, nil
}

func (p *stubProvider) FetchDailyQuote(context.Context) (*models.DailyQuote, error) {
	p.mu.Lock()
	p.quoteCalls++
	p.mu.Unlock()
	if p.quoteErr != nil {
		return nil, p.quoteErr
	}
	return &models.DailyQuote{EN: "Stay curious.", CN: "保持好奇。", Author: "Anonymous"}, nil
}

func (p *stubProvider) FetchFeed(context.Context, string, int, string, int) ([]models.ArticlePreview, error) {
	return nil, errors.New("not implemented")
}

func (p *stubProvider) ExplainWordInContext(context.Context, string, string) (*models.VocabItem, error) {
	return nil, errors.New("not implemented")
}

func (p *stubProvider) FetchWordAudio(context.Context, string) (string, error) {
	return "", errors.New("not implemented")
}

func newTestService(provider *stubProvider) *DefaultReadingService {
	return NewDefaultReadingService(cache.NewMemoryStore(cache.DefaultTTL), provider, zap.NewNop())
}

func TestGetArticleGeneratesOncePerTitle(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(provider)
	ctx := context.Background()

	first, err := svc.GetArticle(ctx, "The Quiet Rise of Microgrids", "Technology", "Reuters")
	require.NoError(t, err)
	second, err := svc.GetArticle(ctx, "The Quiet Rise of Microgrids", "Technology", "Reuters")
	require.NoError(t, err)

	assert.Equal(t, 1, provider.articleCalls, "repeat open must be served from cache")
	assert.Equal(t, first, second)
	require.NotEmpty(t, first.Paragraphs)
	assert.NotEmpty(t, first.Paragraphs[0].CN)
}

func TestGetArticleProviderFailureIsNotCached(t *testing.T) {
	provider := &stubProvider{articleErr: errors.New("provider down")}
	svc := newTestService(provider)
	ctx := context.Background()

	_, err := svc.GetArticle(ctx, "Some Title", "Science", "")
	require.Error(t, err)

	// Recovery on the provider side means the retry goes through.
	provider.articleErr = nil
	content, err := svc.GetArticle(ctx, "Some Title", "Science", "")
	require.NoError(t, err)
	assert.Equal(t, "Some Title", content.Title)
	assert.Equal(t, 2, provider.articleCalls)
}

func TestDailyQuoteScopedToCalendarDay(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(provider)
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	_, err := svc.GetDailyQuote(ctx)
	require.NoError(t, err)

	// Later the same day: cached.
	now = now.Add(14 * time.Hour)
	_, err = svc.GetDailyQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, provider.quoteCalls)

	// Next morning: a fresh quote for a fresh key.
	now = now.Add(10 * time.Hour)
	_, err = svc.GetDailyQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, provider.quoteCalls)
}

func TestDailyQuoteProviderFailure(t *testing.T) {
	provider := &stubProvider{quoteErr: errors.New("provider down")}
	svc := newTestService(provider)

	_, err := svc.GetDailyQuote(context.Background())
	assert.Error(t, err)
}
