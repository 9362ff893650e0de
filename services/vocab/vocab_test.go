package vocab

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"lexifeed/cache"
	vocabRepo "lexifeed/database/repository/vocab"
	"lexifeed/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProvider struct {
	mu           sync.Mutex
	explainCalls int
	audioCalls   int
	explainErr   error
	audioErr     error
}

func (p *stubProvider) ExplainWordInContext(_ context.Context, word, _ string) (*models.VocabItem, error) {
	p.mu.Lock()
	p.explainCalls++
	p.mu.Unlock()
	if p.explainErr != nil {
		return nil, p.explainErr
	}
	return &models.VocabItem{
		Word:       word,
		Definition: "a definition of " + word,
		Type:       "adj.",
	}, nil
}

func (p *stubProvider) FetchWordAudio(_ context.Context, _ string) (string, error) {
	p.mu.Lock()
	p.audioCalls++
	p.mu.Unlock()
	if p.audioErr != nil {
		return "", p.audioErr
	}
	return "UENNMTZMRQ==", nil
}

func (p *stubProvider) FetchFeed(context.Context, string, int, string, int) ([]models.ArticlePreview, error) {
	return nil, errors.New("not implemented")
}

func (p *stubProvider) GenerateFullArticle(context.Context, string, string, string) (*models.ArticleContent, error) {
	return nil, errors.New("not implemented")
}

func (p *stubProvider) FetchDailyQuote(context.Context) (*models.DailyQuote, error) {
	return nil, errors.New("not implemented")
}

func newTestService(provider *stubProvider, repo vocabRepo.VocabRepository) *DefaultVocabService {
	return NewDefaultVocabService(cache.NewMemoryStore(cache.DefaultTTL), provider, repo, zap.NewNop())
}

func TestCleanWord(t *testing.T) {
	cases := map[string]string{
		"resilient,":    "resilient",
		"(ecosystem)":   "ecosystem",
		"  spaced  ":    "spaced",
		"it's":          "its",
		"semi-detached": "semidetached",
		"?!.":           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, CleanWord(in), in)
	}
}

func TestLookupCountsEveryInteraction(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(provider, vocabRepo.NewMemoryVocabRepo())
	ctx := context.Background()

	first, err := svc.Lookup(ctx, "resilient", "She stayed resilient.")
	require.NoError(t, err)
	assert.Equal(t, 1, first.QueryCount)

	// The second lookup is a cache hit, but it is still an interaction:
	// the ledger count moves even though the provider does not.
	second, err := svc.Lookup(ctx, "resilient", "A resilient economy.")
	require.NoError(t, err)
	assert.Equal(t, 2, second.QueryCount)
	assert.Equal(t, 1, provider.explainCalls)
}

func TestLookupIsCaseAndPunctuationInsensitive(t *testing.T) {
	provider := &stubProvider{}
	repo := vocabRepo.NewMemoryVocabRepo()
	svc := newTestService(provider, repo)
	ctx := context.Background()

	_, err := svc.Lookup(ctx, "Resilient,", "Resilient, she said.")
	require.NoError(t, err)
	item, err := svc.Lookup(ctx, "resilient", "A resilient economy.")
	require.NoError(t, err)

	assert.Equal(t, 2, item.QueryCount)
	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 1, "case variants share one ledger entry")
}

func TestLookupRejectsShortTokens(t *testing.T) {
	svc := newTestService(&stubProvider{}, vocabRepo.NewMemoryVocabRepo())

	for _, word := range []string{"a", "I.", "?!", "  "} {
		_, err := svc.Lookup(context.Background(), word, "some sentence")
		assert.ErrorIs(t, err, ErrWordTooShort, word)
	}
}

func TestLookupProviderFailure(t *testing.T) {
	provider := &stubProvider{explainErr: errors.New("provider down")}
	svc := newTestService(provider, vocabRepo.NewMemoryVocabRepo())

	_, err := svc.Lookup(context.Background(), "resilient", "sentence")
	assert.Error(t, err)
}

type failingRepo struct{}

func (failingRepo) RecordLookup(string, models.VocabItem) (*models.VocabItem, error) {
	return nil, errors.New("ledger unavailable")
}
func (failingRepo) Get(string) (*models.VocabItem, error) { return nil, errors.New("ledger unavailable") }
func (failingRepo) All() ([]models.VocabItem, error)      { return nil, errors.New("ledger unavailable") }

func TestLookupSurvivesLedgerFailure(t *testing.T) {
	svc := newTestService(&stubProvider{}, failingRepo{})

	item, err := svc.Lookup(context.Background(), "resilient", "sentence")
	require.NoError(t, err, "the explanation is still worth showing")
	assert.Equal(t, "resilient", item.Word)
}

func TestLedgerOrdersByQueryCount(t *testing.T) {
	svc := newTestService(&stubProvider{}, vocabRepo.NewMemoryVocabRepo())
	ctx := context.Background()

	for _, word := range []string{"alpha", "beta", "beta", "beta", "gamma", "gamma"} {
		_, err := svc.Lookup(ctx, word, "sentence with "+word)
		require.NoError(t, err)
	}

	ledger, err := svc.Ledger()
	require.NoError(t, err)
	require.Len(t, ledger, 3)
	assert.Equal(t, "beta", strings.ToLower(ledger[0].Word))
	assert.Equal(t, 3, ledger[0].QueryCount)
}

func TestGetAudioCachedCaseInsensitively(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(provider, vocabRepo.NewMemoryVocabRepo())
	ctx := context.Background()

	first, err := svc.GetAudio(ctx, "Resilient")
	require.NoError(t, err)
	second, err := svc.GetAudio(ctx, "resilient")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.audioCalls)
}

func TestGetAudioProviderFailure(t *testing.T) {
	provider := &stubProvider{audioErr: errors.New("tts down")}
	svc := newTestService(provider, vocabRepo.NewMemoryVocabRepo())

	_, err := svc.GetAudio(context.Background(), "resilient")
	assert.Error(t, err)
}
