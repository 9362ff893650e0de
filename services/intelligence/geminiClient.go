package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lexifeed/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"
)

const geminiModel = "models/gemini-1.5-flash"

// GeminiProvider implements ContentProvider on top of the Gemini API for
// text generation and Google Cloud Text-to-Speech for pronunciation audio.
type GeminiProvider struct {
	client *genai.Client
	tts    *texttospeech.Service
	now    func() time.Time
}

// NewGeminiProvider creates the provider. ttsKey may equal geminiKey when
// both APIs are enabled on the same project key.
func NewGeminiProvider(ctx context.Context, geminiKey, ttsKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(geminiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	ttsSvc, err := texttospeech.NewService(ctx, option.WithAPIKey(ttsKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS service: %w", err)
	}
	return &GeminiProvider{client: client, tts: ttsSvc, now: time.Now}, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

// rawPreview mirrors the array items the feed prompt asks for.
type rawPreview struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Source   string `json:"source"`
}

// FetchFeed asks Gemini for a page of recent articles; the prompt pins the
// sources and date range. The response is free text, so the JSON array is
// extracted defensively; unparseable output yields an empty page, not an
// error.
func (g *GeminiProvider) FetchFeed(ctx context.Context, category string, limit int, query string, offset int) ([]models.ArticlePreview, error) {
	model := g.client.GenerativeModel(geminiModel)
	model.SetTemperature(0.1)

	topic := feedTopic(category, query)
	today := g.now().Format("January 2, 2006")
	prompt := fmt.Sprintf(
		`Find %d high-quality articles from the Economist, NYT, The Atlantic or Nature.
Date range: the past week, up to %s.
Topic: %s.
Respond with a plain JSON array only: [{"id","title","summary","category","date","source"}].
Summaries must be concise and suited to upper-intermediate English learners.`,
		limit, today, topic)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini feed request: %w", err)
	}

	var raw []rawPreview
	decodeArray(responseText(resp), &raw)

	previews := make([]models.ArticlePreview, 0, len(raw))
	millis := g.now().UnixMilli()
	for i, item := range raw {
		p := models.ArticlePreview{
			ID:       item.ID,
			Title:    item.Title,
			Summary:  item.Summary,
			Category: item.Category,
			Source:   item.Source,
			Date:     item.Date,
		}
		if p.ID == "" {
			// Millis plus page offset keeps IDs unique across appended pages.
			p.ID = fmt.Sprintf("art-%d-%d", millis, i+offset)
		}
		if p.Category == "" {
			p.Category = string(models.CategoryWorld)
		}
		p.ImageURL = fmt.Sprintf("https://picsum.photos/1000/700?random=%d", i+offset+120)
		previews = append(previews, p)
	}
	return previews, nil
}

func feedTopic(category, query string) string {
	switch {
	case query != "":
		return fmt.Sprintf("news about %q", query)
	case category == models.CategoryAll:
		return "recent in-depth reporting of broad interest"
	default:
		return fmt.Sprintf("the latest developments in %s", category)
	}
}

// GenerateFullArticle produces the bilingual rendition using JSON response
// mode constrained by the article schema.
func (g *GeminiProvider) GenerateFullArticle(ctx context.Context, title, category, source string) (*models.ArticleContent, error) {
	model := g.client.GenerativeModel(geminiModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = articleSchema

	prompt := fmt.Sprintf(
		`You are a senior writer and experienced English educator. Write an in-depth %s article titled %q in the style of the Economist.
Provide a high-quality Chinese translation for every paragraph, pick the 6 most exam-relevant vocabulary words with their precise meaning in the containing sentence, and label the CEFR difficulty.`,
		category, title)
	if source != "" {
		prompt += fmt.Sprintf(" Attribute the piece to %s.", source)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini article request: %w", err)
	}

	var content models.ArticleContent
	if !decodeObject(responseText(resp), &content) {
		return nil, fmt.Errorf("gemini article response was not valid JSON")
	}
	return &content, nil
}

var articleSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       {Type: genai.TypeString},
		"subtitle":    {Type: genai.TypeString},
		"author":      {Type: genai.TypeString},
		"date":        {Type: genai.TypeString},
		"difficulty":  {Type: genai.TypeString},
		"readTimeMin": {Type: genai.TypeInteger},
		"paragraphs": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"en": {Type: genai.TypeString},
					"cn": {Type: genai.TypeString},
				},
				Required: []string{"en", "cn"},
			},
		},
		"vocabulary": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"word":                {Type: genai.TypeString},
					"pronunciation":       {Type: genai.TypeString},
					"definition":          {Type: genai.TypeString},
					"context_translation": {Type: genai.TypeString},
					"type":                {Type: genai.TypeString},
				},
				Required: []string{"word", "definition", "context_translation", "type"},
			},
		},
	},
	Required: []string{"title", "subtitle", "author", "paragraphs", "vocabulary", "difficulty"},
}

// FetchDailyQuote returns one idiomatic English quote with its Chinese
// translation and author.
func (g *GeminiProvider) FetchDailyQuote(ctx context.Context) (*models.DailyQuote, error) {
	model := g.client.GenerativeModel(geminiModel)
	model.ResponseMIMEType = "application/json"

	prompt := `Provide one idiomatic English aphorism with its Chinese translation and author. JSON object: {"en","cn","author","category"}.`
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini quote request: %w", err)
	}

	var quote models.DailyQuote
	if !decodeObject(responseText(resp), &quote) {
		return nil, fmt.Errorf("gemini quote response was not valid JSON")
	}
	quote.ImageURL = fmt.Sprintf("https://picsum.photos/1200/800?grayscale&blur=2&seed=%d", g.now().UnixMilli())
	return &quote, nil
}

// ExplainWordInContext returns the precise meaning of word inside sentence.
func (g *GeminiProvider) ExplainWordInContext(ctx context.Context, word, sentence string) (*models.VocabItem, error) {
	model := g.client.GenerativeModel(geminiModel)
	model.ResponseMIMEType = "application/json"

	prompt := fmt.Sprintf(
		`Explain the precise meaning of the word %q in the sentence %q for a Chinese learner of English.
JSON object: {"word","definition","context_translation","type","pronunciation"}. The definition is a basic Chinese gloss; context_translation is what the word means in this exact sentence.`,
		word, sentence)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini vocab request: %w", err)
	}

	var item models.VocabItem
	if !decodeObject(responseText(resp), &item) {
		return nil, fmt.Errorf("gemini vocab response was not valid JSON")
	}
	return &item, nil
}
