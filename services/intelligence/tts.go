package ai

import (
	"context"
	"fmt"

	texttospeech "google.golang.org/api/texttospeech/v1"
)

// Audio payload format expected by the reading client's PCM decoder.
const (
	audioSampleRateHertz = 24000
	audioVoiceName       = "en-US-Neural2-F"
)

// FetchWordAudio synthesizes pronunciation audio for text. The response is
// the base64-encoded payload as returned by the API (16-bit signed PCM,
// 24 kHz, mono); decoding into playable audio is the client's concern.
func (g *GeminiProvider) FetchWordAudio(ctx context.Context, text string) (string, error) {
	req := &texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: "en-US",
			Name:         audioVoiceName,
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding:   "LINEAR16",
			SampleRateHertz: audioSampleRateHertz,
		},
	}

	resp, err := g.tts.Text.Synthesize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("tts synthesize request: %w", err)
	}
	if resp.AudioContent == "" {
		return "", fmt.Errorf("tts synthesize returned no audio")
	}
	return resp.AudioContent, nil
}
