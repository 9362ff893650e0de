package vocab

import (
	"context"
	"errors"

	"lexifeed/models"
)

// ErrWordTooShort is returned when the cleaned token is too short to look up.
var ErrWordTooShort = errors.New("word too short to look up")

// VocabService handles contextual word lookups, the durable query ledger
// and pronunciation audio.
type VocabService interface {
	// Lookup cleans the tapped token, explains it in its sentence and
	// records the lookup in the durable ledger. The returned item carries
	// the accumulated queryCount for the lowercase word.
	Lookup(ctx context.Context, word, sentence string) (*models.VocabItem, error)

	// Ledger returns every word the user has ever looked up,
	// most-queried first.
	Ledger() ([]models.VocabItem, error)

	// GetAudio returns base64-encoded pronunciation audio for text.
	GetAudio(ctx context.Context, text string) (string, error)
}
