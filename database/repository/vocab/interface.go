package vocabRepo

import (
	"lexifeed/models"
)

// VocabRepository is the durable vocabulary ledger: a persisted mapping
// from lowercase word to its explanation and running queryCount. Entries
// never expire; they outlive the TTL response cache and the process.
type VocabRepository interface {
	// RecordLookup upserts the explanation under the word's lowercase key
	// and increments its queryCount by one, returning the merged entry.
	// Implementations must serialize the read-modify-write per word.
	RecordLookup(word string, item models.VocabItem) (*models.VocabItem, error)

	// Get returns the ledger entry for word (case-insensitive), or nil
	// when the word has never been looked up.
	Get(word string) (*models.VocabItem, error)

	// All returns every ledger entry, most-queried first.
	All() ([]models.VocabItem, error)
}
