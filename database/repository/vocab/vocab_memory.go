package vocabRepo

import (
	"sort"
	"strings"
	"sync"

	"lexifeed/models"
)

// MemoryVocabRepo is an in-process VocabRepository used in tests and when
// running without MongoDB. The mutex serializes the read-modify-write so
// queryCount stays accurate under concurrent lookups.
type MemoryVocabRepo struct {
	mu      sync.Mutex
	entries map[string]models.VocabItem
}

// NewMemoryVocabRepo creates an empty in-memory ledger.
func NewMemoryVocabRepo() *MemoryVocabRepo {
	return &MemoryVocabRepo{entries: make(map[string]models.VocabItem)}
}

func (r *MemoryVocabRepo) RecordLookup(word string, item models.VocabItem) (*models.VocabItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(word)
	merged := item
	merged.QueryCount = r.entries[key].QueryCount + 1
	r.entries[key] = merged
	return &merged, nil
}

func (r *MemoryVocabRepo) Get(word string) (*models.VocabItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[strings.ToLower(word)]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *MemoryVocabRepo) All() ([]models.VocabItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.VocabItem, 0, len(r.entries))
	for _, e := range r.entries {
		items = append(items, e)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].QueryCount > items[j].QueryCount })
	return items, nil
}
