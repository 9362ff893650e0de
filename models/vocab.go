package models

// VocabItem is a contextual word explanation. The ledger keys entries by
// lowercase word; QueryCount accumulates across sessions and never expires
// with the response cache.
type VocabItem struct {
	Word               string `json:"word" bson:"word"`
	Pronunciation      string `json:"pronunciation,omitempty" bson:"pronunciation,omitempty"`
	Definition         string `json:"definition" bson:"definition"`
	ContextTranslation string `json:"context_translation" bson:"context_translation"`
	Type               string `json:"type" bson:"type"` // part of speech
	QueryCount         int    `json:"queryCount,omitempty" bson:"queryCount,omitempty"`
}
