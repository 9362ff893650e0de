package vocabRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lexifeed/database"
	"lexifeed/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoVocabRepo implements VocabRepository using MongoDB.
type MongoVocabRepo struct {
	coll *mongo.Collection
}

// NewMongoVocabRepo creates a new instance of VocabRepository using MongoDB.
func NewMongoVocabRepo() VocabRepository {
	coll := database.MongoClient.Database("lexifeed").Collection("vocabulary")
	repo := &MongoVocabRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoVocabRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "queryCount", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ledgerEntry is the stored document; "key" is the lowercase lookup key.
type ledgerEntry struct {
	Key              string `bson:"key"`
	models.VocabItem `bson:",inline"`
}

// RecordLookup upserts the explanation and atomically increments the
// queryCount. The $inc inside a single upsert keeps the count accurate
// under concurrent lookups of the same word.
func (r *MongoVocabRepo) RecordLookup(word string, item models.VocabItem) (*models.VocabItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	key := strings.ToLower(word)
	update := bson.M{
		"$set": bson.M{
			"word":                item.Word,
			"pronunciation":       item.Pronunciation,
			"definition":          item.Definition,
			"context_translation": item.ContextTranslation,
			"type":                item.Type,
		},
		"$inc": bson.M{"queryCount": 1},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var merged ledgerEntry
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"key": key}, update, opts).Decode(&merged); err != nil {
		return nil, fmt.Errorf("failed to record lookup for %q: %w", word, err)
	}
	return &merged.VocabItem, nil
}

// Get retrieves a ledger entry by its lowercase key.
func (r *MongoVocabRepo) Get(word string) (*models.VocabItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var found ledgerEntry
	err := r.coll.FindOne(ctx, bson.M{"key": strings.ToLower(word)}).Decode(&found)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vocab entry %q: %w", word, err)
	}
	return &found.VocabItem, nil
}

// All retrieves every ledger entry, most-queried first.
func (r *MongoVocabRepo) All() ([]models.VocabItem, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "queryCount", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve vocabulary: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.VocabItem
	for cursor.Next(ctx) {
		var e ledgerEntry
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode vocab entry: %w", err)
		}
		items = append(items, e.VocabItem)
	}
	return items, nil
}
