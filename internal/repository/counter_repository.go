package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CounterRepository hands out monotonically increasing sequence numbers via
// an atomic findOneAndUpdate $inc. A count()-then-insert scheme would hand
// the same number to concurrent callers; the upserted counter document
// cannot.
type CounterRepository struct {
	collection *mongo.Collection
}

func NewCounterRepository(db *mongo.Database) *CounterRepository {
	return &CounterRepository{
		collection: db.Collection("counters"),
	}
}

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// Next atomically increments and returns the sequence for key.
func (r *CounterRepository) Next(ctx context.Context, key string) (int64, error) {
	filter := bson.M{"_id": key}
	update := bson.M{"$inc": bson.M{"seq": int64(1)}}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to advance counter %s: %w", key, err)
	}

	return doc.Seq, nil
}

// NextOrderID formats the next human-readable order identifier for a year.
// The per-year counter key makes the sequence restart naturally each year.
func (r *CounterRepository) NextOrderID(ctx context.Context, year int) (string, error) {
	seq, err := r.Next(ctx, fmt.Sprintf("order-%d", year))
	if err != nil {
		return "", err
	}
	return FormatOrderID(year, seq), nil
}

// FormatOrderID renders ORD-<year>-<zero-padded seq>.
func FormatOrderID(year int, seq int64) string {
	return fmt.Sprintf("ORD-%d-%05d", year, seq)
}
