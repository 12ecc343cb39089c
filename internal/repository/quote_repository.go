package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"marketplace-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type QuoteRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewQuoteRepository(db *mongo.Database) *QuoteRepository {
	return &QuoteRepository{
		collection: db.Collection("quote_requests"),
		mu:         &sync.Mutex{},
	}
}

func (r *QuoteRepository) New(ctx context.Context, quote *models.CustomQuoteRequest) (*models.CustomQuoteRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if quote.ID.IsZero() {
		quote.ID = bson.NewObjectID()
	}

	currentTime := time.Now().Unix()
	if quote.Metadata.CreatedAt == 0 {
		quote.Metadata.CreatedAt = currentTime
	}
	quote.Metadata.UpdatedAt = currentTime

	_, err := r.collection.InsertOne(ctx, quote)
	if err != nil {
		return nil, fmt.Errorf("failed to insert quote request: %w", err)
	}
	return quote, nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.CustomQuoteRequest, error) {
	var quote models.CustomQuoteRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&quote)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *QuoteRepository) FindByBrandUserID(ctx context.Context, brandUserID string) ([]*models.CustomQuoteRequest, error) {
	return r.findSorted(ctx, bson.M{"brandUserId": brandUserID})
}

func (r *QuoteRepository) FindByCreatorUserID(ctx context.Context, creatorUserID string) ([]*models.CustomQuoteRequest, error) {
	return r.findSorted(ctx, bson.M{"creatorUserId": creatorUserID})
}

func (r *QuoteRepository) findSorted(ctx context.Context, filter bson.M) ([]*models.CustomQuoteRequest, error) {
	opts := options.Find().SetSort(bson.M{"metadata.createdAt": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find quote requests: %w", err)
	}
	defer cursor.Close(ctx)

	var quotes []*models.CustomQuoteRequest
	if err = cursor.All(ctx, &quotes); err != nil {
		return nil, fmt.Errorf("failed to decode quote requests: %w", err)
	}

	return quotes, nil
}

func (r *QuoteRepository) UpdateStatus(ctx context.Context, id bson.ObjectID, status models.QuoteStatus, responseNote string) (*models.CustomQuoteRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := bson.M{
		"status":             status,
		"metadata.updatedAt": time.Now().Unix(),
	}
	if responseNote != "" {
		set["responseNote"] = responseNote
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.CustomQuoteRequest
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update quote status: %w", err)
	}

	return &updated, nil
}

func (r *QuoteRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "brandUserId", Value: 1}, {Key: "metadata.createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "creatorUserId", Value: 1}, {Key: "status", Value: 1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create quote indexes: %w", err)
	}

	return nil
}
