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

type RecommendationRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewRecommendationRepository(db *mongo.Database) *RecommendationRepository {
	return &RecommendationRepository{
		collection: db.Collection("brand_recommendations"),
		mu:         &sync.Mutex{},
	}
}

func (r *RecommendationRepository) FindByBrandUserID(ctx context.Context, brandUserID string) (*models.BrandRecommendation, error) {
	var rec models.BrandRecommendation
	err := r.collection.FindOne(ctx, bson.M{"brandUserId": brandUserID}).Decode(&rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Upsert fully overwrites the brand's recommendation list. Concurrent
// refreshes race benignly: last write wins, both lists were valid.
func (r *RecommendationRepository) Upsert(ctx context.Context, brandUserID string, creatorIDs []bson.ObjectID) (*models.BrandRecommendation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	currentTime := time.Now().Unix()
	filter := bson.M{"brandUserId": brandUserID}
	update := bson.M{
		"$set": bson.M{
			"creatorIds":         creatorIDs,
			"generatedAt":        currentTime,
			"metadata.updatedAt": currentTime,
		},
		"$setOnInsert": bson.M{
			"metadata.createdAt": currentTime,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.BrandRecommendation
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert brand recommendation: %w", err)
	}

	return &saved, nil
}

func (r *RecommendationRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "brandUserId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create recommendation indexes: %w", err)
	}

	return nil
}
