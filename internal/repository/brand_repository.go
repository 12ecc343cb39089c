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

type BrandRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{
		collection: db.Collection("brand_profiles"),
		mu:         &sync.Mutex{},
	}
}

func (r *BrandRepository) New(ctx context.Context, brand *models.BrandProfile) (*models.BrandProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if brand.ID.IsZero() {
		brand.ID = bson.NewObjectID()
	}

	currentTime := time.Now().Unix()
	if brand.Metadata.CreatedAt == 0 {
		brand.Metadata.CreatedAt = currentTime
	}
	brand.Metadata.UpdatedAt = currentTime

	_, err := r.collection.InsertOne(ctx, brand)
	if err != nil {
		return nil, fmt.Errorf("failed to insert brand profile: %w", err)
	}
	return brand, nil
}

func (r *BrandRepository) FindByUserID(ctx context.Context, userID string) (*models.BrandProfile, error) {
	var brand models.BrandProfile
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&brand)
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepository) Update(ctx context.Context, userID string, brand *models.BrandProfile) (*models.BrandProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	brand.Metadata.UpdatedAt = time.Now().Unix()

	filter := bson.M{"userId": userID}
	update := bson.M{"$set": brand}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.BrandProfile
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update brand profile: %w", err)
	}

	return &updated, nil
}

// Deactivate soft-deletes a brand profile. Brand documents are never removed
// from the collection.
func (r *BrandRepository) Deactivate(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	update := bson.M{
		"$set": bson.M{
			"status":             models.ProfileStatusInactive,
			"metadata.updatedAt": time.Now().Unix(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate brand profile: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *BrandRepository) IncrementMetric(ctx context.Context, userID, metric string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	update := bson.M{
		"$inc": bson.M{"metrics." + metric: delta},
		"$set": bson.M{"metadata.updatedAt": time.Now().Unix()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to increment brand metric %s: %w", metric, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *BrandRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "username", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "industry", Value: 1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create brand indexes: %w", err)
	}

	return nil
}
