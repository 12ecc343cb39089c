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

type PreferenceRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewPreferenceRepository(db *mongo.Database) *PreferenceRepository {
	return &PreferenceRepository{
		collection: db.Collection("brand_preferences"),
		mu:         &sync.Mutex{},
	}
}

// Upsert replaces the brand's preference document wholesale. Partial updates
// are intentionally unsupported.
func (r *PreferenceRepository) Upsert(ctx context.Context, pref *models.BrandPreference) (*models.BrandPreference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	currentTime := time.Now().Unix()
	if pref.Metadata.CreatedAt == 0 {
		pref.Metadata.CreatedAt = currentTime
	}
	pref.Metadata.UpdatedAt = currentTime

	filter := bson.M{"userId": pref.UserID}
	update := bson.M{"$set": pref}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.BrandPreference
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert brand preference: %w", err)
	}

	return &saved, nil
}

func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID string) (*models.BrandPreference, error) {
	var pref models.BrandPreference
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&pref)
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *PreferenceRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create preference indexes: %w", err)
	}

	return nil
}
