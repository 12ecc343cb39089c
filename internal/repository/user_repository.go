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

type UserRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
		mu:         &sync.Mutex{},
	}
}

func (r *UserRepository) FindByUserID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertFromRegistration seeds a user document from an auth-side
// registration event.
func (r *UserRepository) UpsertFromRegistration(ctx context.Context, event *models.UserRegisterEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	currentTime := time.Now().Unix()
	update := bson.M{
		"$set": bson.M{
			"email":              event.Email,
			"name":               event.Username,
			"role":               models.UserRole(event.Role),
			"metadata.updatedAt": currentTime,
		},
		"$setOnInsert": bson.M{
			"userId":             event.UserID,
			"status":             models.ProfileStatusActive,
			"metadata.createdAt": currentTime,
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"userId": event.UserID}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// UpdateAvatar applies the one-way profile-image sync from a creator profile
// save onto the owning user.
func (r *UserRepository) UpdateAvatar(ctx context.Context, userID, avatar string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	update := bson.M{
		"$set": bson.M{
			"avatar":             avatar,
			"metadata.updatedAt": time.Now().Unix(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to update user avatar: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *UserRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	return nil
}
