package repository

import (
	"context"
	"fmt"
	"time"

	"marketplace-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type LikeRepository struct {
	collection *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{
		collection: db.Collection("likes"),
	}
}

// Add inserts the (user, creator) relation. The compound unique index makes
// a duplicate like fail; callers treat that as already-liked, not an error.
func (r *LikeRepository) Add(ctx context.Context, userID string, creatorID bson.ObjectID) error {
	like := &models.Like{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		CreatorID: creatorID,
		CreatedAt: time.Now().Unix(),
	}

	_, err := r.collection.InsertOne(ctx, like)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Remove(ctx context.Context, userID string, creatorID bson.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "creatorId": creatorID})
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *LikeRepository) Exists(ctx context.Context, userID string, creatorID bson.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID, "creatorId": creatorID})
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

func (r *LikeRepository) FindCreatorIDsByUser(ctx context.Context, userID string) ([]bson.ObjectID, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to find likes: %w", err)
	}
	defer cursor.Close(ctx)

	var likes []*models.Like
	if err = cursor.All(ctx, &likes); err != nil {
		return nil, fmt.Errorf("failed to decode likes: %w", err)
	}

	ids := make([]bson.ObjectID, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.CreatorID)
	}

	return ids, nil
}

func (r *LikeRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "creatorId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create like indexes: %w", err)
	}

	return nil
}
