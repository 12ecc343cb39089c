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

type MetricsRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewMetricsRepository(db *mongo.Database) *MetricsRepository {
	return &MetricsRepository{
		collection: db.Collection("creator_metrics"),
		mu:         &sync.Mutex{},
	}
}

func (r *MetricsRepository) FindByCreatorUserID(ctx context.Context, creatorUserID string) (*models.CreatorMetrics, error) {
	var metrics models.CreatorMetrics
	err := r.collection.FindOne(ctx, bson.M{"creatorUserId": creatorUserID}).Decode(&metrics)
	if err != nil {
		return nil, err
	}
	return &metrics, nil
}

// FindByCreatorUserIDs returns a map keyed by creator user ID. Creators
// without a metrics document are simply absent from the map.
func (r *MetricsRepository) FindByCreatorUserIDs(ctx context.Context, creatorUserIDs []string) (map[string]*models.CreatorMetrics, error) {
	result := make(map[string]*models.CreatorMetrics, len(creatorUserIDs))
	if len(creatorUserIDs) == 0 {
		return result, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"creatorUserId": bson.M{"$in": creatorUserIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to find creator metrics: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []*models.CreatorMetrics
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode creator metrics: %w", err)
	}

	for _, m := range docs {
		result[m.CreatorUserID] = m
	}

	return result, nil
}

func (r *MetricsRepository) Upsert(ctx context.Context, metrics *models.CreatorMetrics) (*models.CreatorMetrics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	currentTime := time.Now().Unix()
	if metrics.Metadata.CreatedAt == 0 {
		metrics.Metadata.CreatedAt = currentTime
	}
	metrics.Metadata.UpdatedAt = currentTime

	filter := bson.M{"creatorUserId": metrics.CreatorUserID}
	update := bson.M{"$set": metrics}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.CreatorMetrics
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert creator metrics: %w", err)
	}

	return &saved, nil
}

// UpdateSocialCounts refreshes the follower/engagement fields without
// touching the earnings and project counters.
func (r *MetricsRepository) UpdateSocialCounts(ctx context.Context, creatorUserID string, followers int64, engagementRate float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	update := bson.M{
		"$set": bson.M{
			"followers":          followers,
			"engagementRate":     engagementRate,
			"metadata.updatedAt": time.Now().Unix(),
		},
		"$setOnInsert": bson.M{
			"metadata.createdAt": time.Now().Unix(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"creatorUserId": creatorUserID}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to update social counts: %w", err)
	}
	return nil
}

// RecordCompletedProject bumps completion counters and earnings after an
// order reaches completed.
func (r *MetricsRepository) RecordCompletedProject(ctx context.Context, creatorUserID string, earnings float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	update := bson.M{
		"$inc": bson.M{
			"completedProjects": 1,
			"totalEarnings":     earnings,
		},
		"$set": bson.M{
			"lastActiveAt":       time.Now().Unix(),
			"metadata.updatedAt": time.Now().Unix(),
		},
		"$setOnInsert": bson.M{
			"metadata.createdAt": time.Now().Unix(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"creatorUserId": creatorUserID}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to record completed project: %w", err)
	}
	return nil
}

func (r *MetricsRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "creatorUserId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "tier", Value: 1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create metrics indexes: %w", err)
	}

	return nil
}
