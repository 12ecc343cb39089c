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

type CreatorRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewCreatorRepository(db *mongo.Database) *CreatorRepository {
	return &CreatorRepository{
		collection: db.Collection("creator_profiles"),
		mu:         &sync.Mutex{},
	}
}

func (r *CreatorRepository) New(ctx context.Context, creator *models.CreatorProfile) (*models.CreatorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if creator.ID.IsZero() {
		creator.ID = bson.NewObjectID()
	}

	currentTime := time.Now().Unix()
	if creator.Metadata.CreatedAt == 0 {
		creator.Metadata.CreatedAt = currentTime
	}
	creator.Metadata.UpdatedAt = currentTime

	_, err := r.collection.InsertOne(ctx, creator)
	if err != nil {
		return nil, fmt.Errorf("failed to insert creator profile: %w", err)
	}
	return creator, nil
}

func (r *CreatorRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.CreatorProfile, error) {
	var creator models.CreatorProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&creator)
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

func (r *CreatorRepository) FindByUserID(ctx context.Context, userID string) (*models.CreatorProfile, error) {
	var creator models.CreatorProfile
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&creator)
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

func (r *CreatorRepository) Update(ctx context.Context, userID string, creator *models.CreatorProfile) (*models.CreatorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	creator.Metadata.UpdatedAt = time.Now().Unix()

	filter := bson.M{"userId": userID}
	update := bson.M{"$set": creator}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.CreatorProfile
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update creator profile: %w", err)
	}

	return &updated, nil
}

// publishedFilter merges extra criteria into the base visibility filter.
// Only published profiles are ever visible to matching or recommendations.
func publishedFilter(extra bson.M) bson.M {
	filter := bson.M{
		"status":                  models.CreatorStatusPublished,
		"publishInfo.isPublished": true,
	}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

// FindAllPublished loads every published creator, unpaginated. Matching
// scores the full set by contract, so no limit is applied here.
func (r *CreatorRepository) FindAllPublished(ctx context.Context) ([]*models.CreatorProfile, error) {
	cursor, err := r.collection.Find(ctx, publishedFilter(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to find published creators: %w", err)
	}
	defer cursor.Close(ctx)

	var creators []*models.CreatorProfile
	if err = cursor.All(ctx, &creators); err != nil {
		return nil, fmt.Errorf("failed to decode creators: %w", err)
	}

	return creators, nil
}

// FindPublished runs one generator-style query: published creators matching
// extra, ordered by sort, capped at limit.
func (r *CreatorRepository) FindPublished(ctx context.Context, extra bson.M, sort bson.D, limit int64) ([]*models.CreatorProfile, error) {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, publishedFilter(extra), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find published creators: %w", err)
	}
	defer cursor.Close(ctx)

	var creators []*models.CreatorProfile
	if err = cursor.All(ctx, &creators); err != nil {
		return nil, fmt.Errorf("failed to decode creators: %w", err)
	}

	return creators, nil
}

// FindByIDs hydrates creator documents preserving the order of ids. Missing
// documents are skipped silently: a stale recommendation list may reference
// creators that were suspended since generation.
func (r *CreatorRepository) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]*models.CreatorProfile, error) {
	if len(ids) == 0 {
		return []*models.CreatorProfile{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find creators by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var creators []*models.CreatorProfile
	if err = cursor.All(ctx, &creators); err != nil {
		return nil, fmt.Errorf("failed to decode creators: %w", err)
	}

	byID := make(map[bson.ObjectID]*models.CreatorProfile, len(creators))
	for _, c := range creators {
		byID[c.ID] = c
	}

	ordered := make([]*models.CreatorProfile, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}

	return ordered, nil
}

func (r *CreatorRepository) IncrementProfileViews(ctx context.Context, id bson.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"metrics.profileViews": 1},
	})
	if err != nil {
		return fmt.Errorf("failed to increment profile views: %w", err)
	}
	return nil
}

func (r *CreatorRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "publishInfo.isPublished", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "professionalInfo.categories", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "professionalInfo.tags", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "metrics.ratingAverage", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "metrics.profileViews", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "metadata.createdAt", Value: -1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create creator indexes: %w", err)
	}

	return nil
}
