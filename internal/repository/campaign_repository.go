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

type CampaignRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{
		collection: db.Collection("campaigns"),
		mu:         &sync.Mutex{},
	}
}

func (r *CampaignRepository) New(ctx context.Context, campaign *models.Campaign) (*models.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if campaign.ID.IsZero() {
		campaign.ID = bson.NewObjectID()
	}

	currentTime := time.Now().Unix()
	if campaign.Metadata.CreatedAt == 0 {
		campaign.Metadata.CreatedAt = currentTime
	}
	campaign.Metadata.UpdatedAt = currentTime

	_, err := r.collection.InsertOne(ctx, campaign)
	if err != nil {
		return nil, fmt.Errorf("failed to insert campaign: %w", err)
	}
	return campaign, nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&campaign)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *CampaignRepository) FindByBrandUserID(ctx context.Context, brandUserID string) ([]*models.Campaign, error) {
	opts := options.Find().SetSort(bson.M{"metadata.createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"brandUserId": brandUserID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	var campaigns []*models.Campaign
	if err = cursor.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("failed to decode campaigns: %w", err)
	}

	return campaigns, nil
}

func (r *CampaignRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "brandUserId", Value: 1}, {Key: "metadata.createdAt", Value: -1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create campaign indexes: %w", err)
	}

	return nil
}
