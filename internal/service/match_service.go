package service

import (
	"context"
	"fmt"
	"sort"

	"marketplace-service/internal/matching"
	"marketplace-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Data sources the matcher reads from. Satisfied by the concrete Mongo
// repositories; narrowed to what the scoring flow touches.
type BrandSource interface {
	FindByUserID(ctx context.Context, userID string) (*models.BrandProfile, error)
}

type PreferenceSource interface {
	FindByUserID(ctx context.Context, userID string) (*models.BrandPreference, error)
}

type CreatorSource interface {
	FindAllPublished(ctx context.Context) ([]*models.CreatorProfile, error)
}

type MetricsSource interface {
	FindByCreatorUserIDs(ctx context.Context, creatorUserIDs []string) (map[string]*models.CreatorMetrics, error)
}

type CampaignSource interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Campaign, error)
}

type MatchService struct {
	brands    BrandSource
	prefs     PreferenceSource
	creators  CreatorSource
	metrics   MetricsSource
	campaigns CampaignSource
}

func NewMatchService(brands BrandSource, prefs PreferenceSource, creators CreatorSource, metrics MetricsSource, campaigns CampaignSource) *MatchService {
	return &MatchService{
		brands:    brands,
		prefs:     prefs,
		creators:  creators,
		metrics:   metrics,
		campaigns: campaigns,
	}
}

// MatchCreators scores every published creator against a brand's stored
// preference and returns the matches ordered by descending score. A brand
// without a profile or without a preference gets an empty list, never an
// error: there is nothing to score against.
func (s *MatchService) MatchCreators(ctx context.Context, brandUserID, campaignID string) (*models.MatchResponse, error) {
	if brandUserID == "" {
		return nil, fmt.Errorf("brand user ID is required")
	}

	brand, err := s.brands.FindByUserID(ctx, brandUserID)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("failed to load brand profile: %w", err)
		}
		return &models.MatchResponse{Matches: []models.Match{}}, nil
	}

	pref, err := s.prefs.FindByUserID(ctx, brandUserID)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("failed to load preference: %w", err)
		}
		return &models.MatchResponse{Matches: []models.Match{}}, nil
	}

	var campaign *models.Campaign
	if campaignID != "" {
		objectID, err := bson.ObjectIDFromHex(campaignID)
		if err != nil {
			return nil, fmt.Errorf("invalid campaign ID format: %w", err)
		}
		campaign, err = s.campaigns.FindByID(ctx, objectID)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, fmt.Errorf("campaign not found")
			}
			return nil, fmt.Errorf("failed to load campaign: %w", err)
		}
		if campaign.BrandUserID != brandUserID {
			return nil, fmt.Errorf("campaign does not belong to brand %s", brandUserID)
		}
	}

	creators, err := s.creators.FindAllPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load creators: %w", err)
	}

	userIDs := make([]string, 0, len(creators))
	for _, c := range creators {
		userIDs = append(userIDs, c.UserID)
	}
	metricsByUser, err := s.metrics.FindByCreatorUserIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator metrics: %w", err)
	}

	matches := make([]models.Match, 0, len(creators))
	for _, creator := range creators {
		metrics := metricsByUser[creator.UserID]
		result := matching.Score(brand, pref, campaign, creator, metrics)
		matches = append(matches, models.Match{
			CreatorID: creator.ID.Hex(),
			Profile:   creator,
			Metrics:   metrics,
			Score:     result.Score,
			Reasons:   result.Reasons,
		})
	}

	// Stable so equal scores keep the repository's order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return &models.MatchResponse{Matches: matches}, nil
}
