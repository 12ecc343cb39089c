package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"marketplace-service/internal/event"
	"marketplace-service/internal/models"
	"marketplace-service/internal/recommendation"
)

type RecommendationService struct {
	policy    *recommendation.Policy
	publisher event.Publisher
}

func NewRecommendationService(policy *recommendation.Policy, publisher event.Publisher) *RecommendationService {
	return &RecommendationService{
		policy:    policy,
		publisher: publisher,
	}
}

// GetAuto returns the brand's stored recommendation list, generating one the
// first time it is asked for.
func (s *RecommendationService) GetAuto(ctx context.Context, brandUserID string) ([]*models.CreatorProfile, error) {
	if brandUserID == "" {
		return nil, fmt.Errorf("brand user ID is required")
	}
	return s.policy.Get(ctx, brandUserID, recommendation.GetOptions{})
}

// Refresh discards the stored recommendation list and generates a new one.
func (s *RecommendationService) Refresh(ctx context.Context, brandUserID string) ([]*models.CreatorProfile, error) {
	if brandUserID == "" {
		return nil, fmt.Errorf("brand user ID is required")
	}

	creators, err := s.policy.Get(ctx, brandUserID, recommendation.GetOptions{ForceRefresh: true})
	if err != nil {
		return nil, err
	}

	evt := &models.MarketplaceEvent{
		EventType: models.EventTypeRecommendationGenerated,
		EntityID:  brandUserID,
		UserID:    brandUserID,
		Timestamp: time.Now().Unix(),
		Payload: map[string]any{
			"count": len(creators),
		},
	}
	if err := s.publisher.PublishMarketplaceEvent(evt); err != nil {
		log.Printf("Failed to publish recommendation event: %v", err)
	}

	return creators, nil
}

// GetSmart returns the preference-driven list when the brand has a saved
// preference, falling back to the stored recommendation list otherwise.
func (s *RecommendationService) GetSmart(ctx context.Context, brandUserID string) ([]*models.CreatorProfile, error) {
	if brandUserID == "" {
		return nil, fmt.Errorf("brand user ID is required")
	}
	return s.policy.Get(ctx, brandUserID, recommendation.GetOptions{UsePreference: true})
}

// GeneratedAt reports when the stored list was last generated, for response
// metadata.
func (s *RecommendationService) GeneratedAt(ctx context.Context, brandUserID string) time.Time {
	return s.policy.GeneratedAt(ctx, brandUserID)
}
