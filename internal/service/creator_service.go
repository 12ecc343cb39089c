package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"marketplace-service/internal/event"
	"marketplace-service/internal/models"
	"marketplace-service/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type CreatorService struct {
	creatorRepo *repository.CreatorRepository
	userRepo    *repository.UserRepository
	metricsRepo *repository.MetricsRepository
	publisher   event.Publisher
}

func NewCreatorService(creatorRepo *repository.CreatorRepository, userRepo *repository.UserRepository, metricsRepo *repository.MetricsRepository, publisher event.Publisher) *CreatorService {
	return &CreatorService{
		creatorRepo: creatorRepo,
		userRepo:    userRepo,
		metricsRepo: metricsRepo,
		publisher:   publisher,
	}
}

// SaveOnboardingStep persists one onboarding step. Steps must be completed
// in order: a step may be re-saved, but a later step is rejected until every
// step before it is done.
func (s *CreatorService) SaveOnboardingStep(ctx context.Context, userID string, step models.OnboardingStep, req *models.OnboardingStepRequest) (*models.CreatorProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	stepIdx := models.StepIndex(step)
	if stepIdx < 0 {
		return nil, fmt.Errorf("unknown onboarding step: %s", step)
	}

	creator, err := s.creatorRepo.FindByUserID(ctx, userID)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to load creator profile: %w", err)
	}

	if creator == nil {
		if step != models.StepPersonalInfo {
			return nil, fmt.Errorf("onboarding must start with the %s step", models.StepPersonalInfo)
		}
		now := time.Now().Unix()
		creator = &models.CreatorProfile{
			UserID:         userID,
			Status:         models.CreatorStatusDraft,
			OnboardingStep: models.StepPersonalInfo,
			Metadata: models.Metadata{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
	} else {
		// Allow re-saving any completed step and the current one, but not
		// skipping ahead.
		currentIdx := models.StepIndex(creator.OnboardingStep)
		if stepIdx > currentIdx {
			return nil, fmt.Errorf("step %s is not yet reachable, current step is %s", step, creator.OnboardingStep)
		}
	}

	if err := s.applyStep(creator, step, req); err != nil {
		return nil, err
	}

	// Advance the cursor when the current step was the one just saved.
	if creator.OnboardingStep == step && stepIdx+1 < len(models.OnboardingSteps) {
		creator.OnboardingStep = models.OnboardingSteps[stepIdx+1]
	}

	creator.Metrics.Completeness = s.calculateCompleteness(creator)
	creator.Metadata.UpdatedAt = time.Now().Unix()

	var saved *models.CreatorProfile
	if creator.ID.IsZero() {
		saved, err = s.creatorRepo.New(ctx, creator)
		if err != nil {
			return nil, fmt.Errorf("failed to create creator profile: %w", err)
		}
		s.publish(models.EventTypeCreatorProfileCreated, saved, nil)
	} else {
		saved, err = s.creatorRepo.Update(ctx, userID, creator)
		if err != nil {
			return nil, fmt.Errorf("failed to update creator profile: %w", err)
		}
		s.publish(models.EventTypeCreatorProfileUpdated, saved, nil)
	}

	// Profile image is the source of truth for the account avatar; the sync
	// is one-way and overwrites any user-side edit.
	if step == models.StepPersonalInfo && saved.PersonalInfo.ProfileImage != "" {
		if err := s.userRepo.UpdateAvatar(ctx, userID, saved.PersonalInfo.ProfileImage); err != nil {
			log.Printf("Failed to sync avatar for user %s: %v", userID, err)
		}
	}

	return saved, nil
}

func (s *CreatorService) applyStep(creator *models.CreatorProfile, step models.OnboardingStep, req *models.OnboardingStepRequest) error {
	switch step {
	case models.StepPersonalInfo:
		if req.PersonalInfo == nil {
			return fmt.Errorf("validation failed: personalInfo is required")
		}
		if req.PersonalInfo.FirstName == "" || req.PersonalInfo.LastName == "" {
			return fmt.Errorf("validation failed: first and last name are required")
		}
		creator.PersonalInfo = *req.PersonalInfo
	case models.StepProfessionalInfo:
		if req.ProfessionalInfo == nil {
			return fmt.Errorf("validation failed: professionalInfo is required")
		}
		if len(req.ProfessionalInfo.Categories) == 0 {
			return fmt.Errorf("validation failed: at least one category is required")
		}
		creator.ProfessionalInfo = *req.ProfessionalInfo
	case models.StepDescriptionFaq:
		if req.DescriptionFaq == nil {
			return fmt.Errorf("validation failed: descriptionFaq is required")
		}
		creator.DescriptionFaq = *req.DescriptionFaq
	case models.StepSocialMedia:
		if len(req.SocialProfiles) == 0 {
			return fmt.Errorf("validation failed: at least one social profile is required")
		}
		creator.SocialProfiles = req.SocialProfiles
	case models.StepPricing:
		if req.Pricing == nil || (req.Pricing.Basic == nil && req.Pricing.Standard == nil && req.Pricing.Premium == nil) {
			return fmt.Errorf("validation failed: at least one pricing package is required")
		}
		creator.Pricing = *req.Pricing
	case models.StepGalleryPortfolio:
		creator.Gallery = req.Gallery
	case models.StepPublish:
		return fmt.Errorf("the publish step has no payload, use the publish endpoint")
	}
	return nil
}

// Publish makes a creator profile externally visible. Every onboarding step
// before publish must be complete.
func (s *CreatorService) Publish(ctx context.Context, userID string) (*models.CreatorProfile, error) {
	creator, err := s.creatorRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("creator profile not found")
		}
		return nil, fmt.Errorf("failed to load creator profile: %w", err)
	}

	if creator.OnboardingStep != models.StepPublish {
		return nil, fmt.Errorf("onboarding is not complete, current step is %s", creator.OnboardingStep)
	}
	if creator.Status == models.CreatorStatusSuspended {
		return nil, fmt.Errorf("suspended profiles cannot be published")
	}

	now := time.Now().Unix()
	creator.Status = models.CreatorStatusPublished
	creator.PublishInfo = models.PublishInfo{
		IsPublished: true,
		PublishedAt: now,
	}
	creator.Metrics.Completeness = s.calculateCompleteness(creator)
	creator.Metadata.UpdatedAt = now

	published, err := s.creatorRepo.Update(ctx, userID, creator)
	if err != nil {
		return nil, fmt.Errorf("failed to publish creator profile: %w", err)
	}

	// Seed the authoritative metrics record from the social snapshots so the
	// creator is matchable immediately.
	metrics := &models.CreatorMetrics{
		CreatorUserID: userID,
		Followers:     published.TotalFollowers(),
		AverageRating: published.Metrics.RatingAverage,
		Tier:          models.TierBronze,
		LastActiveAt:  now,
	}
	if _, err := s.metricsRepo.Upsert(ctx, metrics); err != nil {
		log.Printf("Failed to seed metrics for creator %s: %v", userID, err)
	}

	s.publish(models.EventTypeCreatorProfilePublished, published, nil)

	return published, nil
}

// GetProfile returns the creator's own profile, whatever its status.
func (s *CreatorService) GetProfile(ctx context.Context, userID string) (*models.CreatorProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	creator, err := s.creatorRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("creator profile not found")
		}
		return nil, fmt.Errorf("failed to get creator profile: %w", err)
	}

	return creator, nil
}

// GetPublicProfile returns a published profile by document ID and counts the
// view. Unpublished profiles are not visible through this path.
func (s *CreatorService) GetPublicProfile(ctx context.Context, id string) (*models.CreatorProfile, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid creator ID format: %w", err)
	}

	creator, err := s.creatorRepo.FindByID(ctx, objectID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("creator profile not found")
		}
		return nil, fmt.Errorf("failed to get creator profile: %w", err)
	}

	if !creator.PublishInfo.IsPublished || creator.Status != models.CreatorStatusPublished {
		return nil, fmt.Errorf("creator profile not found")
	}

	if err := s.creatorRepo.IncrementProfileViews(ctx, objectID); err != nil {
		log.Printf("Failed to increment profile views for %s: %v", id, err)
	}

	return creator, nil
}

// ListPublished returns every published creator profile.
func (s *CreatorService) ListPublished(ctx context.Context) ([]*models.CreatorProfile, error) {
	creators, err := s.creatorRepo.FindAllPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list creators: %w", err)
	}
	return creators, nil
}

// calculateCompleteness scores how much of the profile is filled in, on a
// 0..100 scale. Each onboarding section contributes a fixed share.
func (s *CreatorService) calculateCompleteness(creator *models.CreatorProfile) float64 {
	var score float64

	if creator.PersonalInfo.FirstName != "" && creator.PersonalInfo.LastName != "" {
		score += 10
	}
	if creator.PersonalInfo.ProfileImage != "" {
		score += 10
	}
	if len(creator.ProfessionalInfo.Categories) > 0 {
		score += 15
	}
	if len(creator.ProfessionalInfo.Expertise) > 0 {
		score += 5
	}
	if creator.DescriptionFaq.Description != "" {
		score += 10
	}
	if len(creator.DescriptionFaq.Faq) > 0 {
		score += 5
	}
	if len(creator.SocialProfiles) > 0 {
		score += 15
	}
	if creator.Pricing.Basic != nil || creator.Pricing.Standard != nil || creator.Pricing.Premium != nil {
		score += 15
	}
	if len(creator.Gallery) > 0 {
		score += 10
	}
	if creator.PublishInfo.IsPublished {
		score += 5
	}

	return score
}

func (s *CreatorService) publish(eventType models.EventType, creator *models.CreatorProfile, payload map[string]any) {
	evt := &models.MarketplaceEvent{
		EventType: eventType,
		EntityID:  creator.ID.Hex(),
		UserID:    creator.UserID,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	if err := s.publisher.PublishMarketplaceEvent(evt); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}
