package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repository"
)

type CampaignService struct {
	campaignRepo *repository.CampaignRepository
	brandRepo    *repository.BrandRepository
}

func NewCampaignService(campaignRepo *repository.CampaignRepository, brandRepo *repository.BrandRepository) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		brandRepo:    brandRepo,
	}
}

// CreateCampaign records a brand campaign that can later be named in match
// requests for campaign-aware scoring.
func (s *CampaignService) CreateCampaign(ctx context.Context, brandUserID string, campaign *models.Campaign) (*models.Campaign, error) {
	if brandUserID == "" {
		return nil, fmt.Errorf("brand user ID is required")
	}
	if campaign.Name == "" {
		return nil, fmt.Errorf("validation failed: name is required")
	}
	if campaign.Budget != nil && campaign.Budget.Min > campaign.Budget.Max {
		return nil, fmt.Errorf("validation failed: budget min cannot exceed max")
	}

	if _, err := s.brandRepo.FindByUserID(ctx, brandUserID); err != nil {
		return nil, fmt.Errorf("brand profile not found")
	}

	now := time.Now().Unix()
	campaign.BrandUserID = brandUserID
	if campaign.Status == "" {
		campaign.Status = models.CampaignStatusActive
	}
	campaign.Metadata = models.Metadata{
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.campaignRepo.New(ctx, campaign)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return created, nil
}

// ListCampaigns returns the brand's campaigns.
func (s *CampaignService) ListCampaigns(ctx context.Context, brandUserID string) ([]*models.Campaign, error) {
	campaigns, err := s.campaignRepo.FindByBrandUserID(ctx, brandUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}
