package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repository"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

type BrandService struct {
	brandRepo *repository.BrandRepository
	prefRepo  *repository.PreferenceRepository
}

func NewBrandService(brandRepo *repository.BrandRepository, prefRepo *repository.PreferenceRepository) *BrandService {
	return &BrandService{
		brandRepo: brandRepo,
		prefRepo:  prefRepo,
	}
}

// CreateProfile creates a new brand profile for the authenticated user.
func (s *BrandService) CreateProfile(ctx context.Context, userID string, req *models.CreateBrandProfileRequest) (*models.BrandProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if req.Name == "" {
		return nil, fmt.Errorf("validation failed: name is required")
	}
	if req.Username == "" {
		return nil, fmt.Errorf("validation failed: username is required")
	}

	existing, err := s.brandRepo.FindByUserID(ctx, userID)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("brand profile already exists for user %s", userID)
	}

	now := time.Now().Unix()
	brand := &models.BrandProfile{
		UserID:      userID,
		Name:        req.Name,
		Username:    req.Username,
		Industry:    req.Industry,
		Location:    req.Location,
		Website:     req.Website,
		SocialLinks: req.SocialLinks,
		Status:      models.ProfileStatusActive,
		Metadata: models.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.brandRepo.New(ctx, brand)
	if err != nil {
		return nil, fmt.Errorf("failed to create brand profile: %w", err)
	}

	return created, nil
}

// GetProfile retrieves a brand profile by user ID.
func (s *BrandService) GetProfile(ctx context.Context, userID string) (*models.BrandProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	brand, err := s.brandRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("brand profile not found")
		}
		return nil, fmt.Errorf("failed to get brand profile: %w", err)
	}

	return brand, nil
}

// UpdateProfile applies a partial update to an existing brand profile.
func (s *BrandService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateBrandProfileRequest) (*models.BrandProfile, error) {
	brand, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		brand.Name = req.Name
	}
	if req.Industry != "" {
		brand.Industry = req.Industry
	}
	if req.Location != "" {
		brand.Location = req.Location
	}
	if req.Website != "" {
		brand.Website = req.Website
	}
	if req.SocialLinks != nil {
		brand.SocialLinks = req.SocialLinks
	}
	if req.Status != "" {
		brand.Status = req.Status
	}
	brand.Metadata.UpdatedAt = time.Now().Unix()

	updated, err := s.brandRepo.Update(ctx, userID, brand)
	if err != nil {
		return nil, fmt.Errorf("failed to update brand profile: %w", err)
	}

	return updated, nil
}

// DeactivateProfile soft-deletes a brand profile. Brands are never removed
// from the collection.
func (s *BrandService) DeactivateProfile(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user ID is required")
	}

	if err := s.brandRepo.Deactivate(ctx, userID); err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("brand profile not found")
		}
		return fmt.Errorf("failed to deactivate brand profile: %w", err)
	}

	return nil
}

// UpsertPreference replaces the brand's targeting preference wholesale.
// There is no partial preference update; the request document becomes the
// new preference.
func (s *BrandService) UpsertPreference(ctx context.Context, userID string, req *models.UpsertPreferenceRequest) (*models.BrandPreference, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if req.Budget != nil && req.Budget.Min > req.Budget.Max {
		return nil, fmt.Errorf("validation failed: budget min cannot exceed max")
	}

	pref := &models.BrandPreference{
		UserID:             userID,
		Category:           req.Category,
		BrandValues:        req.BrandValues,
		Demographics:       req.Demographics,
		Budget:             req.Budget,
		Platforms:          req.Platforms,
		Subcategories:      req.Subcategories,
		Expertise:          req.Expertise,
		ContentTypes:       req.ContentTypes,
		EventTypes:         req.EventTypes,
		TargetAudience:     req.TargetAudience,
		TravelWillingness:  req.TravelWillingness,
		MinExperienceYears: req.MinExperienceYears,
		Metadata: models.Metadata{
			UpdatedAt: time.Now().Unix(),
		},
	}

	saved, err := s.prefRepo.Upsert(ctx, pref)
	if err != nil {
		return nil, fmt.Errorf("failed to save preference: %w", err)
	}

	return saved, nil
}

// GetPreference retrieves the brand's stored preference, or nil when the
// brand has never saved one.
func (s *BrandService) GetPreference(ctx context.Context, userID string) (*models.BrandPreference, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	pref, err := s.prefRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}

	return pref, nil
}
