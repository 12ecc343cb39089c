package service

import (
	"testing"

	"marketplace-service/internal/models"
)

func TestCalculateCompleteness(t *testing.T) {
	s := &CreatorService{}

	empty := &models.CreatorProfile{}
	if got := s.calculateCompleteness(empty); got != 0 {
		t.Errorf("Expected 0 completeness for empty profile, got %f", got)
	}

	full := &models.CreatorProfile{
		PersonalInfo: models.CreatorPersonalInfo{
			FirstName:    "Linh",
			LastName:     "Tran",
			ProfileImage: "https://cdn.example.com/linh.jpg",
		},
		ProfessionalInfo: models.ProfessionalInfo{
			Categories: []string{"Fashion"},
			Expertise:  []string{"styling"},
		},
		DescriptionFaq: models.DescriptionFaq{
			Description: "Fashion creator",
			Faq:         []models.FaqItem{{Question: "Q", Answer: "A"}},
		},
		SocialProfiles: []models.SocialProfile{{Platform: "instagram", Handle: "linh"}},
		Pricing:        models.Pricing{Standard: &models.PricingPackage{Price: 1000}},
		Gallery:        []models.GalleryItem{{URL: "https://cdn.example.com/1.jpg"}},
		PublishInfo:    models.PublishInfo{IsPublished: true},
	}
	if got := s.calculateCompleteness(full); got != 100 {
		t.Errorf("Expected 100 completeness for full profile, got %f", got)
	}

	// Dropping a section drops its share, never below zero.
	full.Gallery = nil
	if got := s.calculateCompleteness(full); got != 90 {
		t.Errorf("Expected 90 completeness without gallery, got %f", got)
	}
}

func TestApplyStepValidation(t *testing.T) {
	s := &CreatorService{}
	creator := &models.CreatorProfile{}

	// Personal info requires both names.
	err := s.applyStep(creator, models.StepPersonalInfo, &models.OnboardingStepRequest{
		PersonalInfo: &models.CreatorPersonalInfo{FirstName: "Linh"},
	})
	if err == nil {
		t.Error("Expected error for missing last name")
	}

	err = s.applyStep(creator, models.StepPersonalInfo, &models.OnboardingStepRequest{
		PersonalInfo: &models.CreatorPersonalInfo{FirstName: "Linh", LastName: "Tran"},
	})
	if err != nil {
		t.Errorf("Expected valid personal info to apply, got %v", err)
	}
	if creator.PersonalInfo.FirstName != "Linh" {
		t.Errorf("Expected personal info to be stored, got %q", creator.PersonalInfo.FirstName)
	}

	// Professional info requires a category.
	err = s.applyStep(creator, models.StepProfessionalInfo, &models.OnboardingStepRequest{
		ProfessionalInfo: &models.ProfessionalInfo{},
	})
	if err == nil {
		t.Error("Expected error for missing categories")
	}

	// Pricing requires at least one package.
	err = s.applyStep(creator, models.StepPricing, &models.OnboardingStepRequest{
		Pricing: &models.Pricing{},
	})
	if err == nil {
		t.Error("Expected error for empty pricing")
	}

	// The publish step carries no payload.
	err = s.applyStep(creator, models.StepPublish, &models.OnboardingStepRequest{})
	if err == nil {
		t.Error("Expected error when saving the publish step as a payload step")
	}

	// Gallery is optional and may be empty.
	err = s.applyStep(creator, models.StepGalleryPortfolio, &models.OnboardingStepRequest{})
	if err != nil {
		t.Errorf("Expected empty gallery to be accepted, got %v", err)
	}
}
