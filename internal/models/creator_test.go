package models

import (
	"testing"
)

func TestPackagePrice(t *testing.T) {
	creator := &CreatorProfile{
		Pricing: Pricing{
			Basic:   &PricingPackage{Price: 500},
			Premium: &PricingPackage{Price: 3000},
		},
	}

	if got := creator.PackagePrice(PackageBasic); got != 500 {
		t.Errorf("Expected basic price 500, got %f", got)
	}
	if got := creator.PackagePrice(PackageStandard); got != 0 {
		t.Errorf("Expected 0 for missing standard package, got %f", got)
	}
	if got := creator.PackagePrice(PackagePremium); got != 3000 {
		t.Errorf("Expected premium price 3000, got %f", got)
	}
}

func TestStandardPriceFallback(t *testing.T) {
	// Standard wins when present.
	creator := &CreatorProfile{
		Pricing: Pricing{
			Basic:    &PricingPackage{Price: 500},
			Standard: &PricingPackage{Price: 1000},
			Premium:  &PricingPackage{Price: 3000},
		},
	}
	if got := creator.StandardPrice(); got != 1000 {
		t.Errorf("Expected standard price 1000, got %f", got)
	}

	// Basic is the first fallback.
	creator.Pricing.Standard = nil
	if got := creator.StandardPrice(); got != 500 {
		t.Errorf("Expected basic fallback 500, got %f", got)
	}

	// Premium is the last fallback.
	creator.Pricing.Basic = nil
	if got := creator.StandardPrice(); got != 3000 {
		t.Errorf("Expected premium fallback 3000, got %f", got)
	}

	// No pricing at all.
	creator.Pricing.Premium = nil
	if got := creator.StandardPrice(); got != 0 {
		t.Errorf("Expected 0 without pricing, got %f", got)
	}
}

func TestTotalFollowers(t *testing.T) {
	creator := &CreatorProfile{
		SocialProfiles: []SocialProfile{
			{Platform: "instagram", Followers: 10000},
			{Platform: "tiktok", Followers: 25000},
			{Platform: "youtube", Followers: 0},
		},
	}
	if got := creator.TotalFollowers(); got != 35000 {
		t.Errorf("Expected 35000 total followers, got %d", got)
	}

	empty := &CreatorProfile{}
	if got := empty.TotalFollowers(); got != 0 {
		t.Errorf("Expected 0 followers for empty profile, got %d", got)
	}
}

func TestPrimaryCategory(t *testing.T) {
	creator := &CreatorProfile{
		ProfessionalInfo: ProfessionalInfo{Categories: []string{"Fashion", "Lifestyle"}},
	}
	if got := creator.PrimaryCategory(); got != "Fashion" {
		t.Errorf("Expected primary category Fashion, got %s", got)
	}

	empty := &CreatorProfile{}
	if got := empty.PrimaryCategory(); got != "" {
		t.Errorf("Expected empty primary category, got %s", got)
	}
}
