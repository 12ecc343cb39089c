package matching

import (
	"testing"
	"time"

	"marketplace-service/internal/models"
)

func fullPreference() *models.BrandPreference {
	return &models.BrandPreference{
		UserID:      "brand-1",
		Category:    "Fashion",
		BrandValues: []string{"sustainability"},
		Demographics: models.Demographics{
			AgeRange:  "18-24",
			Gender:    "female",
			Locations: []string{"Hanoi"},
		},
		Budget:             &models.BudgetRange{Min: 100, Max: 5000},
		Platforms:          []string{"instagram"},
		Subcategories:      []string{"streetwear"},
		Expertise:          []string{"styling"},
		ContentTypes:       []string{"video"},
		EventTypes:         []string{"product-launch"},
		TravelWillingness:  "international",
		MinExperienceYears: 2,
		TargetAudience:     &models.AudienceProfile{Gender: "female", AgeRange: "18-24"},
	}
}

func matchingCreator() *models.CreatorProfile {
	return &models.CreatorProfile{
		UserID: "creator-1",
		PersonalInfo: models.CreatorPersonalInfo{
			FirstName: "Linh",
			LastName:  "Tran",
			Location:  "Hanoi",
			Gender:    "female",
			AgeGroup:  "18-24",
		},
		ProfessionalInfo: models.ProfessionalInfo{
			Categories:      []string{"Fashion"},
			Subcategories:   []string{"Streetwear"},
			Tags:            []string{"Sustainability"},
			Expertise:       []string{"Styling"},
			ContentTypes:    []string{"Video"},
			ExperienceYears: 5,
			Audience:        models.AudienceProfile{Gender: "Female", AgeRange: "18-24"},
			EventAvailability: models.EventAvailability{
				AvailableForEvents: true,
				EventTypes:         []string{"Product-Launch"},
				TravelWillingness:  "International",
			},
		},
		SocialProfiles: []models.SocialProfile{
			{Platform: "Instagram", Handle: "linh", Followers: 50000},
		},
		Pricing: models.Pricing{
			Standard: &models.PricingPackage{Price: 1500},
			Premium:  &models.PricingPackage{Price: 4000},
		},
		Metrics: models.CreatorProfileMetrics{Completeness: 90},
	}
}

func TestScoreNilInputs(t *testing.T) {
	result := Score(nil, nil, nil, nil, nil)
	if result.Score != 0 {
		t.Errorf("Expected score 0 for nil creator, got %d", result.Score)
	}
	if len(result.Reasons) != 0 {
		t.Errorf("Expected no reasons for nil creator, got %d", len(result.Reasons))
	}

	// A creator with everything else nil must not panic and must score from
	// profile-only predicates at most.
	result = Score(nil, nil, nil, matchingCreator(), nil)
	if result.Score < 0 {
		t.Errorf("Expected non-negative score, got %d", result.Score)
	}
}

func TestScoreNeverNegative(t *testing.T) {
	empty := &models.CreatorProfile{}
	result := Score(&models.BrandProfile{}, &models.BrandPreference{}, &models.Campaign{}, empty, &models.CreatorMetrics{})
	if result.Score < 0 {
		t.Errorf("Expected non-negative score for empty creator, got %d", result.Score)
	}
	if result.Score != 0 {
		t.Errorf("Expected zero score for empty creator, got %d", result.Score)
	}
}

func TestScoreReasonsMatchPredicates(t *testing.T) {
	pref := fullPreference()
	creator := matchingCreator()
	metrics := &models.CreatorMetrics{
		CreatorUserID:     "creator-1",
		Followers:         150000,
		AverageRating:     4.8,
		CompletedProjects: 60,
		RepeatClientRate:  0.4,
		ResponseRate:      0.95,
		TotalEarnings:     200000,
		Tier:              models.TierGold,
		LastActiveAt:      time.Now().Unix(),
	}
	brand := &models.BrandProfile{UserID: "brand-1", Industry: "Fashion"}

	result := Score(brand, pref, nil, creator, metrics)

	if result.Score <= 0 {
		t.Fatalf("Expected positive score for a strong match, got %d", result.Score)
	}
	if len(result.Reasons) == 0 {
		t.Fatal("Expected reasons for a strong match, got none")
	}

	// Every satisfied predicate contributes exactly one reason, so dropping
	// an input must drop both points and a reason together.
	withoutMetrics := Score(brand, pref, nil, creator, nil)
	if withoutMetrics.Score >= result.Score {
		t.Errorf("Expected lower score without metrics: %d vs %d", withoutMetrics.Score, result.Score)
	}
	if len(withoutMetrics.Reasons) >= len(result.Reasons) {
		t.Errorf("Expected fewer reasons without metrics: %d vs %d", len(withoutMetrics.Reasons), len(result.Reasons))
	}
}

func TestScoreCaseInsensitiveMatching(t *testing.T) {
	pref := &models.BrandPreference{Category: "fashion"}
	creator := &models.CreatorProfile{
		ProfessionalInfo: models.ProfessionalInfo{Categories: []string{"FASHION"}},
	}

	result := Score(nil, pref, nil, creator, nil)
	if result.Score != pointsCategoryMatch {
		t.Errorf("Expected category match to be case insensitive, got score %d", result.Score)
	}
}

func TestScoreMegaInfluencerMargin(t *testing.T) {
	creator := matchingCreator()
	pref := fullPreference()

	mega := &models.CreatorMetrics{Followers: 1_500_000}
	nobody := &models.CreatorMetrics{Followers: 0}

	megaResult := Score(nil, pref, nil, creator, mega)
	nobodyResult := Score(nil, pref, nil, creator, nobody)

	if diff := megaResult.Score - nobodyResult.Score; diff < 10 {
		t.Errorf("Expected mega influencer to outscore zero-follower twin by at least 10, got %d", diff)
	}
}

func TestScoreFollowerTiersAreExclusive(t *testing.T) {
	creator := &models.CreatorProfile{}
	testCases := []struct {
		followers int64
		expected  int
	}{
		{2_000_000, pointsMegaFollowers},
		{500_000, pointsMacroFollowers},
		{50_000, pointsMidFollowers},
		{5_000, 0},
	}

	for _, tc := range testCases {
		result := Score(nil, nil, nil, creator, &models.CreatorMetrics{Followers: tc.followers})
		if result.Score != tc.expected {
			t.Errorf("Followers %d: expected score %d, got %d", tc.followers, tc.expected, result.Score)
		}
	}
}

func TestScoreBudgetBoundaries(t *testing.T) {
	creator := &models.CreatorProfile{
		Pricing: models.Pricing{Standard: &models.PricingPackage{Price: 5000}},
	}

	inBudget := &models.BrandPreference{Budget: &models.BudgetRange{Min: 1000, Max: 5000}}
	result := Score(nil, inBudget, nil, creator, nil)
	if result.Score != pointsBudgetFit {
		t.Errorf("Expected budget fit at the inclusive upper bound, got score %d", result.Score)
	}

	overBudget := &models.BrandPreference{Budget: &models.BudgetRange{Min: 1000, Max: 4999}}
	result = Score(nil, overBudget, nil, creator, nil)
	if result.Score != 0 {
		t.Errorf("Expected no budget fit above the limit, got score %d", result.Score)
	}

	// A creator with no pricing never fits any budget.
	result = Score(nil, inBudget, nil, &models.CreatorProfile{}, nil)
	if result.Score != 0 {
		t.Errorf("Expected no budget fit without pricing, got score %d", result.Score)
	}
}

func TestScoreCampaignPredicates(t *testing.T) {
	creator := &models.CreatorProfile{
		ProfessionalInfo: models.ProfessionalInfo{ContentTypes: []string{"video"}},
		Pricing:          models.Pricing{Standard: &models.PricingPackage{Price: 2000}},
	}
	campaign := &models.Campaign{
		Budget:       &models.BudgetRange{Min: 1000, Max: 3000},
		ContentTypes: []string{"Video"},
	}

	result := Score(nil, nil, campaign, creator, nil)
	expected := pointsCampaignBudget + pointsCampaignContent
	if result.Score != expected {
		t.Errorf("Expected campaign predicates to score %d, got %d", expected, result.Score)
	}
	if len(result.Reasons) != 2 {
		t.Errorf("Expected 2 reasons, got %d", len(result.Reasons))
	}
}

func TestScoreIsPure(t *testing.T) {
	pref := fullPreference()
	creator := matchingCreator()

	first := Score(nil, pref, nil, creator, nil)
	second := Score(nil, pref, nil, creator, nil)

	if first.Score != second.Score {
		t.Errorf("Expected identical scores on repeat calls, got %d and %d", first.Score, second.Score)
	}
	if len(first.Reasons) != len(second.Reasons) {
		t.Errorf("Expected identical reasons on repeat calls, got %d and %d", len(first.Reasons), len(second.Reasons))
	}
}
