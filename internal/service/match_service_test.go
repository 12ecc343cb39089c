package service

import (
	"context"
	"strings"
	"testing"

	"marketplace-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type fakeBrandSource struct {
	brand *models.BrandProfile
}

func (f *fakeBrandSource) FindByUserID(_ context.Context, _ string) (*models.BrandProfile, error) {
	if f.brand == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.brand, nil
}

type fakePreferenceSource struct {
	pref *models.BrandPreference
}

func (f *fakePreferenceSource) FindByUserID(_ context.Context, _ string) (*models.BrandPreference, error) {
	if f.pref == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.pref, nil
}

type fakePublishedSource struct {
	creators []*models.CreatorProfile
	calls    int
}

func (f *fakePublishedSource) FindAllPublished(_ context.Context) ([]*models.CreatorProfile, error) {
	f.calls++
	return f.creators, nil
}

type fakeMetricsSource struct {
	metrics map[string]*models.CreatorMetrics
}

func (f *fakeMetricsSource) FindByCreatorUserIDs(_ context.Context, _ []string) (map[string]*models.CreatorMetrics, error) {
	if f.metrics == nil {
		return map[string]*models.CreatorMetrics{}, nil
	}
	return f.metrics, nil
}

type fakeCampaignSource struct {
	campaign *models.Campaign
}

func (f *fakeCampaignSource) FindByID(_ context.Context, _ bson.ObjectID) (*models.Campaign, error) {
	if f.campaign == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.campaign, nil
}

func matchTestCreator(seq byte, userID, category string) *models.CreatorProfile {
	var id bson.ObjectID
	id[11] = seq
	return &models.CreatorProfile{
		ID:     id,
		UserID: userID,
		ProfessionalInfo: models.ProfessionalInfo{
			Categories: []string{category},
		},
	}
}

func TestMatchCreatorsMissingBrandReturnsEmpty(t *testing.T) {
	creators := &fakePublishedSource{creators: []*models.CreatorProfile{
		matchTestCreator(1, "creator-1", "Fashion"),
	}}
	svc := NewMatchService(&fakeBrandSource{}, &fakePreferenceSource{}, creators, &fakeMetricsSource{}, &fakeCampaignSource{})

	resp, err := svc.MatchCreators(context.Background(), "brand-1", "")
	if err != nil {
		t.Fatalf("Expected no error for missing brand profile, got %v", err)
	}
	if resp == nil || resp.Matches == nil {
		t.Fatal("Expected a non-nil empty match list")
	}
	if len(resp.Matches) != 0 {
		t.Errorf("Expected 0 matches, got %d", len(resp.Matches))
	}
	if creators.calls != 0 {
		t.Errorf("Expected no creator query without a brand profile, got %d calls", creators.calls)
	}
}

func TestMatchCreatorsNoPreferenceSkipsScoring(t *testing.T) {
	brand := &models.BrandProfile{UserID: "brand-1", Industry: "Fashion"}
	creators := &fakePublishedSource{creators: []*models.CreatorProfile{
		matchTestCreator(1, "creator-1", "Fashion"),
	}}
	svc := NewMatchService(&fakeBrandSource{brand: brand}, &fakePreferenceSource{}, creators, &fakeMetricsSource{}, &fakeCampaignSource{})

	resp, err := svc.MatchCreators(context.Background(), "brand-1", "")
	if err != nil {
		t.Fatalf("Expected no error without a preference, got %v", err)
	}
	if resp == nil || resp.Matches == nil {
		t.Fatal("Expected a non-nil empty match list")
	}
	if len(resp.Matches) != 0 {
		t.Errorf("Expected 0 matches without a preference, got %d", len(resp.Matches))
	}
	if creators.calls != 0 {
		t.Errorf("Expected no creator query without a preference, got %d calls", creators.calls)
	}
}

func TestMatchCreatorsSortIsStableAndRepeatable(t *testing.T) {
	brand := &models.BrandProfile{UserID: "brand-1", Industry: "Fashion"}
	pref := &models.BrandPreference{UserID: "brand-1", Category: "Fashion"}
	// Two identical non-matching creators bracket a matching one: the match
	// must sort first and the equal-score pair must keep insertion order.
	creators := &fakePublishedSource{creators: []*models.CreatorProfile{
		matchTestCreator(1, "creator-1", "Tech"),
		matchTestCreator(2, "creator-2", "Fashion"),
		matchTestCreator(3, "creator-3", "Tech"),
	}}
	svc := NewMatchService(&fakeBrandSource{brand: brand}, &fakePreferenceSource{pref: pref}, creators, &fakeMetricsSource{}, &fakeCampaignSource{})

	first, err := svc.MatchCreators(context.Background(), "brand-1", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(first.Matches) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(first.Matches))
	}
	if first.Matches[0].Profile.UserID != "creator-2" {
		t.Errorf("Expected the category match first, got %s", first.Matches[0].Profile.UserID)
	}
	if first.Matches[1].Profile.UserID != "creator-1" || first.Matches[2].Profile.UserID != "creator-3" {
		t.Errorf("Expected equal scores to keep insertion order, got %s then %s",
			first.Matches[1].Profile.UserID, first.Matches[2].Profile.UserID)
	}
	for i := 1; i < len(first.Matches); i++ {
		if first.Matches[i].Score > first.Matches[i-1].Score {
			t.Errorf("Expected non-increasing scores, got %d before %d",
				first.Matches[i-1].Score, first.Matches[i].Score)
		}
	}

	second, err := svc.MatchCreators(context.Background(), "brand-1", "")
	if err != nil {
		t.Fatalf("Expected no error on repeat, got %v", err)
	}
	for i := range first.Matches {
		if first.Matches[i].CreatorID != second.Matches[i].CreatorID {
			t.Errorf("Expected identical ordering across calls at position %d: %s vs %s",
				i, first.Matches[i].CreatorID, second.Matches[i].CreatorID)
		}
		if first.Matches[i].Score != second.Matches[i].Score {
			t.Errorf("Expected identical scores across calls at position %d: %d vs %d",
				i, first.Matches[i].Score, second.Matches[i].Score)
		}
	}
}

func TestMatchCreatorsRejectsForeignCampaign(t *testing.T) {
	brand := &models.BrandProfile{UserID: "brand-1", Industry: "Fashion"}
	pref := &models.BrandPreference{UserID: "brand-1", Category: "Fashion"}
	var campaignID bson.ObjectID
	campaignID[11] = 9
	campaigns := &fakeCampaignSource{campaign: &models.Campaign{ID: campaignID, BrandUserID: "brand-2"}}
	svc := NewMatchService(&fakeBrandSource{brand: brand}, &fakePreferenceSource{pref: pref}, &fakePublishedSource{}, &fakeMetricsSource{}, campaigns)

	_, err := svc.MatchCreators(context.Background(), "brand-1", campaignID.Hex())
	if err == nil {
		t.Fatal("Expected error for a campaign owned by another brand")
	}
	if !strings.Contains(err.Error(), "does not belong") {
		t.Errorf("Expected ownership error, got %v", err)
	}
}
