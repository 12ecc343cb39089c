package recommendation

import (
	"context"
	"testing"
	"time"

	"marketplace-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type fakeCreatorStore struct {
	fakeCreatorSource
	byID map[bson.ObjectID]*models.CreatorProfile
}

func (f *fakeCreatorStore) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]*models.CreatorProfile, error) {
	result := make([]*models.CreatorProfile, 0, len(ids))
	for _, id := range ids {
		if c, ok := f.byID[id]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

type fakePreferenceSource struct {
	pref *models.BrandPreference
}

func (f *fakePreferenceSource) FindByUserID(ctx context.Context, userID string) (*models.BrandPreference, error) {
	if f.pref == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.pref, nil
}

type fakeBrandSource struct {
	brand *models.BrandProfile
}

func (f *fakeBrandSource) FindByUserID(ctx context.Context, userID string) (*models.BrandProfile, error) {
	if f.brand == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.brand, nil
}

type fakeRecommendationStore struct {
	rec     *models.BrandRecommendation
	upserts int
}

func (f *fakeRecommendationStore) FindByBrandUserID(ctx context.Context, brandUserID string) (*models.BrandRecommendation, error) {
	if f.rec == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.rec, nil
}

func (f *fakeRecommendationStore) Upsert(ctx context.Context, brandUserID string, creatorIDs []bson.ObjectID) (*models.BrandRecommendation, error) {
	f.upserts++
	f.rec = &models.BrandRecommendation{
		BrandUserID: brandUserID,
		CreatorIDs:  creatorIDs,
		GeneratedAt: time.Now().Unix(),
	}
	return f.rec, nil
}

func newTestPolicy(creators []*models.CreatorProfile, pref *models.BrandPreference, rec *models.BrandRecommendation) (*Policy, *fakeRecommendationStore) {
	store := &fakeCreatorStore{
		fakeCreatorSource: fakeCreatorSource{creators: creators},
		byID:              make(map[bson.ObjectID]*models.CreatorProfile),
	}
	for _, c := range creators {
		store.byID[c.ID] = c
	}

	recs := &fakeRecommendationStore{rec: rec}
	cfg := testConfig()
	generator := NewGenerator(store, cfg)
	policy := NewPolicy(
		generator,
		&fakeBrandSource{brand: &models.BrandProfile{UserID: "brand-1", Industry: "Fashion"}},
		&fakePreferenceSource{pref: pref},
		store,
		recs,
		nil,
		cfg,
	)
	return policy, recs
}

func TestPolicyGeneratesWhenNothingStored(t *testing.T) {
	creators := []*models.CreatorProfile{
		testCreator(1, "Fashion", 5000),
		testCreator(2, "Food", 20000),
	}
	policy, recs := newTestPolicy(creators, nil, nil)

	result, err := policy.Get(context.Background(), "brand-1", GetOptions{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result) == 0 {
		t.Fatal("Expected generated recommendations, got none")
	}
	if recs.upserts != 1 {
		t.Errorf("Expected the generated list to be persisted once, got %d upserts", recs.upserts)
	}
}

func TestPolicyServesStoredListWithoutRegenerating(t *testing.T) {
	creators := []*models.CreatorProfile{
		testCreator(1, "Fashion", 5000),
		testCreator(2, "Food", 20000),
	}
	stored := &models.BrandRecommendation{
		BrandUserID: "brand-1",
		CreatorIDs:  []bson.ObjectID{creators[1].ID},
		GeneratedAt: time.Now().Unix(),
	}
	policy, recs := newTestPolicy(creators, nil, stored)

	result, err := policy.Get(context.Background(), "brand-1", GetOptions{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result) != 1 || result[0].UserID != "creator-2" {
		t.Errorf("Expected exactly the stored creator, got %d entries", len(result))
	}
	if recs.upserts != 0 {
		t.Errorf("Expected no regeneration for a stored list, got %d upserts", recs.upserts)
	}
}

func TestPolicyForceRefreshOverwritesStoredList(t *testing.T) {
	creators := []*models.CreatorProfile{
		testCreator(1, "Fashion", 5000),
		testCreator(2, "Food", 20000),
	}
	stored := &models.BrandRecommendation{
		BrandUserID: "brand-1",
		CreatorIDs:  []bson.ObjectID{creators[0].ID},
		GeneratedAt: 1,
	}
	policy, recs := newTestPolicy(creators, nil, stored)

	_, err := policy.Get(context.Background(), "brand-1", GetOptions{ForceRefresh: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if recs.upserts != 1 {
		t.Errorf("Expected refresh to persist a new list, got %d upserts", recs.upserts)
	}
	if recs.rec.GeneratedAt == 1 {
		t.Error("Expected the stored timestamp to be replaced on refresh")
	}
}

func TestPolicyPreferenceWinsOverStoredList(t *testing.T) {
	creators := []*models.CreatorProfile{
		testCreator(1, "Fashion", 5000),
		testCreator(2, "Food", 20000),
	}
	stored := &models.BrandRecommendation{
		BrandUserID: "brand-1",
		CreatorIDs:  []bson.ObjectID{creators[1].ID},
		GeneratedAt: time.Now().Unix(),
	}
	pref := &models.BrandPreference{UserID: "brand-1", Category: "Fashion"}
	policy, recs := newTestPolicy(creators, pref, stored)

	result, err := policy.Get(context.Background(), "brand-1", GetOptions{UsePreference: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result) == 0 {
		t.Fatal("Expected the live preference list, got nothing")
	}
	if recs.upserts != 0 {
		t.Errorf("Expected the smart path to leave the stored list alone, got %d upserts", recs.upserts)
	}
}

func TestPolicySmartFallsBackWithoutPreference(t *testing.T) {
	creators := []*models.CreatorProfile{
		testCreator(1, "Fashion", 5000),
	}
	stored := &models.BrandRecommendation{
		BrandUserID: "brand-1",
		CreatorIDs:  []bson.ObjectID{creators[0].ID},
		GeneratedAt: time.Now().Unix(),
	}
	policy, recs := newTestPolicy(creators, nil, stored)

	result, err := policy.Get(context.Background(), "brand-1", GetOptions{UsePreference: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result) != 1 {
		t.Errorf("Expected the stored list as fallback, got %d entries", len(result))
	}
	if recs.upserts != 0 {
		t.Errorf("Expected no regeneration, got %d upserts", recs.upserts)
	}
}

func TestPolicyGeneratedAt(t *testing.T) {
	policy, recs := newTestPolicy(nil, nil, nil)

	if ts := policy.GeneratedAt(context.Background(), "brand-1"); !ts.IsZero() {
		t.Errorf("Expected zero time without a stored list, got %v", ts)
	}

	recs.rec = &models.BrandRecommendation{
		BrandUserID: "brand-1",
		GeneratedAt: 1700000000,
	}
	if ts := policy.GeneratedAt(context.Background(), "brand-1"); ts.Unix() != 1700000000 {
		t.Errorf("Expected stored timestamp, got %v", ts)
	}
}
