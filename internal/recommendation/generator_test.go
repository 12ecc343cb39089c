package recommendation

import (
	"context"
	"fmt"
	"testing"

	"marketplace-service/internal/config"
	"marketplace-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func testConfig() config.RecommendationConfig {
	return config.RecommendationConfig{
		MaxRecommendations: 10,
		SmartListLimit:     8,
		MinRatingFallback:  4.0,
		PopularCategories:  []string{"Fashion", "Lifestyle", "Technology", "Beauty", "Fitness"},
		DiverseCategories:  []string{"Food", "Travel", "Gaming", "Music", "Education"},
		PriceBrackets:      []float64{10000, 30000, 60000},
	}
}

// fakeCreatorSource returns the same fixed slice for every query, which is
// the worst case for the dedupe pass.
type fakeCreatorSource struct {
	creators []*models.CreatorProfile
	err      error
	calls    int
}

func (f *fakeCreatorSource) FindPublished(ctx context.Context, extra bson.M, sort bson.D, limit int64) ([]*models.CreatorProfile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if int64(len(f.creators)) > limit {
		return f.creators[:limit], nil
	}
	return f.creators, nil
}

func testCreator(seq byte, category string, price float64) *models.CreatorProfile {
	var id bson.ObjectID
	id[11] = seq
	return &models.CreatorProfile{
		ID:     id,
		UserID: fmt.Sprintf("creator-%d", seq),
		ProfessionalInfo: models.ProfessionalInfo{
			Categories: []string{category},
		},
		Pricing: models.Pricing{
			Standard: &models.PricingPackage{Price: price},
		},
	}
}

func TestGenerateDeduplicates(t *testing.T) {
	source := &fakeCreatorSource{
		creators: []*models.CreatorProfile{
			testCreator(1, "Fashion", 5000),
			testCreator(2, "Food", 20000),
			testCreator(3, "Travel", 50000),
		},
	}
	g := NewGenerator(source, testConfig())

	ids := g.Generate(context.Background(), &models.BrandProfile{UserID: "brand-1", Industry: "Fashion"})

	if source.calls != 4 {
		t.Errorf("Expected 4 candidate queries, got %d", source.calls)
	}

	seen := make(map[bson.ObjectID]struct{})
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			t.Errorf("Duplicate creator ID in recommendations: %s", id.Hex())
		}
		seen[id] = struct{}{}
	}
	if len(ids) != 3 {
		t.Errorf("Expected 3 unique creators, got %d", len(ids))
	}
}

func TestGenerateRespectsLimit(t *testing.T) {
	creators := make([]*models.CreatorProfile, 0, 15)
	for i := byte(1); i <= 15; i++ {
		creators = append(creators, testCreator(i, fmt.Sprintf("Category-%d", i), float64(i)*1000))
	}
	source := &fakeCreatorSource{creators: creators}
	g := NewGenerator(source, testConfig())

	ids := g.Generate(context.Background(), &models.BrandProfile{UserID: "brand-1"})

	if len(ids) > 10 {
		t.Errorf("Expected at most 10 recommendations, got %d", len(ids))
	}
}

func TestGenerateErrorReturnsEmptyList(t *testing.T) {
	source := &fakeCreatorSource{err: fmt.Errorf("connection reset")}
	g := NewGenerator(source, testConfig())

	ids := g.Generate(context.Background(), &models.BrandProfile{UserID: "brand-1"})

	if ids == nil {
		t.Fatal("Expected empty slice on query failure, got nil")
	}
	if len(ids) != 0 {
		t.Errorf("Expected empty list on query failure, got %d entries", len(ids))
	}
}

func TestDiversifyFirstPassInvariant(t *testing.T) {
	cfg := testConfig()
	g := NewGenerator(nil, cfg)

	// Three creators in the same category and bracket: only the first may be
	// admitted in pass one, and pass two backfills the rest.
	creators := []*models.CreatorProfile{
		testCreator(1, "Fashion", 5000),
		testCreator(2, "Fashion", 5000),
		testCreator(3, "Fashion", 5000),
		testCreator(4, "Food", 20000),
	}

	result := g.diversify(creators)
	if len(result) != 4 {
		t.Fatalf("Expected all 4 creators within the limit, got %d", len(result))
	}

	// The second admitted entry must differ from the first in category or
	// bracket: same-category same-bracket twins are deferred to pass two.
	if result[1].UserID != "creator-4" {
		t.Errorf("Expected the category-diverse creator second, got %s", result[1].UserID)
	}
}

func TestDiversifyNoPairSharesCategoryAndBracket(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRecommendations = 3
	g := NewGenerator(nil, cfg)

	creators := []*models.CreatorProfile{
		testCreator(1, "Fashion", 5000),
		testCreator(2, "Fashion", 5000),  // same pair, must be skipped in pass one
		testCreator(3, "Food", 5000),     // new category, seen bracket
		testCreator(4, "Fashion", 20000), // seen category, new bracket
		testCreator(5, "Travel", 50000),
	}

	result := g.diversify(creators)
	if len(result) != 3 {
		t.Fatalf("Expected 3 creators, got %d", len(result))
	}

	type pair struct {
		category string
		bracket  int
	}
	seen := make(map[pair]string)
	for _, c := range result {
		p := pair{c.PrimaryCategory(), g.priceBracket(c.StandardPrice())}
		if other, dup := seen[p]; dup {
			t.Errorf("Creators %s and %s share category %q and bracket %d", other, c.UserID, p.category, p.bracket)
		}
		seen[p] = c.UserID
	}
}

func TestPriceBracket(t *testing.T) {
	g := NewGenerator(nil, testConfig())

	testCases := []struct {
		price    float64
		expected int
	}{
		{0, 0},
		{9999, 0},
		{10000, 1},
		{29999, 1},
		{30000, 2},
		{59999, 2},
		{60000, 3},
		{1000000, 3},
	}

	for _, tc := range testCases {
		if got := g.priceBracket(tc.price); got != tc.expected {
			t.Errorf("priceBracket(%.0f): expected %d, got %d", tc.price, tc.expected, got)
		}
	}
}
