// Package recommendation builds best-effort creator suggestion lists for
// brands: a query-driven generator with a greedy diversity pass, fronted by a
// single policy that owns the cache and the preference-based fast path.
package recommendation

import (
	"context"
	"log"

	"marketplace-service/internal/config"
	"marketplace-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Per-query limits. The four queries deliberately over-fetch relative to the
// final list size so the diversity filter has material to choose from.
const (
	topRatedLimit = 3
	trendingLimit = 3
	diverseLimit  = 2
	recentLimit   = 2
)

// CreatorSource is the slice of the creator repository the generator needs.
type CreatorSource interface {
	FindPublished(ctx context.Context, extra bson.M, sort bson.D, limit int64) ([]*models.CreatorProfile, error)
}

type Generator struct {
	creators CreatorSource
	cfg      config.RecommendationConfig
}

func NewGenerator(creators CreatorSource, cfg config.RecommendationConfig) *Generator {
	return &Generator{
		creators: creators,
		cfg:      cfg,
	}
}

// Generate produces up to MaxRecommendations creator IDs for a brand. Any
// query failure is logged and collapses to an empty list: callers must treat
// "no recommendations" as a valid, non-exceptional outcome.
func (g *Generator) Generate(ctx context.Context, brand *models.BrandProfile) []bson.ObjectID {
	candidates, err := g.collect(ctx, brand)
	if err != nil {
		log.Printf("Recommendation generation failed for brand %s: %v", brandUserID(brand), err)
		return []bson.ObjectID{}
	}

	deduped := dedupe(candidates)
	selected := g.diversify(deduped)

	ids := make([]bson.ObjectID, 0, len(selected))
	for _, c := range selected {
		ids = append(ids, c.ID)
	}
	return ids
}

// collect runs the four independent queries and concatenates their results
// in priority order: top-rated entries win any later dedupe collision.
func (g *Generator) collect(ctx context.Context, brand *models.BrandProfile) ([]*models.CreatorProfile, error) {
	base := g.baseFilter(brand)

	topRated, err := g.creators.FindPublished(ctx, base,
		bson.D{{Key: "metrics.ratingAverage", Value: -1}, {Key: "metrics.ratingCount", Value: -1}}, topRatedLimit)
	if err != nil {
		return nil, err
	}

	trending, err := g.creators.FindPublished(ctx, base,
		bson.D{{Key: "metrics.profileViews", Value: -1}}, trendingLimit)
	if err != nil {
		return nil, err
	}

	diverse, err := g.creators.FindPublished(ctx,
		bson.M{"professionalInfo.categories": bson.M{"$in": g.cfg.DiverseCategories}},
		bson.D{{Key: "metrics.ratingAverage", Value: -1}}, diverseLimit)
	if err != nil {
		return nil, err
	}

	recent, err := g.creators.FindPublished(ctx, base,
		bson.D{{Key: "metadata.createdAt", Value: -1}}, recentLimit)
	if err != nil {
		return nil, err
	}

	candidates := make([]*models.CreatorProfile, 0, len(topRated)+len(trending)+len(diverse)+len(recent))
	candidates = append(candidates, topRated...)
	candidates = append(candidates, trending...)
	candidates = append(candidates, diverse...)
	candidates = append(candidates, recent...)
	return candidates, nil
}

// baseFilter narrows to the brand's industry when it has one; otherwise it
// widens to the popular-category allowlist or a minimum rating.
func (g *Generator) baseFilter(brand *models.BrandProfile) bson.M {
	if brand != nil && brand.Industry != "" {
		return bson.M{"$or": []bson.M{
			{"professionalInfo.categories": brand.Industry},
			{"professionalInfo.tags": brand.Industry},
		}}
	}
	return bson.M{"$or": []bson.M{
		{"professionalInfo.categories": bson.M{"$in": g.cfg.PopularCategories}},
		{"metrics.ratingAverage": bson.M{"$gte": g.cfg.MinRatingFallback}},
	}}
}

// dedupe keeps the first occurrence of each creator ID.
func dedupe(creators []*models.CreatorProfile) []*models.CreatorProfile {
	seen := make(map[bson.ObjectID]struct{}, len(creators))
	result := make([]*models.CreatorProfile, 0, len(creators))
	for _, c := range creators {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		result = append(result, c)
	}
	return result
}

// diversify applies the two-pass greedy filter. Pass one admits a creator
// only while it introduces an unseen primary category or an unseen price
// bracket, so no two pass-one picks share both. Pass two fills the remaining
// slots in original order.
func (g *Generator) diversify(creators []*models.CreatorProfile) []*models.CreatorProfile {
	limit := g.cfg.MaxRecommendations
	if limit <= 0 || len(creators) <= 1 {
		if len(creators) > limit && limit > 0 {
			return creators[:limit]
		}
		return creators
	}

	seenCategory := make(map[string]struct{})
	seenBracket := make(map[int]struct{})
	admitted := make(map[bson.ObjectID]struct{})
	result := make([]*models.CreatorProfile, 0, limit)

	for _, c := range creators {
		if len(result) >= limit {
			break
		}
		category := c.PrimaryCategory()
		bracket := g.priceBracket(c.StandardPrice())

		_, catSeen := seenCategory[category]
		_, brSeen := seenBracket[bracket]
		if catSeen && brSeen {
			continue
		}

		seenCategory[category] = struct{}{}
		seenBracket[bracket] = struct{}{}
		admitted[c.ID] = struct{}{}
		result = append(result, c)
	}

	for _, c := range creators {
		if len(result) >= limit {
			break
		}
		if _, ok := admitted[c.ID]; ok {
			continue
		}
		admitted[c.ID] = struct{}{}
		result = append(result, c)
	}

	return result
}

// priceBracket maps a price onto the configured thresholds: 0 for the lowest
// bracket up to len(thresholds) for the open-ended top one.
func (g *Generator) priceBracket(price float64) int {
	for i, threshold := range g.cfg.PriceBrackets {
		if price < threshold {
			return i
		}
	}
	return len(g.cfg.PriceBrackets)
}

func brandUserID(brand *models.BrandProfile) string {
	if brand == nil {
		return ""
	}
	return brand.UserID
}
