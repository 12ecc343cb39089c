package recommendation

import (
	"context"
	"errors"
	"log"
	"time"

	"marketplace-service/internal/config"
	"marketplace-service/internal/models"
	"marketplace-service/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// CreatorStore extends CreatorSource with the hydration lookup the policy
// needs.
type CreatorStore interface {
	CreatorSource
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]*models.CreatorProfile, error)
}

type PreferenceSource interface {
	FindByUserID(ctx context.Context, userID string) (*models.BrandPreference, error)
}

type BrandSource interface {
	FindByUserID(ctx context.Context, userID string) (*models.BrandProfile, error)
}

type RecommendationStore interface {
	FindByBrandUserID(ctx context.Context, brandUserID string) (*models.BrandRecommendation, error)
	Upsert(ctx context.Context, brandUserID string, creatorIDs []bson.ObjectID) (*models.BrandRecommendation, error)
}

type GetOptions struct {
	// ForceRefresh regenerates and persists the list even when a cached one
	// exists.
	ForceRefresh bool
	// UsePreference serves a live preference-filtered query when the brand
	// has a preference, leaving the persisted recommendation untouched.
	UsePreference bool
}

// Policy is the single entry point for creator suggestions. All read paths
// (auto, refresh, smart) go through Get so callers cannot observe
// inconsistent strategies: a preference, when requested and present, always
// wins over the generated cache.
type Policy struct {
	generator *Generator
	brands    BrandSource
	prefs     PreferenceSource
	creators  CreatorStore
	recs      RecommendationStore
	cache     *repository.CacheRepository
	cfg       config.RecommendationConfig
}

func NewPolicy(
	generator *Generator,
	brands BrandSource,
	prefs PreferenceSource,
	creators CreatorStore,
	recs RecommendationStore,
	cache *repository.CacheRepository,
	cfg config.RecommendationConfig,
) *Policy {
	return &Policy{
		generator: generator,
		brands:    brands,
		prefs:     prefs,
		creators:  creators,
		recs:      recs,
		cache:     cache,
		cfg:       cfg,
	}
}

// Get returns hydrated creator suggestions for a brand. Absence of any input
// (brand, preference, cached recommendation) is a valid state, never an
// error; only infrastructure failures propagate.
func (p *Policy) Get(ctx context.Context, brandUserID string, opts GetOptions) ([]*models.CreatorProfile, error) {
	if opts.UsePreference {
		pref, err := p.prefs.FindByUserID(ctx, brandUserID)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		if pref != nil {
			return p.preferenceList(ctx, pref)
		}
		// No preference recorded: fall through to the cached/generated path.
	}

	if opts.ForceRefresh {
		return p.regenerate(ctx, brandUserID)
	}

	rec, err := p.recs.FindByBrandUserID(ctx, brandUserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return p.regenerate(ctx, brandUserID)
		}
		return nil, err
	}

	return p.hydrate(ctx, brandUserID, rec.CreatorIDs)
}

// preferenceList serves the live, score-free preference query: category, tag
// or platform match, best-rated first. The persisted recommendation is not
// consulted or modified.
func (p *Policy) preferenceList(ctx context.Context, pref *models.BrandPreference) ([]*models.CreatorProfile, error) {
	var conditions []bson.M
	if pref.Category != "" {
		conditions = append(conditions, bson.M{"professionalInfo.categories": pref.Category})
	}
	if len(pref.BrandValues) > 0 {
		conditions = append(conditions, bson.M{"professionalInfo.tags": bson.M{"$in": pref.BrandValues}})
	}
	if len(pref.Platforms) > 0 {
		conditions = append(conditions, bson.M{"socialProfiles.platform": bson.M{"$in": pref.Platforms}})
	}

	extra := bson.M{}
	if len(conditions) > 0 {
		extra["$or"] = conditions
	}

	sort := bson.D{
		{Key: "metrics.ratingAverage", Value: -1},
		{Key: "metrics.ratingCount", Value: -1},
	}

	return p.creators.FindPublished(ctx, extra, sort, int64(p.cfg.SmartListLimit))
}

// regenerate runs the generator, overwrites the persisted list and drops the
// hydration cache.
func (p *Policy) regenerate(ctx context.Context, brandUserID string) ([]*models.CreatorProfile, error) {
	brand, err := p.brands.FindByUserID(ctx, brandUserID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	ids := p.generator.Generate(ctx, brand)

	if _, err := p.recs.Upsert(ctx, brandUserID, ids); err != nil {
		return nil, err
	}
	p.invalidate(ctx, brandUserID)

	return p.creators.FindByIDs(ctx, ids)
}

func (p *Policy) hydrate(ctx context.Context, brandUserID string, ids []bson.ObjectID) ([]*models.CreatorProfile, error) {
	if p.cache != nil {
		var cached []*models.CreatorProfile
		if err := p.cache.GetStruct(ctx, hydrationKey(brandUserID), &cached); err == nil {
			return cached, nil
		}
	}

	creators, err := p.creators.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.SaveStruct(ctx, hydrationKey(brandUserID), creators, p.cfg.CacheTTL); err != nil {
			log.Printf("Failed to cache recommendations for brand %s: %v", brandUserID, err)
		}
	}

	return creators, nil
}

func (p *Policy) invalidate(ctx context.Context, brandUserID string) {
	if p.cache == nil {
		return
	}
	if err := p.cache.Delete(ctx, hydrationKey(brandUserID)); err != nil {
		log.Printf("Failed to invalidate recommendation cache for brand %s: %v", brandUserID, err)
	}
}

func hydrationKey(brandUserID string) string {
	return "reco:hydrated:" + brandUserID
}

// GeneratedAt exposes the persistence timestamp for response metadata.
func (p *Policy) GeneratedAt(ctx context.Context, brandUserID string) time.Time {
	rec, err := p.recs.FindByBrandUserID(ctx, brandUserID)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(rec.GeneratedAt, 0)
}
