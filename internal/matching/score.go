// Package matching implements the brand→creator relevance score.
//
// The score is a plain additive heuristic: each predicate contributes a fixed
// point value when its condition holds and appends one human-readable reason.
// There is no normalization, so totals are unbounded and not comparable
// between creators whose documents are populated differently. That is a known
// limitation of the scoring design, kept deliberately: ranking within one
// request only ever compares scores produced from the same brand inputs.
package matching

import (
	"strings"
	"time"

	"marketplace-service/internal/models"
)

// Fixed predicate contributions. Values are points, not weights; every
// predicate either fires fully or not at all.
const (
	pointsCategoryMatch     = 20
	pointsBudgetFit         = 15
	pointsMegaFollowers     = 12
	pointsPlatformOverlap   = 10
	pointsTopRating         = 10
	pointsCampaignBudget    = 10
	pointsMacroFollowers    = 8
	pointsProjectExperience = 8
	pointsBrandValues       = 8
	pointsRepeatClients     = 6
	pointsTopTier           = 6
	pointsSubcategories     = 6
	pointsExpertise         = 6
	pointsContentTypes      = 6
	pointsMidFollowers      = 5
	pointsResponseRate      = 5
	pointsAgeTargeting      = 5
	pointsGenderTargeting   = 5
	pointsLocationTargeting = 5
	pointsEventTypes        = 5
	pointsExperienceYears   = 5
	pointsCampaignContent   = 5
	pointsPremiumPackage    = 4
	pointsEarnings          = 4
	pointsCompleteness      = 4
	pointsAudienceGender    = 4
	pointsAudienceAge       = 4
	pointsIndustryAlignment = 4
	pointsRecentlyActive    = 3
	pointsTravelMatch       = 3
)

// Threshold constants for the tiered predicates.
const (
	megaFollowerFloor    = 1_000_000
	macroFollowerFloor   = 100_000
	midFollowerFloor     = 10_000
	topRatingFloor       = 4.5
	projectFloor         = 50
	repeatClientFloor    = 0.30
	responseRateFloor    = 0.90
	earningsFloor        = 100_000
	completenessFloor    = 80.0
	recentActivityWindow = 30 * 24 * time.Hour
)

// Result pairs the total with one reason string per satisfied predicate.
type Result struct {
	Score   int
	Reasons []string
}

// Score computes the relevance of a creator for a brand. It is pure and
// I/O-free; any nil or absent input simply means the predicates that would
// read it contribute nothing. It never fails for normal inputs.
func Score(brand *models.BrandProfile, pref *models.BrandPreference, campaign *models.Campaign, creator *models.CreatorProfile, metrics *models.CreatorMetrics) Result {
	var r Result
	if creator == nil {
		return r
	}

	add := func(points int, reason string) {
		r.Score += points
		r.Reasons = append(r.Reasons, reason)
	}

	if pref != nil {
		if pref.Category != "" && containsFold(creator.ProfessionalInfo.Categories, pref.Category) {
			add(pointsCategoryMatch, "Matches the preferred category")
		}
		if overlapsFold(pref.BrandValues, creator.ProfessionalInfo.Tags) {
			add(pointsBrandValues, "Shares the brand's values")
		}
		if overlapsFold(pref.Platforms, creatorPlatforms(creator)) {
			add(pointsPlatformOverlap, "Active on preferred platforms")
		}
		if equalFoldNonEmpty(pref.Demographics.AgeRange, creator.PersonalInfo.AgeGroup) {
			add(pointsAgeTargeting, "Fits the target age group")
		}
		if equalFoldNonEmpty(pref.Demographics.Gender, creator.PersonalInfo.Gender) {
			add(pointsGenderTargeting, "Fits the target gender")
		}
		if creator.PersonalInfo.Location != "" && containsFold(pref.Demographics.Locations, creator.PersonalInfo.Location) {
			add(pointsLocationTargeting, "Located in a target market")
		}
		if price := creator.StandardPrice(); pref.Budget != nil && price > 0 && price >= pref.Budget.Min && price <= pref.Budget.Max {
			add(pointsBudgetFit, "Pricing fits the preferred budget")
		}
		if overlapsFold(pref.Subcategories, creator.ProfessionalInfo.Subcategories) {
			add(pointsSubcategories, "Covers preferred subcategories")
		}
		if overlapsFold(pref.Expertise, creator.ProfessionalInfo.Expertise) {
			add(pointsExpertise, "Expertise matches the preference")
		}
		if overlapsFold(pref.ContentTypes, creator.ProfessionalInfo.ContentTypes) {
			add(pointsContentTypes, "Produces preferred content types")
		}
		if overlapsFold(pref.EventTypes, creator.ProfessionalInfo.EventAvailability.EventTypes) {
			add(pointsEventTypes, "Available for preferred event types")
		}
		if equalFoldNonEmpty(pref.TravelWillingness, creator.ProfessionalInfo.EventAvailability.TravelWillingness) {
			add(pointsTravelMatch, "Travel willingness matches")
		}
		if pref.MinExperienceYears > 0 && creator.ProfessionalInfo.ExperienceYears >= pref.MinExperienceYears {
			add(pointsExperienceYears, "Meets the experience requirement")
		}
		if pref.TargetAudience != nil {
			if equalFoldNonEmpty(pref.TargetAudience.Gender, creator.ProfessionalInfo.Audience.Gender) {
				add(pointsAudienceGender, "Audience gender matches")
			}
			if equalFoldNonEmpty(pref.TargetAudience.AgeRange, creator.ProfessionalInfo.Audience.AgeRange) {
				add(pointsAudienceAge, "Audience age range matches")
			}
		}
	}

	if brand != nil && brand.Industry != "" {
		if containsFold(creator.ProfessionalInfo.Categories, brand.Industry) || containsFold(creator.ProfessionalInfo.Tags, brand.Industry) {
			add(pointsIndustryAlignment, "Aligned with the brand's industry")
		}
	}

	if metrics != nil {
		if metrics.AverageRating >= topRatingFloor {
			add(pointsTopRating, "Top rated creator")
		}
		if metrics.CompletedProjects >= projectFloor {
			add(pointsProjectExperience, "Extensive project experience")
		}
		if metrics.RepeatClientRate >= repeatClientFloor {
			add(pointsRepeatClients, "High repeat client rate")
		}
		if metrics.ResponseRate >= responseRateFloor {
			add(pointsResponseRate, "Responds quickly to requests")
		}
		switch {
		case metrics.Followers >= megaFollowerFloor:
			add(pointsMegaFollowers, "Mega influencer reach")
		case metrics.Followers >= macroFollowerFloor:
			add(pointsMacroFollowers, "Macro influencer reach")
		case metrics.Followers >= midFollowerFloor:
			add(pointsMidFollowers, "Established follower base")
		}
		if metrics.Tier == models.TierGold || metrics.Tier == models.TierPlatinum {
			add(pointsTopTier, "Top tier creator")
		}
		if metrics.TotalEarnings >= earningsFloor {
			add(pointsEarnings, "Proven earnings track record")
		}
		if metrics.LastActiveAt > 0 && time.Since(time.Unix(metrics.LastActiveAt, 0)) <= recentActivityWindow {
			add(pointsRecentlyActive, "Recently active")
		}
	}

	if creator.Pricing.Premium != nil {
		add(pointsPremiumPackage, "Offers a premium package")
	}
	if creator.Metrics.Completeness >= completenessFloor {
		add(pointsCompleteness, "Complete, detailed profile")
	}

	if campaign != nil {
		if price := creator.StandardPrice(); campaign.Budget != nil && price > 0 && price >= campaign.Budget.Min && price <= campaign.Budget.Max {
			add(pointsCampaignBudget, "Pricing fits the campaign budget")
		}
		if overlapsFold(campaign.ContentTypes, creator.ProfessionalInfo.ContentTypes) {
			add(pointsCampaignContent, "Matches the campaign content types")
		}
	}

	return r
}

func creatorPlatforms(creator *models.CreatorProfile) []string {
	platforms := make([]string, 0, len(creator.SocialProfiles))
	for _, sp := range creator.SocialProfiles {
		platforms = append(platforms, sp.Platform)
	}
	return platforms
}

func equalFoldNonEmpty(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func overlapsFold(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, v := range a {
		seen[strings.ToLower(v)] = struct{}{}
	}
	for _, v := range b {
		if _, ok := seen[strings.ToLower(v)]; ok {
			return true
		}
	}
	return false
}
