package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type CreatorPersonalInfo struct {
	FirstName    string   `json:"firstName" bson:"firstName"`
	LastName     string   `json:"lastName" bson:"lastName"`
	DisplayName  string   `json:"displayName,omitempty" bson:"displayName,omitempty"`
	ProfileImage string   `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	Location     string   `json:"location,omitempty" bson:"location,omitempty"`
	Gender       string   `json:"gender,omitempty" bson:"gender,omitempty"`
	AgeGroup     string   `json:"ageGroup,omitempty" bson:"ageGroup,omitempty"`
	Languages    []string `json:"languages,omitempty" bson:"languages,omitempty"`
}

// AudienceProfile describes who a creator reaches, as opposed to who the
// creator is.
type AudienceProfile struct {
	Gender   string `json:"gender,omitempty" bson:"gender,omitempty"`
	AgeRange string `json:"ageRange,omitempty" bson:"ageRange,omitempty"`
}

type EventAvailability struct {
	AvailableForEvents bool     `json:"availableForEvents" bson:"availableForEvents"`
	EventTypes         []string `json:"eventTypes,omitempty" bson:"eventTypes,omitempty"`
	TravelWillingness  string   `json:"travelWillingness,omitempty" bson:"travelWillingness,omitempty"`
}

type ProfessionalInfo struct {
	Categories        []string          `json:"categories,omitempty" bson:"categories,omitempty"`
	Subcategories     []string          `json:"subcategories,omitempty" bson:"subcategories,omitempty"`
	Tags              []string          `json:"tags,omitempty" bson:"tags,omitempty"`
	Expertise         []string          `json:"expertise,omitempty" bson:"expertise,omitempty"`
	ContentTypes      []string          `json:"contentTypes,omitempty" bson:"contentTypes,omitempty"`
	ExperienceYears   int               `json:"experienceYears,omitempty" bson:"experienceYears,omitempty"`
	Audience          AudienceProfile   `json:"audience,omitempty" bson:"audience,omitempty"`
	EventAvailability EventAvailability `json:"eventAvailability,omitempty" bson:"eventAvailability,omitempty"`
}

type FaqItem struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

type DescriptionFaq struct {
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Faq         []FaqItem `json:"faq,omitempty" bson:"faq,omitempty"`
}

// SocialProfile is a point-in-time snapshot of an external social account,
// refreshed periodically by the social refresh worker.
type SocialProfile struct {
	Platform       string  `json:"platform" bson:"platform"`
	Handle         string  `json:"handle" bson:"handle"`
	Followers      int64   `json:"followers" bson:"followers"`
	EngagementRate float64 `json:"engagementRate,omitempty" bson:"engagementRate,omitempty"`
	FetchedAt      int64   `json:"fetchedAt,omitempty" bson:"fetchedAt,omitempty"`
}

type PricingPackage struct {
	Price        float64  `json:"price" bson:"price"`
	Currency     string   `json:"currency,omitempty" bson:"currency,omitempty"`
	Description  string   `json:"description,omitempty" bson:"description,omitempty"`
	Deliverables []string `json:"deliverables,omitempty" bson:"deliverables,omitempty"`
	DeliveryDays int      `json:"deliveryDays,omitempty" bson:"deliveryDays,omitempty"`
}

type Pricing struct {
	Basic    *PricingPackage `json:"basic,omitempty" bson:"basic,omitempty"`
	Standard *PricingPackage `json:"standard,omitempty" bson:"standard,omitempty"`
	Premium  *PricingPackage `json:"premium,omitempty" bson:"premium,omitempty"`
}

type GalleryItem struct {
	URL       string `json:"url" bson:"url"`
	MediaType string `json:"mediaType,omitempty" bson:"mediaType,omitempty"`
	Caption   string `json:"caption,omitempty" bson:"caption,omitempty"`
}

type Review struct {
	BrandUserID string  `json:"brandUserId" bson:"brandUserId"`
	Rating      float64 `json:"rating" bson:"rating"`
	Comment     string  `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt   int64   `json:"createdAt" bson:"createdAt"`
}

type PublishInfo struct {
	IsPublished bool  `json:"isPublished" bson:"isPublished"`
	PublishedAt int64 `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
}

// CreatorProfileMetrics are the presentation counters embedded on the
// profile document. The authoritative engagement and earnings numbers live
// in the creator_metrics collection; matching reads engagement exclusively
// from there, and from this struct only the profile-derived completeness.
type CreatorProfileMetrics struct {
	ProfileViews     int64   `json:"profileViews" bson:"profileViews"`
	Completeness     float64 `json:"completeness" bson:"completeness"`
	RatingAverage    float64 `json:"ratingAverage" bson:"ratingAverage"`
	RatingCount      int64   `json:"ratingCount" bson:"ratingCount"`
	RepeatClientRate float64 `json:"repeatClientRate" bson:"repeatClientRate"`
}

// CreatorProfile is the richest entity in the marketplace. It is created
// during onboarding and becomes externally visible only once
// PublishInfo.IsPublished is true and Status is published.
type CreatorProfile struct {
	ID               bson.ObjectID         `json:"id,omitempty" bson:"_id,omitempty"`
	UserID           string                `json:"userId" bson:"userId"`
	PersonalInfo     CreatorPersonalInfo   `json:"personalInfo" bson:"personalInfo"`
	ProfessionalInfo ProfessionalInfo      `json:"professionalInfo" bson:"professionalInfo"`
	DescriptionFaq   DescriptionFaq        `json:"descriptionFaq,omitempty" bson:"descriptionFaq,omitempty"`
	SocialProfiles   []SocialProfile       `json:"socialProfiles,omitempty" bson:"socialProfiles,omitempty"`
	Pricing          Pricing               `json:"pricing,omitempty" bson:"pricing,omitempty"`
	Gallery          []GalleryItem         `json:"gallery,omitempty" bson:"gallery,omitempty"`
	Reviews          []Review              `json:"reviews,omitempty" bson:"reviews,omitempty"`
	PublishInfo      PublishInfo           `json:"publishInfo" bson:"publishInfo"`
	Status           CreatorStatus         `json:"status" bson:"status"`
	OnboardingStep   OnboardingStep        `json:"onboardingStep" bson:"onboardingStep"`
	Metrics          CreatorProfileMetrics `json:"metrics" bson:"metrics"`
	Metadata         Metadata              `json:"metadata" bson:"metadata"`
}

// PrimaryCategory returns the first professional category, or empty when the
// creator has none.
func (c *CreatorProfile) PrimaryCategory() string {
	if len(c.ProfessionalInfo.Categories) == 0 {
		return ""
	}
	return c.ProfessionalInfo.Categories[0]
}

// StandardPrice returns the standard package price, falling back to basic
// then premium when tiers are missing.
func (c *CreatorProfile) StandardPrice() float64 {
	switch {
	case c.Pricing.Standard != nil:
		return c.Pricing.Standard.Price
	case c.Pricing.Basic != nil:
		return c.Pricing.Basic.Price
	case c.Pricing.Premium != nil:
		return c.Pricing.Premium.Price
	}
	return 0
}

// PackagePrice returns the price for a named package tier, or 0 when the
// tier is not offered.
func (c *CreatorProfile) PackagePrice(pkg PackageType) float64 {
	switch pkg {
	case PackageBasic:
		if c.Pricing.Basic != nil {
			return c.Pricing.Basic.Price
		}
	case PackageStandard:
		if c.Pricing.Standard != nil {
			return c.Pricing.Standard.Price
		}
	case PackagePremium:
		if c.Pricing.Premium != nil {
			return c.Pricing.Premium.Price
		}
	}
	return 0
}

// TotalFollowers sums follower counts across social snapshots.
func (c *CreatorProfile) TotalFollowers() int64 {
	var total int64
	for _, sp := range c.SocialProfiles {
		total += sp.Followers
	}
	return total
}
