package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type BrandMetrics struct {
	ProfileViews   int64   `json:"profileViews" bson:"profileViews"`
	TotalCampaigns int64   `json:"totalCampaigns" bson:"totalCampaigns"`
	TotalCreators  int64   `json:"totalCreators" bson:"totalCreators"`
	AverageRating  float64 `json:"averageRating" bson:"averageRating"`
	FollowersCount int64   `json:"followersCount" bson:"followersCount"`
}

// BrandProfile is owned 1:1 by a brand User. Brands are never hard-deleted;
// deactivation flips Status to inactive. TotalSpend, completed order counts
// and response time are computed at read time from orders, not stored here.
type BrandProfile struct {
	ID          bson.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      string            `json:"userId" bson:"userId"`
	Name        string            `json:"name" bson:"name"`
	Username    string            `json:"username" bson:"username"`
	Industry    string            `json:"industry,omitempty" bson:"industry,omitempty"`
	Location    string            `json:"location,omitempty" bson:"location,omitempty"`
	Website     string            `json:"website,omitempty" bson:"website,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty" bson:"socialLinks,omitempty"`
	IsVerified  bool              `json:"isVerified" bson:"isVerified"`
	Status      ProfileStatus     `json:"status" bson:"status"`
	Metrics     BrandMetrics      `json:"metrics" bson:"metrics"`
	Metadata    Metadata          `json:"metadata" bson:"metadata"`
}

type BudgetRange struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

type Demographics struct {
	AgeRange  string   `json:"ageRange,omitempty" bson:"ageRange,omitempty"`
	Gender    string   `json:"gender,omitempty" bson:"gender,omitempty"`
	Locations []string `json:"locations,omitempty" bson:"locations,omitempty"`
}

// BrandPreference holds a brand's targeting criteria. It is created or
// overwritten wholesale by a single upsert call and is a read-only input to
// matching. When a preference exists it takes priority over any stored
// BrandRecommendation as the smart-recommendation source.
type BrandPreference struct {
	ID                 bson.ObjectID    `json:"id,omitempty" bson:"_id,omitempty"`
	UserID             string           `json:"userId" bson:"userId"`
	Category           string           `json:"category,omitempty" bson:"category,omitempty"`
	BrandValues        []string         `json:"brandValues,omitempty" bson:"brandValues,omitempty"`
	Demographics       Demographics     `json:"demographics,omitempty" bson:"demographics,omitempty"`
	Budget             *BudgetRange     `json:"budget,omitempty" bson:"budget,omitempty"`
	Platforms          []string         `json:"platforms,omitempty" bson:"platforms,omitempty"`
	Subcategories      []string         `json:"subcategories,omitempty" bson:"subcategories,omitempty"`
	Expertise          []string         `json:"expertise,omitempty" bson:"expertise,omitempty"`
	ContentTypes       []string         `json:"contentTypes,omitempty" bson:"contentTypes,omitempty"`
	EventTypes         []string         `json:"eventTypes,omitempty" bson:"eventTypes,omitempty"`
	TargetAudience     *AudienceProfile `json:"targetAudience,omitempty" bson:"targetAudience,omitempty"`
	TravelWillingness  string           `json:"travelWillingness,omitempty" bson:"travelWillingness,omitempty"`
	MinExperienceYears int              `json:"minExperienceYears,omitempty" bson:"minExperienceYears,omitempty"`
	Metadata           Metadata         `json:"metadata" bson:"metadata"`
}
