package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreatorMetrics is the authoritative engagement/earnings record for a
// creator, keyed by the creator's user ID. It is updated independently of
// CreatorProfile (by order completion events and the social refresh worker)
// and is the only metrics source matching reads from.
type CreatorMetrics struct {
	ID                bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CreatorUserID     string        `json:"creatorUserId" bson:"creatorUserId"`
	Followers         int64         `json:"followers" bson:"followers"`
	EngagementRate    float64       `json:"engagementRate" bson:"engagementRate"`
	AverageRating     float64       `json:"averageRating" bson:"averageRating"`
	CompletedProjects int64         `json:"completedProjects" bson:"completedProjects"`
	RepeatClientRate  float64       `json:"repeatClientRate" bson:"repeatClientRate"`
	ResponseRate      float64       `json:"responseRate" bson:"responseRate"`
	TotalEarnings     float64       `json:"totalEarnings" bson:"totalEarnings"`
	Tier              CreatorTier   `json:"tier" bson:"tier"`
	LastActiveAt      int64         `json:"lastActiveAt,omitempty" bson:"lastActiveAt,omitempty"`
	Metadata          Metadata      `json:"metadata" bson:"metadata"`
}
