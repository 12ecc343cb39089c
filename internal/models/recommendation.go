package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// BrandRecommendation caches a generated creator list per brand. It is
// created lazily on first request and fully overwritten on refresh. There is
// no TTL or invalidation: the list is stale until explicitly refreshed.
type BrandRecommendation struct {
	ID          bson.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	BrandUserID string          `json:"brandUserId" bson:"brandUserId"`
	CreatorIDs  []bson.ObjectID `json:"creatorIds" bson:"creatorIds"`
	GeneratedAt int64           `json:"generatedAt" bson:"generatedAt"`
	Metadata    Metadata        `json:"metadata" bson:"metadata"`
}
