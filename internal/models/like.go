package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Like is a pure existence relation between a user and a creator profile,
// unique on (userId, creatorId). No state machine.
type Like struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string        `json:"userId" bson:"userId"`
	CreatorID bson.ObjectID `json:"creatorId" bson:"creatorId"`
	CreatedAt int64         `json:"createdAt" bson:"createdAt"`
}
