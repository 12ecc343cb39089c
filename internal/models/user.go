package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the account record shared by brands and creators. The avatar field
// is one-way synced from CreatorProfile.PersonalInfo.ProfileImage whenever a
// creator saves a profile image; user-side edits are overwritten by the next
// profile save.
type User struct {
	ID       bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID   string        `json:"userId" bson:"userId"`
	Email    string        `json:"email" bson:"email"`
	Name     string        `json:"name" bson:"name"`
	Role     UserRole      `json:"role" bson:"role"`
	Avatar   string        `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Status   ProfileStatus `json:"status" bson:"status"`
	Metadata Metadata      `json:"metadata" bson:"metadata"`
}
