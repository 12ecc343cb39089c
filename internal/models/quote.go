package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// PrivateEventDetails is only meaningful when the owning request's
// IsPrivateEvent flag is set.
type PrivateEventDetails struct {
	EventType  string `json:"eventType" bson:"eventType"`
	EventDate  int64  `json:"eventDate,omitempty" bson:"eventDate,omitempty"`
	Location   string `json:"location,omitempty" bson:"location,omitempty"`
	GuestCount int    `json:"guestCount,omitempty" bson:"guestCount,omitempty"`
}

// CustomQuoteRequest is a brand→creator ask that falls outside the standard
// package tiers. Status moves pending → accepted|rejected, and accepted
// requests may later be marked completed.
type CustomQuoteRequest struct {
	ID             bson.ObjectID        `json:"id,omitempty" bson:"_id,omitempty"`
	BrandUserID    string               `json:"brandUserId" bson:"brandUserId"`
	CreatorUserID  string               `json:"creatorUserId" bson:"creatorUserId"`
	Description    string               `json:"description" bson:"description"`
	Budget         float64              `json:"budget,omitempty" bson:"budget,omitempty"`
	Deadline       int64                `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Status         QuoteStatus          `json:"status" bson:"status"`
	IsPrivateEvent bool                 `json:"isPrivateEvent" bson:"isPrivateEvent"`
	PrivateEvent   *PrivateEventDetails `json:"privateEvent,omitempty" bson:"privateEvent,omitempty"`
	ResponseNote   string               `json:"responseNote,omitempty" bson:"responseNote,omitempty"`
	Metadata       Metadata             `json:"metadata" bson:"metadata"`
}
