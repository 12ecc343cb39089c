package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type CampaignStatus string

const (
	CampaignStatusDraft    CampaignStatus = "draft"
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusFinished CampaignStatus = "finished"
)

// Campaign is an optional scoring input: when a match request names a
// campaign, its budget and content constraints contribute extra predicates.
type Campaign struct {
	ID           bson.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	BrandUserID  string         `json:"brandUserId" bson:"brandUserId"`
	Name         string         `json:"name" bson:"name"`
	Category     string         `json:"category,omitempty" bson:"category,omitempty"`
	Budget       *BudgetRange   `json:"budget,omitempty" bson:"budget,omitempty"`
	ContentTypes []string       `json:"contentTypes,omitempty" bson:"contentTypes,omitempty"`
	EventType    string         `json:"eventType,omitempty" bson:"eventType,omitempty"`
	Platforms    []string       `json:"platforms,omitempty" bson:"platforms,omitempty"`
	Status       CampaignStatus `json:"status" bson:"status"`
	Metadata     Metadata       `json:"metadata" bson:"metadata"`
}
