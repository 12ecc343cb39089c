package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Payment records a gateway transaction for an order. TransactionID is
// unique (one payment per gateway transaction); Amount must equal the order
// amount or creation is rejected before anything is written.
type Payment struct {
	ID            bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderID       bson.ObjectID `json:"orderId" bson:"orderId"`
	TransactionID string        `json:"transactionId" bson:"transactionId"`
	Amount        float64       `json:"amount" bson:"amount"`
	Currency      string        `json:"currency" bson:"currency"`
	Method        string        `json:"method,omitempty" bson:"method,omitempty"`
	Status        PaymentStatus `json:"status" bson:"status"`
	PaidAt        int64         `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	RefundedAt    int64         `json:"refundedAt,omitempty" bson:"refundedAt,omitempty"`
	Metadata      Metadata      `json:"metadata" bson:"metadata"`
}
