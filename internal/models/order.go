package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Order is a brand→creator transaction. OrderID is a human-readable
// identifier of the form ORD-<year>-<seq>, drawn from an atomic per-year
// counter document so concurrent creations can never collide.
//
// Status and PaymentState are parallel state machines: PaymentState is
// advanced by the payment path without regard to Status.
type Order struct {
	ID            bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderID       string        `json:"orderId" bson:"orderId"`
	BrandUserID   string        `json:"brandUserId" bson:"brandUserId"`
	CreatorUserID string        `json:"creatorUserId" bson:"creatorUserId"`
	PackageType   PackageType   `json:"packageType" bson:"packageType"`
	Amount        float64       `json:"amount" bson:"amount"`
	Currency      string        `json:"currency" bson:"currency"`
	Requirements  string        `json:"requirements,omitempty" bson:"requirements,omitempty"`
	Status        OrderStatus   `json:"status" bson:"status"`
	PaymentState  PaymentState  `json:"paymentStatus" bson:"paymentStatus"`
	DeliveredAt   int64         `json:"deliveredAt,omitempty" bson:"deliveredAt,omitempty"`
	CompletedAt   int64         `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CancelledAt   int64         `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
	CancelReason  string        `json:"cancelReason,omitempty" bson:"cancelReason,omitempty"`
	Metadata      Metadata      `json:"metadata" bson:"metadata"`
}
