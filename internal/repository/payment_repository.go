package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"marketplace-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PaymentRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		collection: db.Collection("payments"),
		mu:         &sync.Mutex{},
	}
}

func (r *PaymentRepository) New(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.ID.IsZero() {
		payment.ID = bson.NewObjectID()
	}

	currentTime := time.Now().Unix()
	if payment.Metadata.CreatedAt == 0 {
		payment.Metadata.CreatedAt = currentTime
	}
	payment.Metadata.UpdatedAt = currentTime

	_, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}
	return payment, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Payment, error) {
	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID bson.ObjectID) (*models.Payment, error) {
	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id bson.ObjectID, status models.PaymentStatus) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	currentTime := time.Now().Unix()
	set := bson.M{
		"status":             status,
		"metadata.updatedAt": currentTime,
	}
	switch status {
	case models.PaymentStatusCompleted:
		set["paidAt"] = currentTime
	case models.PaymentStatusRefunded:
		set["refundedAt"] = currentTime
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Payment
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	return &updated, nil
}

func (r *PaymentRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "transactionId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "orderId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create payment indexes: %w", err)
	}

	return nil
}
