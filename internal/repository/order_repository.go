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

type OrderRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
		mu:         &sync.Mutex{},
	}
}

func (r *OrderRepository) New(ctx context.Context, order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID.IsZero() {
		order.ID = bson.NewObjectID()
	}

	currentTime := time.Now().Unix()
	if order.Metadata.CreatedAt == 0 {
		order.Metadata.CreatedAt = currentTime
	}
	order.Metadata.UpdatedAt = currentTime

	_, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}
	return order, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByBrandUserID(ctx context.Context, brandUserID string, page, limit int) ([]*models.Order, error) {
	return r.findPaged(ctx, bson.M{"brandUserId": brandUserID}, page, limit)
}

func (r *OrderRepository) FindByCreatorUserID(ctx context.Context, creatorUserID string, page, limit int) ([]*models.Order, error) {
	return r.findPaged(ctx, bson.M{"creatorUserId": creatorUserID}, page, limit)
}

func (r *OrderRepository) findPaged(ctx context.Context, filter bson.M, page, limit int) ([]*models.Order, error) {
	opts := options.Find()
	opts.SetSort(bson.M{"metadata.createdAt": -1})
	opts.SetSkip(int64((page - 1) * limit))
	opts.SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) Update(ctx context.Context, id bson.ObjectID, order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.Metadata.UpdatedAt = time.Now().Unix()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Order
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": order}, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return &updated, nil
}

// SetPaymentState advances only the parallel payment state; order status is
// deliberately untouched.
func (r *OrderRepository) SetPaymentState(ctx context.Context, id bson.ObjectID, state models.PaymentState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	update := bson.M{
		"$set": bson.M{
			"paymentStatus":      state,
			"metadata.updatedAt": time.Now().Unix(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set payment state: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *OrderRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "orderId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "brandUserId", Value: 1}, {Key: "metadata.createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "creatorUserId", Value: 1}, {Key: "metadata.createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create order indexes: %w", err)
	}

	return nil
}
