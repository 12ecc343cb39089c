package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"marketplace-service/internal/event"
	"marketplace-service/internal/models"
	"marketplace-service/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type OrderService struct {
	orderRepo   *repository.OrderRepository
	creatorRepo *repository.CreatorRepository
	counterRepo *repository.CounterRepository
	publisher   event.Publisher
}

func NewOrderService(orderRepo *repository.OrderRepository, creatorRepo *repository.CreatorRepository, counterRepo *repository.CounterRepository, publisher event.Publisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		creatorRepo: creatorRepo,
		counterRepo: counterRepo,
		publisher:   publisher,
	}
}

// CreateOrder opens an order from a brand against one of a creator's package
// tiers. The amount is always taken from the creator's current pricing, and
// the human-readable order ID is drawn from an atomic counter.
func (s *OrderService) CreateOrder(ctx context.Context, brandUserID string, req *models.CreateOrderRequest) (*models.Order, error) {
	if brandUserID == "" {
		return nil, fmt.Errorf("brand user ID is required")
	}
	if req.CreatorUserID == "" {
		return nil, fmt.Errorf("validation failed: creatorUserId is required")
	}
	if brandUserID == req.CreatorUserID {
		return nil, fmt.Errorf("validation failed: cannot order from yourself")
	}

	creator, err := s.creatorRepo.FindByUserID(ctx, req.CreatorUserID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("creator not found")
		}
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}
	if !creator.PublishInfo.IsPublished {
		return nil, fmt.Errorf("creator is not accepting orders")
	}

	amount := creator.PackagePrice(req.PackageType)
	if amount <= 0 {
		return nil, fmt.Errorf("creator does not offer the %s package", req.PackageType)
	}

	orderID, err := s.counterRepo.NextOrderID(ctx, time.Now().Year())
	if err != nil {
		return nil, fmt.Errorf("failed to allocate order ID: %w", err)
	}

	now := time.Now().Unix()
	order := &models.Order{
		OrderID:       orderID,
		BrandUserID:   brandUserID,
		CreatorUserID: req.CreatorUserID,
		PackageType:   req.PackageType,
		Amount:        amount,
		Currency:      req.Currency,
		Requirements:  req.Requirements,
		Status:        models.OrderStatusPending,
		PaymentState:  models.PaymentStatePending,
		Metadata: models.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.orderRepo.New(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishOrderEvent(models.EventTypeOrderCreated, created, nil)

	return created, nil
}

// GetOrder fetches an order and enforces that the caller is a party to it.
func (s *OrderService) GetOrder(ctx context.Context, id, callerUserID string) (*models.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.BrandUserID != callerUserID && order.CreatorUserID != callerUserID {
		return nil, fmt.Errorf("order not found")
	}
	return order, nil
}

// ListBrandOrders returns the brand's orders, newest first.
func (s *OrderService) ListBrandOrders(ctx context.Context, brandUserID string, page, limit int) ([]*models.Order, error) {
	orders, err := s.orderRepo.FindByBrandUserID(ctx, brandUserID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListCreatorOrders returns the creator's orders, newest first.
func (s *OrderService) ListCreatorOrders(ctx context.Context, creatorUserID string, page, limit int) ([]*models.Order, error) {
	orders, err := s.orderRepo.FindByCreatorUserID(ctx, creatorUserID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus advances the order state machine. Invalid transitions are
// rejected, and the side that may request each transition is enforced here:
// the creator accepts and delivers, the brand completes, and either party
// may cancel while cancellation is still reachable.
func (s *OrderService) UpdateStatus(ctx context.Context, id, callerUserID string, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.BrandUserID != callerUserID && order.CreatorUserID != callerUserID {
		return nil, fmt.Errorf("order not found")
	}

	if !order.Status.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("cannot transition order from %s to %s", order.Status, req.Status)
	}

	switch req.Status {
	case models.OrderStatusInProgress, models.OrderStatusDelivered:
		if callerUserID != order.CreatorUserID {
			return nil, fmt.Errorf("only the creator can move an order to %s", req.Status)
		}
	case models.OrderStatusCompleted:
		if callerUserID != order.BrandUserID {
			return nil, fmt.Errorf("only the brand can complete an order")
		}
	}

	now := time.Now().Unix()
	previous := order.Status
	order.Status = req.Status
	order.Metadata.UpdatedAt = now

	switch req.Status {
	case models.OrderStatusDelivered:
		order.DeliveredAt = now
	case models.OrderStatusCompleted:
		order.CompletedAt = now
	case models.OrderStatusCancelled:
		order.CancelledAt = now
		order.CancelReason = req.CancelReason
	}

	updated, err := s.orderRepo.Update(ctx, order.ID, order)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.publishOrderEvent(models.EventTypeOrderStatusChanged, updated, map[string]any{
		"from": string(previous),
		"to":   string(req.Status),
	})
	if req.Status == models.OrderStatusCompleted {
		s.publishOrderEvent(models.EventTypeOrderCompleted, updated, map[string]any{
			"creatorUserId": updated.CreatorUserID,
			"amount":        updated.Amount,
		})
	}

	return updated, nil
}

func (s *OrderService) findOrder(ctx context.Context, id string) (*models.Order, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format: %w", err)
	}

	order, err := s.orderRepo.FindByID(ctx, objectID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	return order, nil
}

func (s *OrderService) publishOrderEvent(eventType models.EventType, order *models.Order, payload map[string]any) {
	evt := &models.MarketplaceEvent{
		EventType: eventType,
		EntityID:  order.OrderID,
		UserID:    order.BrandUserID,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	if err := s.publisher.PublishMarketplaceEvent(evt); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}
