package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"marketplace-service/internal/event"
	"marketplace-service/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// PaymentStore and PaymentOrderStore are the repository surface the
// payment flow writes through. Satisfied by the concrete Mongo repositories.
type PaymentStore interface {
	New(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	FindByOrderID(ctx context.Context, orderID bson.ObjectID) (*models.Payment, error)
	UpdateStatus(ctx context.Context, id bson.ObjectID, status models.PaymentStatus) (*models.Payment, error)
}

type PaymentOrderStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Order, error)
	SetPaymentState(ctx context.Context, id bson.ObjectID, state models.PaymentState) error
}

type PaymentService struct {
	paymentRepo PaymentStore
	orderRepo   PaymentOrderStore
	publisher   event.Publisher
}

func NewPaymentService(paymentRepo PaymentStore, orderRepo PaymentOrderStore, publisher event.Publisher) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		publisher:   publisher,
	}
}

// CreatePayment records a completed gateway payment for an order. The
// submitted amount must equal the order amount exactly; a mismatch is
// rejected before anything is written. Paying flips the order's payment
// state without touching its fulfilment status.
func (s *PaymentService) CreatePayment(ctx context.Context, brandUserID string, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if brandUserID == "" {
		return nil, fmt.Errorf("brand user ID is required")
	}

	orderObjectID, err := bson.ObjectIDFromHex(req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format: %w", err)
	}

	order, err := s.orderRepo.FindByID(ctx, orderObjectID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if order.BrandUserID != brandUserID {
		return nil, fmt.Errorf("order not found")
	}
	if req.Amount != order.Amount {
		return nil, fmt.Errorf("payment amount %.2f does not match order amount %.2f", req.Amount, order.Amount)
	}
	if !order.PaymentState.CanTransitionTo(models.PaymentStatePaid) {
		return nil, fmt.Errorf("order is already %s", order.PaymentState)
	}

	now := time.Now().Unix()
	payment := &models.Payment{
		OrderID:       order.ID,
		TransactionID: uuid.New().String(),
		Amount:        req.Amount,
		Currency:      req.Currency,
		Method:        req.Method,
		Status:        models.PaymentStatusCompleted,
		PaidAt:        now,
		Metadata: models.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.paymentRepo.New(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if err := s.orderRepo.SetPaymentState(ctx, order.ID, models.PaymentStatePaid); err != nil {
		return nil, fmt.Errorf("failed to mark order paid: %w", err)
	}

	s.publishPaymentEvent(models.EventTypePaymentCompleted, created, order)

	return created, nil
}

// RefundPayment refunds a paid order. Only paid orders can be refunded.
func (s *PaymentService) RefundPayment(ctx context.Context, orderID string) (*models.Payment, error) {
	orderObjectID, err := bson.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format: %w", err)
	}

	order, err := s.orderRepo.FindByID(ctx, orderObjectID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if !order.PaymentState.CanTransitionTo(models.PaymentStateRefunded) {
		return nil, fmt.Errorf("order in payment state %s cannot be refunded", order.PaymentState)
	}

	payment, err := s.paymentRepo.FindByOrderID(ctx, orderObjectID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no payment recorded for order")
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	refunded, err := s.paymentRepo.UpdateStatus(ctx, payment.ID, models.PaymentStatusRefunded)
	if err != nil {
		return nil, fmt.Errorf("failed to refund payment: %w", err)
	}

	if err := s.orderRepo.SetPaymentState(ctx, order.ID, models.PaymentStateRefunded); err != nil {
		return nil, fmt.Errorf("failed to mark order refunded: %w", err)
	}

	s.publishPaymentEvent(models.EventTypePaymentRefunded, refunded, order)

	return refunded, nil
}

// GetPaymentByOrder returns the payment recorded for an order.
func (s *PaymentService) GetPaymentByOrder(ctx context.Context, orderID string) (*models.Payment, error) {
	orderObjectID, err := bson.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format: %w", err)
	}

	payment, err := s.paymentRepo.FindByOrderID(ctx, orderObjectID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("payment not found")
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	return payment, nil
}

func (s *PaymentService) publishPaymentEvent(eventType models.EventType, payment *models.Payment, order *models.Order) {
	evt := &models.MarketplaceEvent{
		EventType: eventType,
		EntityID:  payment.TransactionID,
		UserID:    order.BrandUserID,
		Timestamp: time.Now().Unix(),
		Payload: map[string]any{
			"orderId": order.OrderID,
			"amount":  payment.Amount,
		},
	}
	if err := s.publisher.PublishMarketplaceEvent(evt); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}
