package service

import (
	"context"
	"strings"
	"testing"

	"marketplace-service/internal/event"
	"marketplace-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type fakePaymentStore struct {
	payment  *models.Payment
	newCalls int
}

func (f *fakePaymentStore) New(_ context.Context, payment *models.Payment) (*models.Payment, error) {
	f.newCalls++
	f.payment = payment
	return payment, nil
}

func (f *fakePaymentStore) FindByOrderID(_ context.Context, _ bson.ObjectID) (*models.Payment, error) {
	if f.payment == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.payment, nil
}

func (f *fakePaymentStore) UpdateStatus(_ context.Context, _ bson.ObjectID, status models.PaymentStatus) (*models.Payment, error) {
	f.payment.Status = status
	return f.payment, nil
}

type fakePaymentOrderStore struct {
	order  *models.Order
	states []models.PaymentState
}

func (f *fakePaymentOrderStore) FindByID(_ context.Context, id bson.ObjectID) (*models.Order, error) {
	if f.order == nil || f.order.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return f.order, nil
}

func (f *fakePaymentOrderStore) SetPaymentState(_ context.Context, _ bson.ObjectID, state models.PaymentState) error {
	f.states = append(f.states, state)
	f.order.PaymentState = state
	return nil
}

func pendingTestOrder() *models.Order {
	var id bson.ObjectID
	id[11] = 7
	return &models.Order{
		ID:            id,
		OrderID:       "ORD-2026-00001",
		BrandUserID:   "brand-1",
		CreatorUserID: "creator-1",
		Amount:        500,
		Currency:      "USD",
		Status:        models.OrderStatusPending,
		PaymentState:  models.PaymentStatePending,
	}
}

func TestCreatePaymentRejectsAmountMismatch(t *testing.T) {
	order := pendingTestOrder()
	payments := &fakePaymentStore{}
	orders := &fakePaymentOrderStore{order: order}
	publisher := event.NewMockPublisher()
	svc := NewPaymentService(payments, orders, publisher)

	_, err := svc.CreatePayment(context.Background(), "brand-1", &models.CreatePaymentRequest{
		OrderID:  order.ID.Hex(),
		Amount:   499.99,
		Currency: "USD",
		Method:   "card",
	})
	if err == nil {
		t.Fatal("Expected error for mismatched amount")
	}
	if !strings.Contains(err.Error(), "does not match") {
		t.Errorf("Expected amount mismatch error, got %v", err)
	}
	if payments.newCalls != 0 {
		t.Errorf("Expected no payment written on mismatch, got %d", payments.newCalls)
	}
	if len(orders.states) != 0 {
		t.Errorf("Expected order payment state untouched, got %v", orders.states)
	}
	if len(publisher.Events) != 0 {
		t.Errorf("Expected no events on mismatch, got %d", len(publisher.Events))
	}
}

func TestCreatePaymentMarksOrderPaid(t *testing.T) {
	order := pendingTestOrder()
	payments := &fakePaymentStore{}
	orders := &fakePaymentOrderStore{order: order}
	publisher := event.NewMockPublisher()
	svc := NewPaymentService(payments, orders, publisher)

	payment, err := svc.CreatePayment(context.Background(), "brand-1", &models.CreatePaymentRequest{
		OrderID:  order.ID.Hex(),
		Amount:   500,
		Currency: "USD",
		Method:   "card",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if payment.TransactionID == "" {
		t.Error("Expected a transaction ID to be assigned")
	}
	if payment.Status != models.PaymentStatusCompleted {
		t.Errorf("Expected status %s, got %s", models.PaymentStatusCompleted, payment.Status)
	}
	if len(orders.states) != 1 || orders.states[0] != models.PaymentStatePaid {
		t.Errorf("Expected order marked paid, got %v", orders.states)
	}
	// Fulfilment status is untouched by the payment path.
	if order.Status != models.OrderStatusPending {
		t.Errorf("Expected order status to stay %s, got %s", models.OrderStatusPending, order.Status)
	}
	if len(publisher.Events) != 1 || publisher.Events[0].EventType != models.EventTypePaymentCompleted {
		t.Errorf("Expected a %s event, got %v", models.EventTypePaymentCompleted, publisher.Events)
	}
}

func TestCreatePaymentRejectsDoublePay(t *testing.T) {
	order := pendingTestOrder()
	order.PaymentState = models.PaymentStatePaid
	svc := NewPaymentService(&fakePaymentStore{}, &fakePaymentOrderStore{order: order}, event.NewMockPublisher())

	_, err := svc.CreatePayment(context.Background(), "brand-1", &models.CreatePaymentRequest{
		OrderID:  order.ID.Hex(),
		Amount:   500,
		Currency: "USD",
		Method:   "card",
	})
	if err == nil {
		t.Fatal("Expected error when the order is already paid")
	}
}

func TestRefundPaymentRequiresPaidOrder(t *testing.T) {
	order := pendingTestOrder()
	svc := NewPaymentService(&fakePaymentStore{}, &fakePaymentOrderStore{order: order}, event.NewMockPublisher())

	_, err := svc.RefundPayment(context.Background(), order.ID.Hex())
	if err == nil {
		t.Fatal("Expected error refunding an unpaid order")
	}
	if !strings.Contains(err.Error(), "cannot be refunded") {
		t.Errorf("Expected refund-state error, got %v", err)
	}
}
