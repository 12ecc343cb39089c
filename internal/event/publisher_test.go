package event

import (
	"testing"
	"time"

	"marketplace-service/internal/models"
)

func TestMockPublisherRecordsEvents(t *testing.T) {
	mock := NewMockPublisher()

	evt := &models.MarketplaceEvent{
		EventType: models.EventTypeOrderCreated,
		EntityID:  "ORD-2025-00001",
		UserID:    "brand-1",
		Timestamp: time.Now().Unix(),
	}

	if err := mock.PublishMarketplaceEvent(evt); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(mock.Events) != 1 {
		t.Fatalf("Expected 1 recorded event, got %d", len(mock.Events))
	}
	if mock.Events[0].EventType != models.EventTypeOrderCreated {
		t.Errorf("Expected event type %s, got %s", models.EventTypeOrderCreated, mock.Events[0].EventType)
	}

	mock.ClearEvents()
	if len(mock.Events) != 0 {
		t.Errorf("Expected no events after clear, got %d", len(mock.Events))
	}
}

// The broker being down at boot must leave callers holding a working
// no-op publisher, never a nil one they would panic on.
func TestNewDisabledPublisherIsSafeToUse(t *testing.T) {
	var publisher Publisher = NewDisabledPublisher()

	evt := &models.MarketplaceEvent{
		EventType: models.EventTypeOrderCreated,
		EntityID:  "ORD-2025-00002",
	}
	if err := publisher.PublishMarketplaceEvent(evt); err != nil {
		t.Errorf("Expected fallback publish to succeed, got %v", err)
	}
	if err := publisher.Close(); err != nil {
		t.Errorf("Expected fallback close to succeed, got %v", err)
	}
}

func TestDisabledPublisherIsNoop(t *testing.T) {
	publisher, err := NewEventPublisher("")
	if err != nil {
		t.Fatalf("Expected disabled publisher without error, got %v", err)
	}

	evt := &models.MarketplaceEvent{
		EventType: models.EventTypePaymentCompleted,
		EntityID:  "tx-1",
	}
	if err := publisher.PublishMarketplaceEvent(evt); err != nil {
		t.Errorf("Expected disabled publish to succeed, got %v", err)
	}
	if err := publisher.Close(); err != nil {
		t.Errorf("Expected disabled close to succeed, got %v", err)
	}
}
