package models

type EventType string

const (
	EventTypeCreatorProfileCreated   EventType = "creator.profile.created"
	EventTypeCreatorProfileUpdated   EventType = "creator.profile.updated"
	EventTypeCreatorProfilePublished EventType = "creator.profile.published"
	EventTypeOrderCreated            EventType = "order.created"
	EventTypeOrderStatusChanged      EventType = "order.status.changed"
	EventTypeOrderCompleted          EventType = "order.completed"
	EventTypePaymentCompleted        EventType = "payment.completed"
	EventTypePaymentRefunded         EventType = "payment.refunded"
	EventTypeRecommendationGenerated EventType = "recommendation.generated"
)

type MarketplaceEvent struct {
	EventType EventType      `json:"eventType"`
	EntityID  string         `json:"entityId"`
	UserID    string         `json:"userId"`
	Timestamp int64          `json:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty"`
}

type UserRegisterEvent struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
