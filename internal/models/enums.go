package models

type UserRole string

const (
	RoleBrand   UserRole = "brand"
	RoleCreator UserRole = "creator"
	RoleAdmin   UserRole = "admin"
)

type ProfileStatus string

const (
	ProfileStatusActive   ProfileStatus = "active"
	ProfileStatusInactive ProfileStatus = "inactive"
	ProfileStatusPending  ProfileStatus = "pending"
)

type CreatorStatus string

const (
	CreatorStatusDraft     CreatorStatus = "draft"
	CreatorStatusPublished CreatorStatus = "published"
	CreatorStatusSuspended CreatorStatus = "suspended"
)

// OnboardingStep is the stepped state machine a creator walks through before
// the profile can be published. Steps must be completed in order.
type OnboardingStep string

const (
	StepPersonalInfo     OnboardingStep = "personal-info"
	StepProfessionalInfo OnboardingStep = "professional-info"
	StepDescriptionFaq   OnboardingStep = "description-faq"
	StepSocialMedia      OnboardingStep = "social-media"
	StepPricing          OnboardingStep = "pricing"
	StepGalleryPortfolio OnboardingStep = "gallery-portfolio"
	StepPublish          OnboardingStep = "publish"
)

// OnboardingSteps lists the steps in their required order.
var OnboardingSteps = []OnboardingStep{
	StepPersonalInfo,
	StepProfessionalInfo,
	StepDescriptionFaq,
	StepSocialMedia,
	StepPricing,
	StepGalleryPortfolio,
	StepPublish,
}

// StepIndex returns the position of a step in the onboarding sequence, or -1
// for an unknown step.
func StepIndex(step OnboardingStep) int {
	for i, s := range OnboardingSteps {
		if s == step {
			return i
		}
	}
	return -1
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions is the allowed order status state machine. Cancellation is
// only reachable before delivery.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {OrderStatusCompleted},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// CanTransitionTo reports whether an order may move from its current status
// to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentState is tracked on the order in parallel to OrderStatus and is
// updated independently by the payment path: an order can be paid while still
// pending, since payment precedes creator acceptance.
type PaymentState string

const (
	PaymentStatePending  PaymentState = "pending"
	PaymentStatePaid     PaymentState = "paid"
	PaymentStateRefunded PaymentState = "refunded"
)

var paymentStateTransitions = map[PaymentState][]PaymentState{
	PaymentStatePending:  {PaymentStatePaid},
	PaymentStatePaid:     {PaymentStateRefunded},
	PaymentStateRefunded: {},
}

func (s PaymentState) CanTransitionTo(next PaymentState) bool {
	for _, allowed := range paymentStateTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCompleted QuoteStatus = "completed"
)

type PackageType string

const (
	PackageBasic    PackageType = "basic"
	PackageStandard PackageType = "standard"
	PackagePremium  PackageType = "premium"
)

type CreatorTier string

const (
	TierBronze   CreatorTier = "bronze"
	TierSilver   CreatorTier = "silver"
	TierGold     CreatorTier = "gold"
	TierPlatinum CreatorTier = "platinum"
)

type Metadata struct {
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
