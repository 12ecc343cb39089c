package models

import (
	"testing"
)

func TestOrderStatusTransitions(t *testing.T) {
	testCases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusInProgress, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusInProgress, OrderStatusDelivered, true},
		{OrderStatusInProgress, OrderStatusCancelled, true},
		{OrderStatusInProgress, OrderStatusCompleted, false},
		{OrderStatusInProgress, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusCompleted, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusInProgress, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusInProgress, false},
	}

	for _, tc := range testCases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestPaymentStateTransitions(t *testing.T) {
	testCases := []struct {
		from    PaymentState
		to      PaymentState
		allowed bool
	}{
		{PaymentStatePending, PaymentStatePaid, true},
		{PaymentStatePending, PaymentStateRefunded, false},
		{PaymentStatePaid, PaymentStateRefunded, true},
		{PaymentStatePaid, PaymentStatePending, false},
		{PaymentStateRefunded, PaymentStatePending, false},
		{PaymentStateRefunded, PaymentStatePaid, false},
	}

	for _, tc := range testCases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestOnboardingStepOrder(t *testing.T) {
	if len(OnboardingSteps) != 7 {
		t.Fatalf("Expected 7 onboarding steps, got %d", len(OnboardingSteps))
	}
	if OnboardingSteps[0] != StepPersonalInfo {
		t.Errorf("Expected onboarding to start with %s, got %s", StepPersonalInfo, OnboardingSteps[0])
	}
	if OnboardingSteps[len(OnboardingSteps)-1] != StepPublish {
		t.Errorf("Expected onboarding to end with %s, got %s", StepPublish, OnboardingSteps[len(OnboardingSteps)-1])
	}

	for i, step := range OnboardingSteps {
		if got := StepIndex(step); got != i {
			t.Errorf("StepIndex(%s): expected %d, got %d", step, i, got)
		}
	}

	if got := StepIndex("not-a-step"); got != -1 {
		t.Errorf("Expected -1 for unknown step, got %d", got)
	}
}
