package subscription

import (
	"context"
)

type SubscriptionService interface {
	Create(ctx context.Context, req CreateSubscriptionRequest) (SubscriptionResponse, error)
	GetMySubscription(ctx context.Context) (SubscriptionResponse, error)
	UpdateSeats(ctx context.Context, req UpdateSeatsRequest) (SubscriptionResponse, error)
	ListPlans(ctx context.Context) ([]PlanResponse, error)
	// CheckFeature returns ErrFeatureNotAvailable or ErrSubscriptionExpired
	// when the company's subscription does not grant the feature.
	CheckFeature(ctx context.Context, companyID, featureCode string) error
	// CheckSeatAvailable returns ErrSeatLimitExceeded when the company has
	// no free seat for another active employee.
	CheckSeatAvailable(ctx context.Context, companyID string) error
	// ExpireOverdue transitions subscriptions past their grace period to
	// expired. Returns the number transitioned.
	ExpireOverdue(ctx context.Context) (int, error)
}
