package subscription

import (
	"context"
	"time"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub Subscription) (Subscription, error)
	GetByCompanyID(ctx context.Context, companyID string) (Subscription, error)
	Update(ctx context.Context, sub Subscription) (Subscription, error)
	// ListExpiring returns active or trial subscriptions whose period (or
	// trial) ended before the cutoff, across all companies. Used by the
	// expiry job.
	ListExpiring(ctx context.Context, cutoff time.Time) ([]Subscription, error)

	GetPlanByID(ctx context.Context, planID string) (Plan, error)
	ListPlans(ctx context.Context) ([]Plan, error)
	ListFeaturesByPlan(ctx context.Context, planID string) ([]Feature, error)
}
