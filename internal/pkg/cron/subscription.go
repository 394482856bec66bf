package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/subscription"
)

// SubscriptionJobs contains subscription-related cron jobs
type SubscriptionJobs struct {
	subscriptionService subscription.SubscriptionService
}

func NewSubscriptionJobs(subscriptionService subscription.SubscriptionService) *SubscriptionJobs {
	return &SubscriptionJobs{
		subscriptionService: subscriptionService,
	}
}

func (j *SubscriptionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("expire_overdue_subscriptions", 1*time.Hour, j.ExpireOverdueSubscriptions)
}

// ExpireOverdueSubscriptions transitions subscriptions past their grace
// period to expired.
func (j *SubscriptionJobs) ExpireOverdueSubscriptions(ctx context.Context) error {
	expired, err := j.subscriptionService.ExpireOverdue(ctx)
	if err != nil {
		return err
	}
	if expired > 0 {
		slog.Info("Cron: expired overdue subscriptions", "count", expired)
	}
	return nil
}
