package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/subscription"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/database"
)

type subscriptionRepositoryImpl struct {
	db *database.DB
}

func NewSubscriptionRepository(db *database.DB) subscription.SubscriptionRepository {
	return &subscriptionRepositoryImpl{db: db}
}

const subscriptionColumns = `
	id, company_id, plan_id, status, max_seats,
	current_period_start, current_period_end, trial_ends_at, created_at, updated_at
`

func scanSubscription(row pgx.Row) (subscription.Subscription, error) {
	var s subscription.Subscription
	err := row.Scan(&s.ID, &s.CompanyID, &s.PlanID, &s.Status, &s.MaxSeats,
		&s.CurrentPeriodStart, &s.CurrentPeriodEnd, &s.TrialEndsAt, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Create implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) Create(ctx context.Context, sub subscription.Subscription) (subscription.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO subscriptions (id, company_id, plan_id, status, max_seats,
			current_period_start, current_period_end, trial_ends_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + subscriptionColumns

	created, err := scanSubscription(q.QueryRow(ctx, query,
		sub.ID, sub.CompanyID, sub.PlanID, sub.Status, sub.MaxSeats,
		sub.CurrentPeriodStart, sub.CurrentPeriodEnd, sub.TrialEndsAt))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return subscription.Subscription{}, subscription.ErrAlreadySubscribed
		}
		return subscription.Subscription{}, fmt.Errorf("failed to create subscription: %w", err)
	}
	return r.attachPlan(ctx, created)
}

// GetByCompanyID implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) (subscription.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + subscriptionColumns + " FROM subscriptions WHERE company_id = $1"

	found, err := scanSubscription(q.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return subscription.Subscription{}, subscription.ErrSubscriptionNotFound
		}
		return subscription.Subscription{}, fmt.Errorf("failed to get subscription for company %s: %w", companyID, err)
	}
	return r.attachPlan(ctx, found)
}

// Update implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) Update(ctx context.Context, sub subscription.Subscription) (subscription.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE subscriptions
		SET plan_id = $2, status = $3, max_seats = $4,
			current_period_start = $5, current_period_end = $6, trial_ends_at = $7,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + subscriptionColumns

	updated, err := scanSubscription(q.QueryRow(ctx, query,
		sub.ID, sub.PlanID, sub.Status, sub.MaxSeats,
		sub.CurrentPeriodStart, sub.CurrentPeriodEnd, sub.TrialEndsAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return subscription.Subscription{}, subscription.ErrSubscriptionNotFound
		}
		return subscription.Subscription{}, fmt.Errorf("failed to update subscription %s: %w", sub.ID, err)
	}
	return r.attachPlan(ctx, updated)
}

// ListExpiring implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) ListExpiring(ctx context.Context, cutoff time.Time) ([]subscription.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + subscriptionColumns + `
		FROM subscriptions
		WHERE status IN ('trial', 'active', 'past_due')
		  AND current_period_end < $1
		ORDER BY current_period_end
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []subscription.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}

// GetPlanByID implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) GetPlanByID(ctx context.Context, planID string) (subscription.Plan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, price_per_seat, tier_level, max_seats, is_active, created_at, updated_at
		FROM plans
		WHERE id = $1
	`

	var p subscription.Plan
	err := q.QueryRow(ctx, query, planID).
		Scan(&p.ID, &p.Name, &p.PricePerSeat, &p.TierLevel, &p.MaxSeats, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return subscription.Plan{}, subscription.ErrPlanNotFound
		}
		return subscription.Plan{}, fmt.Errorf("failed to get plan %s: %w", planID, err)
	}

	features, err := r.ListFeaturesByPlan(ctx, p.ID)
	if err != nil {
		return subscription.Plan{}, err
	}
	p.Features = features
	return p, nil
}

// ListPlans implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) ListPlans(ctx context.Context) ([]subscription.Plan, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, price_per_seat, tier_level, max_seats, is_active, created_at, updated_at
		FROM plans
		WHERE is_active = true
		ORDER BY tier_level
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []subscription.Plan
	for rows.Next() {
		var p subscription.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.PricePerSeat, &p.TierLevel, &p.MaxSeats,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range plans {
		features, err := r.ListFeaturesByPlan(ctx, plans[i].ID)
		if err != nil {
			return nil, err
		}
		plans[i].Features = features
	}

	return plans, nil
}

// ListFeaturesByPlan implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) ListFeaturesByPlan(ctx context.Context, planID string) ([]subscription.Feature, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT f.id, f.code, f.name, f.description, f.created_at
		FROM features f
		JOIN plan_features pf ON pf.feature_id = f.id
		WHERE pf.plan_id = $1 AND pf.is_active = true
		ORDER BY f.code
	`, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan features: %w", err)
	}
	defer rows.Close()

	var features []subscription.Feature
	for rows.Next() {
		var f subscription.Feature
		if err := rows.Scan(&f.ID, &f.Code, &f.Name, &f.Description, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return features, nil
}

func (r *subscriptionRepositoryImpl) attachPlan(ctx context.Context, sub subscription.Subscription) (subscription.Subscription, error) {
	plan, err := r.GetPlanByID(ctx, sub.PlanID)
	if err != nil {
		return subscription.Subscription{}, err
	}
	sub.Plan = &plan
	sub.Features = plan.Features
	return sub, nil
}
