package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/employee"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/subscription"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/authctx"
)

const trialPeriod = 14 * 24 * time.Hour

type subscriptionServiceImpl struct {
	subscriptionRepo subscription.SubscriptionRepository
	employeeRepo     employee.EmployeeRepository
}

func NewSubscriptionService(
	subscriptionRepo subscription.SubscriptionRepository,
	employeeRepo employee.EmployeeRepository,
) subscription.SubscriptionService {
	return &subscriptionServiceImpl{
		subscriptionRepo: subscriptionRepo,
		employeeRepo:     employeeRepo,
	}
}

// Create implements subscription.SubscriptionService.
func (s *subscriptionServiceImpl) Create(ctx context.Context, req subscription.CreateSubscriptionRequest) (subscription.SubscriptionResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	plan, err := s.subscriptionRepo.GetPlanByID(ctx, req.PlanID)
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}
	if !plan.IsActive {
		return subscription.SubscriptionResponse{}, subscription.ErrPlanNotActive
	}
	if plan.MaxSeats != nil && req.MaxSeats > *plan.MaxSeats {
		return subscription.SubscriptionResponse{}, subscription.ErrExceedsPlanMaxSeats
	}

	now := time.Now()
	trialEnd := now.Add(trialPeriod)

	created, err := s.subscriptionRepo.Create(ctx, subscription.Subscription{
		ID:                 uuid.NewString(),
		CompanyID:          companyID,
		PlanID:             plan.ID,
		Status:             subscription.StatusTrial,
		MaxSeats:           req.MaxSeats,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   trialEnd,
		TrialEndsAt:        &trialEnd,
	})
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	return s.mapSubscriptionToResponse(ctx, created)
}

// GetMySubscription implements subscription.SubscriptionService.
func (s *subscriptionServiceImpl) GetMySubscription(ctx context.Context) (subscription.SubscriptionResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	sub, err := s.subscriptionRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	return s.mapSubscriptionToResponse(ctx, sub)
}

// UpdateSeats implements subscription.SubscriptionService.
func (s *subscriptionServiceImpl) UpdateSeats(ctx context.Context, req subscription.UpdateSeatsRequest) (subscription.SubscriptionResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	sub, err := s.subscriptionRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	active, err := s.employeeRepo.CountActive(ctx, companyID)
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}
	if req.MaxSeats < active {
		return subscription.SubscriptionResponse{}, subscription.ErrSeatsBelowActive
	}
	if sub.Plan != nil && sub.Plan.MaxSeats != nil && req.MaxSeats > *sub.Plan.MaxSeats {
		return subscription.SubscriptionResponse{}, subscription.ErrExceedsPlanMaxSeats
	}

	sub.MaxSeats = req.MaxSeats
	updated, err := s.subscriptionRepo.Update(ctx, sub)
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	return s.mapSubscriptionToResponse(ctx, updated)
}

// ListPlans implements subscription.SubscriptionService.
func (s *subscriptionServiceImpl) ListPlans(ctx context.Context) ([]subscription.PlanResponse, error) {
	plans, err := s.subscriptionRepo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	responses := []subscription.PlanResponse{}
	for _, p := range plans {
		responses = append(responses, mapPlanToResponse(p))
	}
	return responses, nil
}

// CheckFeature implements subscription.SubscriptionService.
func (s *subscriptionServiceImpl) CheckFeature(ctx context.Context, companyID, featureCode string) error {
	sub, err := s.subscriptionRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return err
	}

	if !sub.IsUsable() {
		return subscription.ErrSubscriptionExpired
	}
	if !sub.HasFeature(featureCode) {
		return subscription.ErrFeatureNotAvailable
	}
	return nil
}

// CheckSeatAvailable implements subscription.SubscriptionService.
func (s *subscriptionServiceImpl) CheckSeatAvailable(ctx context.Context, companyID string) error {
	sub, err := s.subscriptionRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return err
	}
	if !sub.IsUsable() {
		return subscription.ErrSubscriptionExpired
	}

	active, err := s.employeeRepo.CountActive(ctx, companyID)
	if err != nil {
		return err
	}
	if !sub.CanAddEmployee(active) {
		return subscription.ErrSeatLimitExceeded
	}
	return nil
}

// ExpireOverdue implements subscription.SubscriptionService.
func (s *subscriptionServiceImpl) ExpireOverdue(ctx context.Context) (int, error) {
	now := time.Now()
	overdue, err := s.subscriptionRepo.ListExpiring(ctx, now)
	if err != nil {
		return 0, err
	}

	transitioned := 0
	for _, sub := range overdue {
		switch {
		case sub.IsInGracePeriod(now):
			if sub.Status == subscription.StatusPastDue {
				continue
			}
			sub.Status = subscription.StatusPastDue
		default:
			sub.Status = subscription.StatusExpired
		}

		if _, err := s.subscriptionRepo.Update(ctx, sub); err != nil {
			return transitioned, err
		}
		transitioned++
	}
	return transitioned, nil
}

func (s *subscriptionServiceImpl) mapSubscriptionToResponse(ctx context.Context, sub subscription.Subscription) (subscription.SubscriptionResponse, error) {
	used, err := s.employeeRepo.CountActive(ctx, sub.CompanyID)
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	resp := subscription.SubscriptionResponse{
		ID:                 sub.ID,
		CompanyID:          sub.CompanyID,
		Status:             sub.Status,
		MaxSeats:           sub.MaxSeats,
		UsedSeats:          used,
		CurrentPeriodStart: sub.CurrentPeriodStart.Format(time.RFC3339),
		CurrentPeriodEnd:   sub.CurrentPeriodEnd.Format(time.RFC3339),
	}
	if sub.TrialEndsAt != nil {
		trialEndsAt := sub.TrialEndsAt.Format(time.RFC3339)
		resp.TrialEndsAt = &trialEndsAt
	}
	if sub.Plan != nil {
		plan := mapPlanToResponse(*sub.Plan)
		resp.Plan = &plan
	}
	return resp, nil
}

func mapPlanToResponse(p subscription.Plan) subscription.PlanResponse {
	resp := subscription.PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		PricePerSeat: p.PricePerSeat.StringFixed(2),
		TierLevel:    p.TierLevel,
		MaxSeats:     p.MaxSeats,
		IsActive:     p.IsActive,
		Features:     []subscription.FeatureResponse{},
	}
	for _, f := range p.Features {
		resp.Features = append(resp.Features, subscription.FeatureResponse{
			ID:          f.ID,
			Code:        f.Code,
			Name:        f.Name,
			Description: f.Description,
		})
	}
	return resp
}
