package subscription

import (
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/validator"
)

type CreateSubscriptionRequest struct {
	PlanID   string `json:"plan_id"`
	MaxSeats int    `json:"max_seats"`
}

func (r *CreateSubscriptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PlanID) {
		errs = append(errs, validator.ValidationError{
			Field:   "plan_id",
			Message: "plan_id is required",
		})
	}
	if r.MaxSeats < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_seats",
			Message: "max_seats must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSeatsRequest struct {
	CompanyID string `json:"-"`
	MaxSeats  int    `json:"max_seats"`
}

func (r *UpdateSeatsRequest) Validate() error {
	if r.MaxSeats < 1 {
		return validator.ValidationErrors{{
			Field:   "max_seats",
			Message: "max_seats must be at least 1",
		}}
	}
	return nil
}

type FeatureResponse struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type PlanResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	PricePerSeat string            `json:"price_per_seat"`
	TierLevel    int               `json:"tier_level"`
	MaxSeats     *int              `json:"max_seats,omitempty"`
	IsActive     bool              `json:"is_active"`
	Features     []FeatureResponse `json:"features"`
}

type SubscriptionResponse struct {
	ID                 string             `json:"id"`
	CompanyID          string             `json:"company_id"`
	Status             SubscriptionStatus `json:"status"`
	MaxSeats           int                `json:"max_seats"`
	UsedSeats          int                `json:"used_seats"`
	CurrentPeriodStart string             `json:"current_period_start"`
	CurrentPeriodEnd   string             `json:"current_period_end"`
	TrialEndsAt        *string            `json:"trial_ends_at,omitempty"`
	Plan               *PlanResponse      `json:"plan,omitempty"`
}
