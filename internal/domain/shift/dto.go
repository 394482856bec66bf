package shift

import (
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/timeutil"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateShiftTemplateRequest struct {
	Name                   string  `json:"name"`
	StartTime              string  `json:"start_time"`
	EndTime                string  `json:"end_time"`
	DifferentialMultiplier *string `json:"differential_multiplier"`
}

func (r *CreateShiftTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if _, err := timeutil.ParseClock(r.StartTime); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if _, err := timeutil.ParseClock(r.EndTime); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}
	if r.DifferentialMultiplier != nil {
		mult, err := decimal.NewFromString(*r.DifferentialMultiplier)
		if err != nil || mult.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "differential_multiplier",
				Message: "differential_multiplier must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftTemplateRequest struct {
	ID                     string  `json:"-"`
	CompanyID              string  `json:"-"`
	Name                   *string `json:"name"`
	StartTime              *string `json:"start_time"`
	EndTime                *string `json:"end_time"`
	DifferentialMultiplier *string `json:"differential_multiplier"`
}

func (r *UpdateShiftTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.StartTime != nil {
		if _, err := timeutil.ParseClock(*r.StartTime); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
	}
	if r.EndTime != nil {
		if _, err := timeutil.ParseClock(*r.EndTime); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}
	if r.DifferentialMultiplier != nil {
		mult, err := decimal.NewFromString(*r.DifferentialMultiplier)
		if err != nil || mult.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "differential_multiplier",
				Message: "differential_multiplier must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftTemplateResponse struct {
	ID                     string  `json:"id"`
	CompanyID              string  `json:"company_id"`
	Name                   string  `json:"name"`
	StartTime              string  `json:"start_time"`
	EndTime                string  `json:"end_time"`
	DifferentialMultiplier string  `json:"differential_multiplier"`
	Hours                  float64 `json:"hours"`
	CreatedAt              string  `json:"created_at"`
	UpdatedAt              string  `json:"updated_at"`
}

type ListShiftTemplateResponse struct {
	TotalCount int64                   `json:"total_count"`
	Shifts     []ShiftTemplateResponse `json:"shifts"`
}
