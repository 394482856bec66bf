package timelog

import (
	"time"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	DeviceInfo *string `json:"device_info"`
}

type CorrectTimeLogRequest struct {
	ID        string  `json:"-"`
	CompanyID string  `json:"-"`
	TimeIn    *string `json:"time_in"`
	TimeOut   *string `json:"time_out"`
}

func (r *CorrectTimeLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TimeIn == nil && r.TimeOut == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in",
			Message: "at least one of time_in or time_out is required",
		})
	}
	if r.TimeIn != nil {
		if _, err := time.Parse(time.RFC3339, *r.TimeIn); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "time_in",
				Message: "time_in must be an RFC3339 timestamp",
			})
		}
	}
	if r.TimeOut != nil {
		if _, err := time.Parse(time.RFC3339, *r.TimeOut); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "time_out",
				Message: "time_out must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeLogFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

func (f *TimeLogFilter) Validate() error {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return validator.ValidationErrors{{
			Field:   "to",
			Message: "to must not be before from",
		}}
	}
	return nil
}

type BreakLogResponse struct {
	ID         string  `json:"id"`
	BreakStart string  `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
}

type TimeLogResponse struct {
	ID           string             `json:"id"`
	CompanyID    string             `json:"company_id"`
	EmployeeID   string             `json:"employee_id"`
	EmployeeName *string            `json:"employee_name,omitempty"`
	TimeIn       string             `json:"time_in"`
	TimeOut      *string            `json:"time_out"`
	Status       TimeLogStatus      `json:"status"`
	DeviceInfo   *string            `json:"device_info,omitempty"`
	WorkedHours  float64            `json:"worked_hours"`
	Breaks       []BreakLogResponse `json:"breaks"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}

type ListTimeLogResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	TimeLogs   []TimeLogResponse `json:"time_logs"`
}
