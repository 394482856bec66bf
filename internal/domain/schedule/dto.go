package schedule

import (
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/recurrence"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/validator"
)

type CreateRecurringScheduleRequest struct {
	ShiftID    string   `json:"shift_id"`
	EmployeeID string   `json:"employee_id"`
	Weekdays   []string `json:"weekdays"`
	StartDate  string   `json:"start_date"`
	EndDate    *string  `json:"end_date"`
}

func (r *CreateRecurringScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if len(r.DaySet()) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekdays",
			Message: "weekdays must contain at least one of MO,TU,WE,TH,FR,SA,SU",
		})
	}
	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if r.EndDate != nil {
		endDate, endOK := validator.IsValidDate(*r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else if startOK && endDate.Before(startDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DaySet decodes the request's weekday tokens into a recurrence day set.
// Unknown tokens are dropped, matching the decoder's leniency.
func (r *CreateRecurringScheduleRequest) DaySet() recurrence.DaySet {
	set := recurrence.DaySet{}
	for _, token := range r.Weekdays {
		for d := range recurrence.Decode("BYDAY=" + token) {
			set[d] = true
		}
	}
	return set
}

type UpdateRecurringScheduleRequest struct {
	ID        string   `json:"-"`
	CompanyID string   `json:"-"`
	ShiftID   *string  `json:"shift_id"`
	Weekdays  []string `json:"weekdays"`
	StartDate *string  `json:"start_date"`
	EndDate   *string  `json:"end_date"`

	// Pattern is derived from Weekdays by the service before the repository
	// sees the request.
	Pattern *string `json:"-"`
}

func (r *UpdateRecurringScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecurringScheduleFilter struct {
	EmployeeID *string
	ShiftID    *string
	Page       int
	Limit      int
}

func (f *RecurringScheduleFilter) Validate() error {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	return nil
}

type RecurringScheduleResponse struct {
	ID                string   `json:"id"`
	ShiftID           string   `json:"shift_id"`
	ShiftName         *string  `json:"shift_name,omitempty"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      *string  `json:"employee_name,omitempty"`
	RecurrencePattern string   `json:"recurrence_pattern"`
	Weekdays          []string `json:"weekdays"`
	StartDate         string   `json:"start_date"`
	EndDate           *string  `json:"end_date,omitempty"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

type ListRecurringScheduleResponse struct {
	TotalCount int64                       `json:"total_count"`
	Page       int                         `json:"page"`
	Limit      int                         `json:"limit"`
	TotalPages int                         `json:"total_pages"`
	Schedules  []RecurringScheduleResponse `json:"schedules"`
}
