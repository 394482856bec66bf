package leave

import (
	"time"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/validator"
)

var leaveTypes = []string{
	string(LeaveTypeVacation),
	string(LeaveTypeSick),
	string(LeaveTypeUnpaid),
	string(LeaveTypeOther),
}

type CreateLeaveRequest struct {
	Type      string  `json:"type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, leaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of vacation, sick, unpaid, other",
		})
	}
	start, errStart := time.Parse("2006-01-02", r.StartDate)
	if errStart != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, errEnd := time.Parse("2006-01-02", r.EndDate)
	if errEnd != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if errStart == nil && errEnd == nil && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewLeaveRequest struct {
	ID           string  `json:"-"`
	CompanyID    string  `json:"-"`
	ReviewerID   string  `json:"-"`
	Approve      bool    `json:"-"`
	ReviewerNote *string `json:"reviewer_note"`
}

type LeaveFilter struct {
	EmployeeID *string
	Status     *string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

func (f *LeaveFilter) Validate() error {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{
		string(LeaveStatusPending),
		string(LeaveStatusApproved),
		string(LeaveStatusRejected),
	}) {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected",
		}}
	}
	return nil
}

type LeaveRequestResponse struct {
	ID           string      `json:"id"`
	CompanyID    string      `json:"company_id"`
	EmployeeID   string      `json:"employee_id"`
	EmployeeName *string     `json:"employee_name,omitempty"`
	Type         LeaveType   `json:"type"`
	StartDate    string      `json:"start_date"`
	EndDate      string      `json:"end_date"`
	Days         int         `json:"days"`
	Reason       *string     `json:"reason"`
	Status       LeaveStatus `json:"status"`
	ReviewedBy   *string     `json:"reviewed_by,omitempty"`
	ReviewedAt   *string     `json:"reviewed_at,omitempty"`
	ReviewerNote *string     `json:"reviewer_note,omitempty"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}

type ListLeaveRequestResponse struct {
	TotalCount    int64                  `json:"total_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalPages    int                    `json:"total_pages"`
	LeaveRequests []LeaveRequestResponse `json:"leave_requests"`
}

type LeaveUsageSummary struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	ApprovedDays int     `json:"approved_days"`
	PendingDays  int     `json:"pending_days"`
}
