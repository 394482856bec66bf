package leave

import (
	"time"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

type LeaveType string

const (
	LeaveTypeVacation LeaveType = "vacation"
	LeaveTypeSick     LeaveType = "sick"
	LeaveTypeUnpaid   LeaveType = "unpaid"
	LeaveTypeOther    LeaveType = "other"
)

type LeaveRequest struct {
	ID           string
	CompanyID    string
	EmployeeID   string
	Type         LeaveType
	StartDate    time.Time
	EndDate      time.Time
	Reason       *string
	Status       LeaveStatus
	ReviewedBy   *string
	ReviewedAt   *time.Time
	ReviewerNote *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Populated on reads for API responses.
	EmployeeName *string
}

// Days is the inclusive calendar-day span of the request.
func (l LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
