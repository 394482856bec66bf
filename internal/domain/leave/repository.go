package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id, companyID string) (LeaveRequest, error)
	List(ctx context.Context, companyID string, filter LeaveFilter) ([]LeaveRequest, int64, error)
	// ListApprovedInRange returns approved requests intersecting [from, to],
	// for excusing scheduled days in attendance aggregation.
	ListApprovedInRange(ctx context.Context, companyID string, from, to time.Time) ([]LeaveRequest, error)
	// ListOutstandingInRange returns pending and approved requests
	// intersecting [from, to], for usage summaries.
	ListOutstandingInRange(ctx context.Context, companyID string, from, to time.Time) ([]LeaveRequest, error)
	CountOverlapping(ctx context.Context, employeeID, companyID string, start, end time.Time) (int64, error)
	Update(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	Delete(ctx context.Context, id, companyID string) error
}
