package leave

import (
	"context"
)

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)
	Get(ctx context.Context, id string) (LeaveRequestResponse, error)
	List(ctx context.Context, filter LeaveFilter) (ListLeaveRequestResponse, error)
	Review(ctx context.Context, req ReviewLeaveRequest) (LeaveRequestResponse, error)
	Cancel(ctx context.Context, id string) error
	// Usage summarizes approved and pending leave days per employee for
	// requests intersecting the given calendar year.
	Usage(ctx context.Context, year int) ([]LeaveUsageSummary, error)
}
