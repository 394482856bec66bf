package timelog

import (
	"context"
	"time"
)

type TimeLogRepository interface {
	Create(ctx context.Context, log TimeLog) (TimeLog, error)
	GetByID(ctx context.Context, id, companyID string) (TimeLog, error)
	GetOpenByEmployee(ctx context.Context, employeeID, companyID string) (TimeLog, error)
	List(ctx context.Context, companyID string, filter TimeLogFilter) ([]TimeLog, int64, error)
	// ListRange returns all punches whose TimeIn falls in [from, to], breaks
	// included, for attendance aggregation.
	ListRange(ctx context.Context, companyID string, from, to time.Time) ([]TimeLog, error)
	// ListStaleOpen returns open punches whose TimeIn is before the cutoff,
	// across all companies. Used by the auto-close job.
	ListStaleOpen(ctx context.Context, cutoff time.Time) ([]TimeLog, error)
	Update(ctx context.Context, log TimeLog) (TimeLog, error)
	CreateBreak(ctx context.Context, brk BreakLog) (BreakLog, error)
	GetOpenBreak(ctx context.Context, timeLogID string) (BreakLog, error)
	CloseBreak(ctx context.Context, breakID string, end time.Time) (BreakLog, error)
}
