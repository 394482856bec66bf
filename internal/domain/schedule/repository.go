package schedule

import (
	"context"
	"time"
)

type RecurringScheduleRepository interface {
	Create(ctx context.Context, schedule RecurringSchedule) (RecurringSchedule, error)
	GetByID(ctx context.Context, id, companyID string) (RecurringSchedule, error)
	List(ctx context.Context, companyID string, filter RecurringScheduleFilter) ([]RecurringSchedule, int64, error)
	// ListActiveInRange returns, in creation order, every schedule whose date
	// range intersects [from, to]. Creation order matters: later rows win
	// schedule-index collisions.
	ListActiveInRange(ctx context.Context, companyID string, from, to time.Time) ([]RecurringSchedule, error)
	Update(ctx context.Context, req UpdateRecurringScheduleRequest) (RecurringSchedule, error)
	Delete(ctx context.Context, id, companyID string) error
	CountByShift(ctx context.Context, shiftID, companyID string) (int64, error)
}
