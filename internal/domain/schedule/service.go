package schedule

import (
	"context"
)

type RecurringScheduleService interface {
	Create(ctx context.Context, req CreateRecurringScheduleRequest) (RecurringScheduleResponse, error)
	Get(ctx context.Context, id string) (RecurringScheduleResponse, error)
	List(ctx context.Context, filter RecurringScheduleFilter) (ListRecurringScheduleResponse, error)
	Update(ctx context.Context, req UpdateRecurringScheduleRequest) (RecurringScheduleResponse, error)
	Delete(ctx context.Context, id string) error
}
