package overview

import (
	"context"
	"time"
)

type OverviewService interface {
	MonthlyHours(ctx context.Context, req MonthlyHoursRequest) (MonthlyHoursResponse, error)
	DailyAttendance(ctx context.Context, day time.Time) (DailyAttendanceResponse, error)
	Today(ctx context.Context) (TodaySummary, error)
}
