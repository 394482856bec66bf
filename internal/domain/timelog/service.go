package timelog

import (
	"context"
	"time"
)

type TimeLogService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (TimeLogResponse, error)
	ClockOut(ctx context.Context) (TimeLogResponse, error)
	StartBreak(ctx context.Context) (TimeLogResponse, error)
	EndBreak(ctx context.Context) (TimeLogResponse, error)
	Get(ctx context.Context, id string) (TimeLogResponse, error)
	List(ctx context.Context, filter TimeLogFilter) (ListTimeLogResponse, error)
	Correct(ctx context.Context, req CorrectTimeLogRequest) (TimeLogResponse, error)
	// AutoCloseStale closes punches open for longer than maxOpen, marking
	// them auto_closed with a zero-credit time out equal to time in.
	AutoCloseStale(ctx context.Context, maxOpen time.Duration) (int, error)
}
