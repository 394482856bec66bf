package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/timelog"
)

// TimeLogJobs contains punch-hygiene cron jobs
type TimeLogJobs struct {
	timeLogService timelog.TimeLogService
	maxOpen        time.Duration
}

func NewTimeLogJobs(timeLogService timelog.TimeLogService, maxOpen time.Duration) *TimeLogJobs {
	return &TimeLogJobs{
		timeLogService: timeLogService,
		maxOpen:        maxOpen,
	}
}

func (j *TimeLogJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_time_logs", 1*time.Hour, j.AutoCloseStaleTimeLogs)
}

// AutoCloseStaleTimeLogs closes punches that were never clocked out. Closed
// punches get a time out equal to their time in so they credit zero hours
// rather than an inflated span.
func (j *TimeLogJobs) AutoCloseStaleTimeLogs(ctx context.Context) error {
	closed, err := j.timeLogService.AutoCloseStale(ctx, j.maxOpen)
	if err != nil {
		return err
	}
	if closed > 0 {
		slog.Info("Cron: auto-closed stale time logs", "count", closed)
	}
	return nil
}
