package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingJobs struct {
	runs int
}

func (j *countingJobs) RegisterJobs(s *Scheduler) {
	s.AddJob("counting_job", time.Hour, func(ctx context.Context) error {
		j.runs++
		return nil
	})
}

func TestSchedulerRegisterAndRunOnce(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	first := &countingJobs{}
	second := &countingJobs{}
	s.Register(first, second)

	s.RunOnce(context.Background())

	assert.Equal(t, 1, first.runs)
	assert.Equal(t, 1, second.runs)
}

func TestSchedulerRunsJobsWithDeadline(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	gotDeadline := false
	s.AddJob("deadline_check", time.Hour, func(ctx context.Context) error {
		_, gotDeadline = ctx.Deadline()
		return nil
	})

	s.executeJob(s.jobs[0])
	assert.True(t, gotDeadline)
}
