// Package scheduler fires the job endpoints on their cron schedules. A
// failed firing is logged and left for the next tick.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/daybook/server/internal/jobs"
	"codeberg.org/daybook/server/internal/logger"
	"github.com/robfig/cron/v3"
)

// Scheduler owns a cron runner with one entry per job.
type Scheduler struct {
	cron    *cron.Cron
	firer   Firer
	timeout time.Duration
}

func New(firer Firer, loc *time.Location, timeout time.Duration) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}

	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		firer:   firer,
		timeout: timeout,
	}
}

// Register adds every job's schedule. An invalid schedule is an error.
func (s *Scheduler) Register(all []jobs.Job) error {
	for _, job := range all {
		name := job.Name

		if _, err := s.cron.AddFunc(job.Schedule, func() { s.FireOnce(context.Background(), name) }); err != nil {
			return fmt.Errorf("invalid schedule %q for job %s: %w", job.Schedule, name, err)
		}

		logger.Info("job scheduled", "job", name, "schedule", job.Schedule)
	}

	return nil
}

// FireOnce triggers job and logs the result. It never returns an error.
func (s *Scheduler) FireOnce(ctx context.Context, job string) bool {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.firer.Fire(ctx, job)
	if err != nil {
		logger.ErrorErr(err, "job trigger failed", "job", job)
		return false
	}

	logger.Info("job triggered", "job", job, "processed", resp.Processed)
	return true
}

// Entries reports how many schedules are registered.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running firings until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()

	select {
	case <-done.Done():
	case <-ctx.Done():
		logger.Warn("scheduler stopped with firings still running")
	}
}
