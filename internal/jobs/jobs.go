// Package jobs defines the scheduled jobs and runs a single invocation of
// one. Each invocation is independent: no retries, no idempotency key, no
// run ledger. If the scheduler fires twice, the job runs twice.
package jobs

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/daybook/server/internal/logger"
)

// Execute runs job once. A panic inside the job becomes a failed outcome.
func Execute(ctx context.Context, job Job) (out Outcome) {
	log := logger.FromContext(ctx).With("job", job.Name)
	start := time.Now()

	out = Outcome{Job: job.Name, State: StateRunning}
	log.Info("job started")

	defer func() {
		if r := recover(); r != nil {
			out.State = StateFailed
			out.Err = fmt.Errorf("job %s panicked: %v", job.Name, r)
		}

		out.Duration = time.Since(start)

		if out.State == StateFailed {
			log.Error("job failed", "error", out.Err, "duration_ms", out.Duration.Milliseconds())
			return
		}

		log.Info("job finished", "processed", out.Processed, "duration_ms", out.Duration.Milliseconds())
	}()

	if job.Run == nil {
		out.State = StateFailed
		out.Err = fmt.Errorf("job %s has no run function", job.Name)
		return out
	}

	processed, err := job.Run(ctx)
	if err != nil {
		out.State = StateFailed
		out.Err = err
		return out
	}

	if processed < 0 {
		processed = 0
	}

	out.State = StateDone
	out.Processed = processed

	return out
}

// Defaults returns the built-in jobs.
func Defaults() []Job {
	return []Job{
		{Name: NameNotifications, Schedule: "*/15 * * * *", Run: placeholder(NameNotifications)},
		{Name: NameDailyDigest, Schedule: "0 7 * * *", Run: placeholder(NameDailyDigest)},
		{Name: NameWeeklyReport, Schedule: "0 8 * * 1", Run: placeholder(NameWeeklyReport)},
	}
}

// TODO: notifications should drain due task reminders once push subscriptions move to this service.
func placeholder(name string) RunFunc {
	return func(ctx context.Context) (int, error) {
		logger.FromContext(ctx).Debug("job has no work wired yet", "job", name)
		return 0, nil
	}
}

// Find returns the job called name.
func Find(all []Job, name string) (Job, bool) {
	for _, j := range all {
		if j.Name == name {
			return j, true
		}
	}

	return Job{}, false
}
