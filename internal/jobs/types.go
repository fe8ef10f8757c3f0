package jobs

import (
	"context"
	"time"
)

// RunFunc does the job's work and returns how many items it processed.
type RunFunc func(ctx context.Context) (int, error)

// Job is a time-triggered unit of work exposed at /api/cron/<Name>.
type Job struct {
	Name string

	// standard five-field cron expression, evaluated by cmd/scheduler
	Schedule string

	Run RunFunc
}

// State is where a single invocation ended up. Nothing is persisted.
// Rejected credentials never reach a job; the gate answers those.
type State string

const (
	StateRunning State = "running"
	StateDone    State = "done"
	StateFailed  State = "failed"
)

// Outcome describes one finished invocation.
type Outcome struct {
	Job       string
	State     State
	Processed int
	Err       error
	Duration  time.Duration
}

// job names, also the URL path segment
const (
	NameNotifications = "notifications"
	NameWeeklyReport  = "weekly-report"
	NameDailyDigest   = "daily-digest"
)
