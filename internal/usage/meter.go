// Package usage meters AI-assistant invocations per user per day. Metering
// never fails the request it is attached to: every remote failure degrades
// to "zero usage" or "no-op" and is reported through an Outcome.
package usage

import (
	"context"

	"codeberg.org/daybook/server/internal/logger"
)

// Meter wraps a Counter with the degrade-to-zero policy and a daily limit.
type Meter struct {
	name    string
	counter Counter
	limit   int
}

// NewMeter creates a meter. dailyLimit 0 disables the limit.
func NewMeter(name string, counter Counter, dailyLimit int) *Meter {
	if dailyLimit < 0 {
		dailyLimit = 0
	}

	return &Meter{name: name, counter: counter, limit: dailyLimit}
}

// Bump adds increment (1 when <= 0) to today's count for userID.
// Empty userID makes no remote call.
func (m *Meter) Bump(ctx context.Context, userID string, increment int) Outcome {
	if userID == "" {
		return Outcome{}
	}

	if increment <= 0 {
		increment = 1
	}

	if err := m.counter.Increment(ctx, userID, increment); err != nil {
		logger.FromContext(ctx).Warn("usage bump failed",
			"meter", m.name,
			"user_id", userID,
			"increment", increment,
			"error", err,
		)

		return Outcome{Err: err}
	}

	return Outcome{}
}

// Today returns today's count for userID, zero for an empty id or on failure.
func (m *Meter) Today(ctx context.Context, userID string) Outcome {
	if userID == "" {
		return Outcome{}
	}

	count, err := m.counter.Today(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn("usage read failed",
			"meter", m.name,
			"user_id", userID,
			"error", err,
		)

		return Outcome{Err: err}
	}

	if count < 0 {
		count = 0
	}

	return Outcome{Count: count}
}

// Allow reports whether userID is under the daily limit. A failed read
// counts as zero usage, so it allows.
func (m *Meter) Allow(ctx context.Context, userID string) (bool, Outcome) {
	out := m.Today(ctx, userID)
	if m.limit == 0 {
		return true, out
	}

	return out.Count < m.limit, out
}

// Reading turns a count into the limit/remaining view.
func (m *Meter) Reading(count int) Reading {
	if m.limit == 0 {
		return Reading{Today: count, Limit: -1, Remaining: -1}
	}

	remaining := m.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return Reading{Today: count, Limit: m.limit, Remaining: remaining}
}

// Limit is the configured daily limit, 0 when unlimited.
func (m *Meter) Limit() int {
	return m.limit
}
