package usage

import "context"

// names of the counting procedures in the database
const (
	FnIncrementToday = "increment_user_usage_today"
	FnGetToday       = "get_user_usage_today"
)

// Counter is the remote per-user, per-day tally. Atomicity of concurrent
// increments belongs to the backend.
type Counter interface {
	Increment(ctx context.Context, userID string, by int) error
	Today(ctx context.Context, userID string) (int, error)
}

// Outcome is the explicit result of a metering call. Count is zero when Err
// is set; callers that don't care about failures discard it with `_ =`.
type Outcome struct {
	Count int
	Err   error
}

// OK reports whether the remote call succeeded (or was skipped).
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Reading is what the usage endpoints report.
type Reading struct {
	Today     int `json:"today"`
	Limit     int `json:"limit"`     // -1 for unlimited
	Remaining int `json:"remaining"` // -1 for unlimited
}
