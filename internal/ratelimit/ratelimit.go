// Package ratelimit throttles requests per caller with an in-memory store.
package ratelimit

import (
	"fmt"

	"codeberg.org/daybook/server/internal/errors"
	"codeberg.org/daybook/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// per-surface policies in limiter's "<n>-<S|M|H|D>" format
const (
	PolicyPrivileged = "30-M"
	PolicyUsage      = "120-M"
	PolicyFeedback   = "10-M"
)

// New returns a middleware allowing formatted requests per caller.
// The caller is the authenticated user when one is set, else the client IP.
func New(name, formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q for %s: %w", formatted, name, err)
	}

	store := memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: "daybook:" + name})

	return mgin.NewMiddleware(
		limiter.New(store, rate),
		mgin.WithKeyGetter(callerKey),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.FromContext(c.Request.Context()).Warn("rate limit reached",
				"limiter", name,
				"caller", callerKey(c),
				"path", c.Request.URL.Path,
			)

			errors.TooManyRequests(c, "")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			errors.InternalError(c, "rate limiter failed", err)
		}),
	), nil
}

// MustNew is New for the fixed policies above.
func MustNew(name, formatted string) gin.HandlerFunc {
	mw, err := New(name, formatted)
	if err != nil {
		panic(err)
	}

	return mw
}

func callerKey(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return "user:" + userID
	}

	return "ip:" + c.ClientIP()
}
