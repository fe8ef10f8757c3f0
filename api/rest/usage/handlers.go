package usage

import (
	stderrors "errors"
	"io"
	"net/http"

	"codeberg.org/daybook/server/internal/auth"
	"codeberg.org/daybook/server/internal/errors"
	"codeberg.org/daybook/server/internal/usage"
	"github.com/gin-gonic/gin"
)

// Today godoc
// @Summary Get today's AI usage
// @Description Returns today's count, the daily limit and what remains. Metering failures read as zero.
// @Tags usage
// @Produce json
// @Success 200 {object} ReadingResponse
// @Failure 401 {object} errors.Envelope
// @Router /api/v1/usage/today [get]
// @Security BearerAuth
func Today(meter *usage.Meter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c)
			return
		}

		out := meter.Today(c.Request.Context(), userID)

		c.JSON(http.StatusOK, ReadingResponse{OK: true, Data: meter.Reading(out.Count)})
	}
}

// Bump godoc
// @Summary Record AI usage
// @Description Adds increment (1..10, default 1) to today's count and returns the new reading
// @Tags usage
// @Accept json
// @Produce json
// @Param request body BumpRequest false "Increment"
// @Success 200 {object} ReadingResponse
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 429 {object} errors.Envelope
// @Router /api/v1/usage/bump [post]
// @Security BearerAuth
func Bump(meter *usage.Meter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c)
			return
		}

		increment, ok := bindIncrement(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()

		allowed, _ := meter.Allow(ctx, userID)
		if !allowed {
			errors.TooManyRequests(c, MsgDailyLimitReached)
			return
		}

		_ = meter.Bump(ctx, userID, increment)

		out := meter.Today(ctx, userID)

		c.JSON(http.StatusOK, ReadingResponse{OK: true, Data: meter.Reading(out.Count)})
	}
}

// Guest godoc
// @Summary Get today's usage for an anonymous visitor
// @Tags usage
// @Produce json
// @Param x-guest-id header string true "Guest UUID"
// @Success 200 {object} ReadingResponse
// @Failure 400 {object} errors.Envelope
// @Router /api/v1/usage/guest [get]
func Guest(meter *usage.Meter) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := guestID(c)
		if !ok {
			return
		}

		if meter == nil {
			c.JSON(http.StatusOK, ReadingResponse{OK: true, Data: usage.Reading{Limit: -1, Remaining: -1}})
			return
		}

		out := meter.Today(c.Request.Context(), guestID)

		c.JSON(http.StatusOK, ReadingResponse{OK: true, Data: meter.Reading(out.Count)})
	}
}

// GuestBump godoc
// @Summary Record usage for an anonymous visitor
// @Tags usage
// @Accept json
// @Produce json
// @Param x-guest-id header string true "Guest UUID"
// @Param request body BumpRequest false "Increment"
// @Success 200 {object} ReadingResponse
// @Failure 400 {object} errors.Envelope
// @Failure 429 {object} errors.Envelope
// @Router /api/v1/usage/guest/bump [post]
func GuestBump(meter *usage.Meter) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := guestID(c)
		if !ok {
			return
		}

		increment, ok := bindIncrement(c)
		if !ok {
			return
		}

		if meter == nil {
			c.JSON(http.StatusOK, ReadingResponse{OK: true, Data: usage.Reading{Limit: -1, Remaining: -1}})
			return
		}

		ctx := c.Request.Context()

		allowed, _ := meter.Allow(ctx, guestID)
		if !allowed {
			errors.TooManyRequests(c, MsgDailyLimitReached)
			return
		}

		_ = meter.Bump(ctx, guestID, increment)

		out := meter.Today(ctx, guestID)

		c.JSON(http.StatusOK, ReadingResponse{OK: true, Data: meter.Reading(out.Count)})
	}
}

// an empty body means increment 1
func bindIncrement(c *gin.Context) (int, bool) {
	var req BumpRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		errors.ValidationError(c, err)
		return 0, false
	}

	if req.Increment == 0 {
		req.Increment = 1
	}

	return req.Increment, true
}

func guestID(c *gin.Context) (string, bool) {
	id := c.GetHeader(GuestIDHeader)
	if !errors.IsValidUUID(id) {
		errors.BadRequest(c, "missing or invalid "+GuestIDHeader, nil)
		return "", false
	}

	return id, true
}
