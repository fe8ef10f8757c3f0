package admin

import (
	"context"
	"net/http"
	"strconv"

	"codeberg.org/daybook/server/daybook/feedback"
	"codeberg.org/daybook/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// FeedbackLister is satisfied by *feedback.Repository.
type FeedbackLister interface {
	List(ctx context.Context, limit int) ([]feedback.Feedback, error)
}

// ListFeedback godoc
// @Summary List user feedback (admin)
// @Description Admin-only listing of submitted feedback, newest first
// @Tags admin
// @Produce json
// @Param limit query int false "Page size (default 100, max 500)"
// @Success 200 {object} FeedbackListResponse
// @Failure 401 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /api/admin/feedback [get]
// @Security AdminKeyAuth
func ListFeedback(lister FeedbackLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := feedback.DefaultListLimit
		if l := c.Query("limit"); l != "" {
			if parsed, err := strconv.Atoi(l); err == nil {
				limit = feedback.ClampLimit(parsed)
			}
		}

		items, err := lister.List(c.Request.Context(), limit)
		if err != nil {
			errors.InternalError(c, "failed to list feedback", err)
			return
		}

		if items == nil {
			items = []feedback.Feedback{}
		}

		c.JSON(http.StatusOK, FeedbackListResponse{OK: true, Data: items})
	}
}
