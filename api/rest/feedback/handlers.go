package feedback

import (
	"context"
	"net/http"
	"strings"

	"codeberg.org/daybook/server/daybook/feedback"
	"codeberg.org/daybook/server/internal/auth"
	"codeberg.org/daybook/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// Creator is satisfied by *feedback.Repository.
type Creator interface {
	Create(ctx context.Context, req *feedback.CreateRequest) (*feedback.Feedback, error)
}

// Create godoc
// @Summary Submit feedback
// @Description Stores a feedback message. Signed-in callers are attached to it, anonymous feedback is accepted.
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Feedback"
// @Success 201 {object} CreateResponse
// @Failure 400 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /api/v1/feedback [post]
func Create(creator Creator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		message := strings.TrimSpace(req.Message)
		if message == "" {
			errors.BadRequest(c, "message is required", nil)
			return
		}

		category := req.Category
		if category == "" {
			category = defaultCategory
		}

		userID, _ := auth.GetUserID(c)

		created, err := creator.Create(c.Request.Context(), &feedback.CreateRequest{
			UserID:    userID,
			Category:  category,
			Message:   message,
			Page:      req.Page,
			UserAgent: c.Request.UserAgent(),
		})
		if err != nil {
			errors.InternalError(c, "failed to save feedback", err)
			return
		}

		c.JSON(http.StatusCreated, CreateResponse{OK: true, Data: *created})
	}
}
