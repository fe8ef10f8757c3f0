package cron

import (
	"net/http"

	"codeberg.org/daybook/server/internal/errors"
	"codeberg.org/daybook/server/internal/jobs"
	"github.com/gin-gonic/gin"
)

// RunJob godoc
// @Summary Run a scheduled job
// @Description Invoked by the external scheduler. Runs the job once and reports how many items it processed.
// @Tags cron
// @Produce json
// @Success 200 {object} JobResponse
// @Failure 401 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /api/cron/{job} [get]
// @Security BearerAuth
func RunJob(job jobs.Job) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := jobs.Execute(c.Request.Context(), job)

		if out.State == jobs.StateFailed {
			errors.Failed(c, out.Err) // Execute logged it
			return
		}

		c.JSON(http.StatusOK, JobResponse{
			OK:        true,
			Processed: out.Processed,
		})
	}
}
