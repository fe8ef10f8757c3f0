package health

import (
	"context"
	"net/http"
	"time"

	"codeberg.org/daybook/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const readyTimeout = 3 * time.Second

// returns the server health status
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: serviceName,
		Version: version,
	})
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}

// reports ready only when the database answers
func Ready(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			errors.ServiceUnavailable(c, "database unavailable", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Status:  "ready",
			Service: serviceName,
			Version: version,
		})
	}
}
