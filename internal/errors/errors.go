package errors

import (
	"net/http"

	"codeberg.org/daybook/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc.
//     These handle both logging and the JSON response.
//   - Use logger.ErrorErr() only where processing continues (metering, scheduler).
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error.
//
// For middleware:
//   - Use the Abort* variants so later handlers never run.
//
// For services/repositories/internal packages:
//   - Return wrapped errors with fmt.Errorf("context: %w", err).
//   - Do not log in non-handler code, the caller decides.

// writes 401 {"ok":false,"error":"Unauthorized"}
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Envelope{Error: MsgUnauthorized})
}

// Unauthorized for middleware, stops the chain
func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Error: MsgUnauthorized})
}

// returns a 400 with an optional sanitized cause appended
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = MsgBadRequest
	}

	if err != nil {
		message = message + ": " + classifyError(err).sanitized
	}

	c.JSON(http.StatusBadRequest, Envelope{Error: message})
}

// returns a 400 for binding failures
func ValidationError(c *gin.Context, err error) {
	message := MsgValidation
	if err != nil {
		message = message + ": " + classifyError(err).sanitized
	}

	c.JSON(http.StatusBadRequest, Envelope{Error: message})
}

func NotFound(c *gin.Context, resource string) {
	message := MsgNotFound
	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, Envelope{Error: message})
}

func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = MsgTooManyRequests
	}

	c.JSON(http.StatusTooManyRequests, Envelope{Error: message})
}

// TooManyRequests for middleware
func AbortTooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = MsgTooManyRequests
	}

	c.AbortWithStatusJSON(http.StatusTooManyRequests, Envelope{Error: message})
}

// logs err with request context and writes 503
func ServiceUnavailable(c *gin.Context, message string, err error) {
	if message == "" {
		message = MsgUnavailable
	}

	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusServiceUnavailable, Envelope{Error: message})
}

// logs the full error server-side and writes 500 with the sanitized message.
// outside production the body carries err.Error() unchanged.
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = MsgServerError
	}

	info := classifyError(err)

	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"category", info.category,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	body := info.sanitized
	if body == "" {
		body = message
	}

	c.JSON(http.StatusInternalServerError, Envelope{Error: body})
}

// writes 500 with err's own message, unsanitized, for an error the caller
// already logged. job failures report their message this way.
func Failed(c *gin.Context, err error) {
	body := MsgServerError
	if err != nil && err.Error() != "" {
		body = err.Error()
	}

	c.JSON(http.StatusInternalServerError, Envelope{Error: body})
}
