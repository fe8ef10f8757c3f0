package gate

import (
	"codeberg.org/daybook/server/internal/errors"
	"codeberg.org/daybook/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// rejects requests whose Authorization header is not "Bearer <secret>"
func (g *Gate) RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := g.CheckBearer(c.GetHeader("Authorization")); err != nil {
			g.reject(c, err)
			return
		}

		c.Next()
	}
}

// rejects requests whose header does not carry the secret
func (g *Gate) RequireHeader(header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := g.CheckKey(c.GetHeader(header)); err != nil {
			g.reject(c, err)
			return
		}

		c.Next()
	}
}

func (g *Gate) reject(c *gin.Context, reason error) {
	logger.FromContext(c.Request.Context()).Warn("gate rejected request",
		"gate", g.name,
		"reason", reason.Error(),
		"path", c.Request.URL.Path,
		"client_ip", c.ClientIP(),
	)

	errors.AbortUnauthorized(c)
}
