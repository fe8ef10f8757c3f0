package auth

import (
	"strings"

	"codeberg.org/daybook/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// requires a valid bearer access token and adds user info to context
func (v *Verifier) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			errors.AbortUnauthorized(c)
			return
		}

		claims, err := v.Verify(token)
		if err != nil {
			errors.AbortUnauthorized(c)
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextUserEmail, claims.Email)

		c.Next()
	}
}

// validates the token if present but doesn't require it
func (v *Verifier) OptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := v.Verify(token); err == nil {
				c.Set(ContextUserID, claims.Subject)
				c.Set(ContextUserEmail, claims.Email)
			}
		}

		c.Next()
	}
}

// extracts user_id from context after Middleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserID)
	return userID, userID != ""
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
