package usage

import (
	"codeberg.org/daybook/server/internal/usage"
	"github.com/gin-gonic/gin"
)

// guests may be nil when no redis is configured; the guest endpoints then
// report zero usage. requireAuth runs before middleware so per-user limits
// see the user id.
func RegisterRoutes(router *gin.RouterGroup, users, guests *usage.Meter, requireAuth gin.HandlerFunc, middleware ...gin.HandlerFunc) {
	group := router.Group("/usage")

	signedIn := group.Group("")
	signedIn.Use(requireAuth)
	signedIn.Use(middleware...)
	{
		signedIn.GET("/today", Today(users))
		signedIn.POST("/bump", Bump(users))
	}

	anonymous := group.Group("/guest")
	anonymous.Use(middleware...)
	{
		anonymous.GET("", Guest(guests))
		anonymous.POST("/bump", GuestBump(guests))
	}
}
