package feedback

import "github.com/gin-gonic/gin"

// optionalAuth runs before middleware so signed-in callers are limited per user
func RegisterRoutes(router *gin.RouterGroup, creator Creator, optionalAuth gin.HandlerFunc, middleware ...gin.HandlerFunc) {
	group := router.Group("/feedback")
	group.Use(optionalAuth)
	group.Use(middleware...)

	group.POST("", Create(creator))
}
