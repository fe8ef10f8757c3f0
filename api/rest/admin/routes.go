package admin

import (
	"codeberg.org/daybook/server/internal/gate"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, adminGate *gate.Gate, lister FeedbackLister, middleware ...gin.HandlerFunc) {
	admin := router.Group("/admin")
	admin.Use(middleware...)
	admin.Use(adminGate.RequireHeader(gate.AdminKeyHeader))

	admin.GET("/feedback", ListFeedback(lister))
}
