package cron

import (
	"codeberg.org/daybook/server/internal/gate"
	"codeberg.org/daybook/server/internal/jobs"
	"github.com/gin-gonic/gin"
)

// mounts GET /<job> for every job behind the bearer gate
func RegisterRoutes(router *gin.RouterGroup, cronGate *gate.Gate, all []jobs.Job, middleware ...gin.HandlerFunc) {
	group := router.Group("/cron")
	group.Use(middleware...)
	group.Use(cronGate.RequireBearer())

	for _, job := range all {
		group.GET("/"+job.Name, RunJob(job))
	}
}
