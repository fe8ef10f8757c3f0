package main

import (
	"codeberg.org/daybook/server/api/rest/admin"
	"codeberg.org/daybook/server/api/rest/client"
	cronapi "codeberg.org/daybook/server/api/rest/cron"
	feedbackapi "codeberg.org/daybook/server/api/rest/feedback"
	"codeberg.org/daybook/server/api/rest/health"
	usageapi "codeberg.org/daybook/server/api/rest/usage"
	"codeberg.org/daybook/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.GET("/health", health.Handler)
	router.GET("/ready", health.Ready(server.db))

	privileged := ratelimit.MustNew("privileged", ratelimit.PolicyPrivileged)

	api := router.Group("/api")
	{
		cronapi.RegisterRoutes(api, server.cronGate, server.jobs, privileged)
		admin.RegisterRoutes(api, server.adminGate, server.feedbackRepo, privileged)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/ping", health.PingHandler)

		usageapi.RegisterRoutes(v1, server.usageMeter, server.guestMeter,
			server.verifier.Middleware(),
			ratelimit.MustNew("usage", ratelimit.PolicyUsage),
		)
		feedbackapi.RegisterRoutes(v1, server.feedbackRepo,
			server.verifier.OptionalMiddleware(),
			ratelimit.MustNew("feedback", ratelimit.PolicyFeedback),
		)
		client.RegisterRoutes(v1)
	}
}
