package main

import (
	"codeberg.org/daybook/server/daybook/feedback"
	"codeberg.org/daybook/server/internal/auth"
	"codeberg.org/daybook/server/internal/config"
	"codeberg.org/daybook/server/internal/gate"
	"codeberg.org/daybook/server/internal/jobs"
	"codeberg.org/daybook/server/internal/usage"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// holds all dependencies and state for the API server
type Server struct {
	db     *pgxpool.Pool
	redis  *redis.Client // nil when REDIS_URL is unset
	config *config.Config
	router *gin.Engine

	cronGate  *gate.Gate
	adminGate *gate.Gate
	verifier  *auth.Verifier

	feedbackRepo *feedback.Repository
	usageMeter   *usage.Meter
	guestMeter   *usage.Meter // nil without redis
	jobs         []jobs.Job
}
