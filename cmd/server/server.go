package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/daybook/server/daybook/feedback"
	"codeberg.org/daybook/server/internal/auth"
	"codeberg.org/daybook/server/internal/config"
	"codeberg.org/daybook/server/internal/gate"
	"codeberg.org/daybook/server/internal/jobs"
	"codeberg.org/daybook/server/internal/logger"
	"codeberg.org/daybook/server/internal/storage"
	"codeberg.org/daybook/server/internal/supabase"
	"codeberg.org/daybook/server/internal/usage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	cronGate, err := gate.New("cron", cfg.CronSecret)
	if err != nil {
		return nil, fmt.Errorf("cron gate: %w", err)
	}

	adminGate, err := gate.New("admin", cfg.AdminKey)
	if err != nil {
		return nil, fmt.Errorf("admin gate: %w", err)
	}

	verifier, err := auth.NewVerifier(cfg.SupabaseJWTSecret)
	if err != nil {
		return nil, fmt.Errorf("token verifier: %w", err)
	}

	db, err := storage.NewPool(ctx, cfg.SupabaseConnString)
	if err != nil {
		return nil, err
	}

	counter, err := newUsageCounter(cfg, db)
	if err != nil {
		db.Close()
		return nil, err
	}

	server := &Server{
		db:           db,
		config:       cfg,
		cronGate:     cronGate,
		adminGate:    adminGate,
		verifier:     verifier,
		feedbackRepo: feedback.NewRepository(db),
		usageMeter:   usage.NewMeter("ai", counter, cfg.AIDailyLimit),
		jobs:         jobs.Defaults(),
	}

	// guest counters are optional, the server runs without redis
	if cfg.RedisURL != "" {
		client, err := storage.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.ErrorErr(err, "redis unavailable, guest usage disabled")
		} else {
			server.redis = client
			server.guestMeter = usage.NewMeter("guest", usage.NewRedisCounter(client), cfg.GuestDailyLimit)
		}
	}

	server.router = newRouter(cfg)
	RegisterRoutes(server.router, server)

	logger.Info("server initialized",
		"usage_backend", cfg.UsageBackend,
		"ai_daily_limit", cfg.AIDailyLimit,
		"guest_usage", server.guestMeter != nil,
		"jobs", len(server.jobs),
	)

	return server, nil
}

// picks the transport to the counting procedures
func newUsageCounter(cfg *config.Config, db *pgxpool.Pool) (usage.Counter, error) {
	if cfg.UsageBackend != config.UsageBackendREST {
		return usage.NewPostgresCounter(db), nil
	}

	client, err := supabase.New(supabase.Config{
		URL:        cfg.SupabaseURL,
		ServiceKey: cfg.SupabaseServiceRoleKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return usage.NewRPCCounter(client), nil
}

func newRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(corsMiddleware(cfg.AllowedOrigins))

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "x-admin-key", "x-guest-id", logger.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", logger.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = origins
	}

	return cors.New(corsConfig)
}

// releases pools and clients
func (s *Server) Close() {
	if s.redis != nil {
		s.redis.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	if s.db != nil {
		s.db.Close()
	}
}
