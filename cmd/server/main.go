package main

import (
	"context"
	stderrors "errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/daybook/server/internal/config"
	"codeberg.org/daybook/server/internal/errors"
	"codeberg.org/daybook/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// @title Daybook API
// @version 1.0
// @description Privileged and metered endpoints of the daybook planner:
// @description scheduled job triggers, admin feedback review, AI usage metering
// @description and feedback submission.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Supabase access token, or the cron secret for /api/cron. Format: Bearer {token}

// @securityDefinitions.apikey AdminKeyAuth
// @in header
// @name x-admin-key

func main() {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}

	logger.Configure(cfg.Environment, cfg.LogLevel)
	errors.SetProduction(cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting daybook server", "environment", cfg.Environment)

	srv, err := NewServer(context.Background(), cfg)
	if err != nil {
		logger.FatalErr(err, "failed to create server")
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			logger.FatalErr(err, "server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// in-flight job invocations get the full window
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.ErrorErr(err, "server forced to shutdown")
	}

	srv.Close()

	logger.Info("server stopped")
}
