package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/daybook/server/internal/config"
	"codeberg.org/daybook/server/internal/jobs"
	"codeberg.org/daybook/server/internal/logger"
	"codeberg.org/daybook/server/internal/scheduler"
)

func main() {
	flags := config.ParseSchedulerFlags()

	cfg, err := config.LoadSchedulerEnvironment()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}

	logger.Configure(cfg.Environment, cfg.LogLevel)

	loc, err := time.LoadLocation(flags.Location)
	if err != nil {
		logger.FatalErr(err, "invalid time zone", "tz", flags.Location)
	}

	all := jobs.Defaults()
	sched := scheduler.New(scheduler.NewHTTPTrigger(cfg), loc, cfg.Timeout)

	// -once fires a single job and exits, for manual runs
	if flags.Once != "" {
		if _, ok := jobs.Find(all, flags.Once); !ok {
			logger.Fatal("unknown job", "job", flags.Once)
		}

		if !sched.FireOnce(context.Background(), flags.Once) {
			os.Exit(1)
		}

		return
	}

	if err := sched.Register(all); err != nil {
		logger.FatalErr(err, "failed to register jobs")
	}

	sched.Start()
	logger.Info("scheduler started", "target", cfg.BaseURL, "jobs", sched.Entries(), "tz", loc.String())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("stopping scheduler")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	sched.Stop(ctx)

	logger.Info("scheduler stopped")
}
