package config

import (
	"flag"
	"os"
)

// parses CLI flags for cmd/scheduler
func ParseSchedulerFlags() Flags {
	fs := flag.NewFlagSet("scheduler", flag.ExitOnError)
	once := fs.String("once", "", "fire a single job by name and exit")
	location := fs.String("tz", "UTC", "time zone the cron schedules are evaluated in")
	fs.Parse(os.Args[1:]) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Once: *once, Location: *location}
}
