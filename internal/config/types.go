package config

import "time"

// Config is built once at startup and injected; nothing else reads the environment.
type Config struct {
	CronSecret string
	AdminKey   string

	SupabaseConnString     string
	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseJWTSecret      string

	// "postgres" calls the usage functions over the pooler, "rest" over PostgREST
	UsageBackend string

	RedisURL       string
	AllowedOrigins []string

	AIDailyLimit    int
	GuestDailyLimit int

	Environment string
	LogLevel    string
	Port        string
}

// which usage backend talks to the counting procedures
const (
	UsageBackendPostgres = "postgres"
	UsageBackendREST     = "rest"
)

// IsProduction reports whether ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SchedulerConfig drives cmd/scheduler.
type SchedulerConfig struct {
	BaseURL     string
	CronSecret  string
	Timeout     time.Duration
	Environment string
	LogLevel    string
}

type Flags struct {
	Once     string
	Location string
}
