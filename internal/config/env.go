package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingCronSecret = errors.New("CRON_SECRET environment variable is required")
	ErrMissingAdminKey   = errors.New("ADMIN_KEY (or NEXT_PUBLIC_ADMIN_KEY) environment variable is required")
)

const (
	defaultPort            = "8080"
	defaultAIDailyLimit    = 50
	defaultGuestDailyLimit = 5
	defaultSchedulerURL    = "http://localhost:8080"
	defaultTriggerTimeout  = 60 * time.Second
)

// loads configuration from environment variables.
// a missing cron secret or admin key is fatal: the gates never run open.
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	cronSecret := strings.TrimSpace(getenv("CRON_SECRET"))
	if cronSecret == "" {
		return nil, ErrMissingCronSecret
	}

	adminKey := strings.TrimSpace(getenv("ADMIN_KEY"))
	if adminKey == "" {
		adminKey = strings.TrimSpace(getenv("NEXT_PUBLIC_ADMIN_KEY"))
	}

	if adminKey == "" {
		return nil, ErrMissingAdminKey
	}

	supabaseConnStr := getenv("SUPABASE_CONNECTION_STRING")
	if supabaseConnStr == "" {
		return nil, fmt.Errorf("SUPABASE_CONNECTION_STRING environment variable is required")
	}

	jwtSecret := getenv("SUPABASE_JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("SUPABASE_JWT_SECRET environment variable is required")
	}

	backend := strings.ToLower(getenv("USAGE_BACKEND"))
	switch backend {
	case "":
		backend = UsageBackendPostgres
	case UsageBackendPostgres, UsageBackendREST:
	default:
		return nil, fmt.Errorf("USAGE_BACKEND must be %q or %q, got %q", UsageBackendPostgres, UsageBackendREST, backend)
	}

	supabaseURL := getenv("SUPABASE_URL")
	serviceKey := getenv("SUPABASE_SERVICE_ROLE_KEY")

	if backend == UsageBackendREST && (supabaseURL == "" || serviceKey == "") {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required when USAGE_BACKEND=%s", UsageBackendREST)
	}

	aiLimit, err := intOrDefault(getenv("AI_DAILY_LIMIT"), defaultAIDailyLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid AI_DAILY_LIMIT: %w", err)
	}

	guestLimit, err := intOrDefault(getenv("GUEST_DAILY_LIMIT"), defaultGuestDailyLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid GUEST_DAILY_LIMIT: %w", err)
	}

	environment := getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	port := getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	return &Config{
		CronSecret:             cronSecret,
		AdminKey:               adminKey,
		SupabaseConnString:     supabaseConnStr,
		SupabaseURL:            supabaseURL,
		SupabaseServiceRoleKey: serviceKey,
		SupabaseJWTSecret:      jwtSecret,
		UsageBackend:           backend,
		RedisURL:               getenv("REDIS_URL"),
		AllowedOrigins:         splitList(getenv("ALLOWED_ORIGINS")),
		AIDailyLimit:           aiLimit,
		GuestDailyLimit:        guestLimit,
		Environment:            environment,
		LogLevel:               getenv("LOG_LEVEL"),
		Port:                   port,
	}, nil
}

// loads the subset cmd/scheduler needs
func LoadSchedulerEnvironment() (*SchedulerConfig, error) {
	if err := godotenv.Load(); err != nil {
		_ = err
	}

	return schedulerFromEnv(os.Getenv)
}

func schedulerFromEnv(getenv func(string) string) (*SchedulerConfig, error) {
	secret := strings.TrimSpace(getenv("CRON_SECRET"))
	if secret == "" {
		return nil, ErrMissingCronSecret
	}

	baseURL := strings.TrimRight(getenv("BASE_URL"), "/")
	if baseURL == "" {
		baseURL = defaultSchedulerURL
	}

	timeout := defaultTriggerTimeout
	if raw := getenv("CRON_TRIGGER_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CRON_TRIGGER_TIMEOUT: %w", err)
		}

		timeout = d
	}

	environment := getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	return &SchedulerConfig{
		BaseURL:     baseURL,
		CronSecret:  secret,
		Timeout:     timeout,
		Environment: environment,
		LogLevel:    getenv("LOG_LEVEL"),
	}, nil
}

func intOrDefault(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("must not be negative, got %d", n)
	}

	return n, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}
