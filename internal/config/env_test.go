package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func baseEnv() map[string]string {
	return map[string]string{
		"CRON_SECRET":                "s3cr3t",
		"ADMIN_KEY":                  "admin-key",
		"SUPABASE_CONNECTION_STRING": "postgres://localhost:5432/daybook",
		"SUPABASE_JWT_SECRET":        "jwt-secret",
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := fromEnv(envMap(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, "s3cr3t", cfg.CronSecret)
	assert.Equal(t, "admin-key", cfg.AdminKey)
	assert.Equal(t, UsageBackendPostgres, cfg.UsageBackend)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultAIDailyLimit, cfg.AIDailyLimit)
	assert.Equal(t, defaultGuestDailyLimit, cfg.GuestDailyLimit)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_MissingCronSecretIsFatal(t *testing.T) {
	env := baseEnv()
	delete(env, "CRON_SECRET")

	_, err := fromEnv(envMap(env))
	assert.ErrorIs(t, err, ErrMissingCronSecret)

	// whitespace-only counts as missing
	env["CRON_SECRET"] = "   "
	_, err = fromEnv(envMap(env))
	assert.ErrorIs(t, err, ErrMissingCronSecret)
}

func TestFromEnv_AdminKeyFallback(t *testing.T) {
	env := baseEnv()
	delete(env, "ADMIN_KEY")
	env["NEXT_PUBLIC_ADMIN_KEY"] = "public-admin"

	cfg, err := fromEnv(envMap(env))
	require.NoError(t, err)
	assert.Equal(t, "public-admin", cfg.AdminKey)

	delete(env, "NEXT_PUBLIC_ADMIN_KEY")
	_, err = fromEnv(envMap(env))
	assert.ErrorIs(t, err, ErrMissingAdminKey)
}

func TestFromEnv_RESTBackendNeedsCredentials(t *testing.T) {
	env := baseEnv()
	env["USAGE_BACKEND"] = "rest"

	_, err := fromEnv(envMap(env))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_URL")

	env["SUPABASE_URL"] = "https://project.supabase.co"
	env["SUPABASE_SERVICE_ROLE_KEY"] = "service-role"

	cfg, err := fromEnv(envMap(env))
	require.NoError(t, err)
	assert.Equal(t, UsageBackendREST, cfg.UsageBackend)
}

func TestFromEnv_RejectsUnknownBackend(t *testing.T) {
	env := baseEnv()
	env["USAGE_BACKEND"] = "sqlite"

	_, err := fromEnv(envMap(env))
	assert.Error(t, err)
}

func TestFromEnv_Limits(t *testing.T) {
	env := baseEnv()
	env["AI_DAILY_LIMIT"] = "200"
	env["GUEST_DAILY_LIMIT"] = "0"

	cfg, err := fromEnv(envMap(env))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.AIDailyLimit)
	assert.Equal(t, 0, cfg.GuestDailyLimit)

	env["AI_DAILY_LIMIT"] = "-1"
	_, err = fromEnv(envMap(env))
	assert.Error(t, err)

	env["AI_DAILY_LIMIT"] = "lots"
	_, err = fromEnv(envMap(env))
	assert.Error(t, err)
}

func TestFromEnv_AllowedOrigins(t *testing.T) {
	env := baseEnv()
	env["ALLOWED_ORIGINS"] = "https://daybook.app, http://localhost:3000,,"

	cfg, err := fromEnv(envMap(env))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://daybook.app", "http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestSchedulerFromEnv(t *testing.T) {
	_, err := schedulerFromEnv(envMap(map[string]string{}))
	assert.ErrorIs(t, err, ErrMissingCronSecret)

	cfg, err := schedulerFromEnv(envMap(map[string]string{
		"CRON_SECRET":          "s3cr3t",
		"BASE_URL":             "https://daybook.app/",
		"CRON_TRIGGER_TIMEOUT": "5s",
	}))
	require.NoError(t, err)
	assert.Equal(t, "https://daybook.app", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestFromEnv_EnvironmentAndLogLevel(t *testing.T) {
	env := baseEnv()
	env["ENVIRONMENT"] = "production"
	env["LOG_LEVEL"] = "warn"

	cfg, err := fromEnv(envMap(env))
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "warn", cfg.LogLevel)

	sched, err := schedulerFromEnv(envMap(map[string]string{"CRON_SECRET": "s3cr3t", "LOG_LEVEL": "debug"}))
	require.NoError(t, err)
	assert.Equal(t, "development", sched.Environment)
	assert.Equal(t, "debug", sched.LogLevel)
}
