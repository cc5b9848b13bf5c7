package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevine/trainhub/internal/pkg/env"
)

func withEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	previous := env.Env
	env.Env = vars
	t.Cleanup(func() { env.Env = previous })
}

func TestLoadRefusesPlaceholderSecretsInProduction(t *testing.T) {
	withEnv(t, map[string]string{
		"APP_ENV":           "prod",
		"CRON_SECRET":       PlaceholderCronSecret,
		"REVALIDATE_SECRET": "real-revalidate-secret",
		"WEBHOOK_SECRET":    "real-webhook-secret",
	})

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CRON_SECRET")
}

func TestLoadRefusesMissingSecretsInProduction(t *testing.T) {
	withEnv(t, map[string]string{
		"APP_ENV":           "prod",
		"CRON_SECRET":       "real-cron-secret",
		"REVALIDATE_SECRET": "real-revalidate-secret",
	})

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEBHOOK_SECRET")
}

func TestLoadAcceptsPlaceholdersInDev(t *testing.T) {
	withEnv(t, map[string]string{"APP_ENV": "dev"})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, PlaceholderCronSecret, cfg.CronSecret)
	assert.False(t, cfg.IsProduction())
}

func TestLoadProduction(t *testing.T) {
	withEnv(t, map[string]string{
		"APP_ENV":           "prod",
		"APP_BASE_URL":      "https://trainhub.example/",
		"CRON_SECRET":       "real-cron-secret",
		"REVALIDATE_SECRET": "real-revalidate-secret",
		"WEBHOOK_SECRET":    "real-webhook-secret",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://trainhub.example", cfg.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, "real-cron-secret", cfg.CronSecret)
}

func TestMissingEnvVars(t *testing.T) {
	withEnv(t, map[string]string{
		"APP_ENV":      "dev",
		"APP_BASE_URL": "http://localhost:4000",
		"CRON_SECRET":  "x",
	})

	cfg, err := Load()
	require.NoError(t, err)
	missing := cfg.MissingEnvVars()
	assert.NotContains(t, missing, "APP_BASE_URL")
	assert.NotContains(t, missing, "CRON_SECRET")
	assert.Contains(t, missing, "REVALIDATE_SECRET")
	assert.Contains(t, missing, "DB_NAME")
}
