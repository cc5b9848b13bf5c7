package config

import (
	"fmt"
	"strings"

	"github.com/codevine/trainhub/internal/pkg/env"
)

// Placeholder values shipped in .env.example. A production process refuses to
// start while any trigger secret still equals its placeholder.
const (
	PlaceholderCronSecret       = "change-me-cron-secret"
	PlaceholderRevalidateSecret = "change-me-revalidate-secret"
	PlaceholderWebhookSecret    = "change-me-webhook-secret"
)

// AppConfig holds the process configuration resolved once at startup.
type AppConfig struct {
	BaseURL     string
	Environment string
	Version     string

	CronSecret       string
	RevalidateSecret string
	WebhookSecret    string

	AdminUser         string
	AdminPasswordHash string

	PaystackSecretKey string
	PaystackPublicKey string
}

// Load resolves the configuration from the environment. In a production
// environment it fails when any trigger secret is missing or still set to its
// placeholder value.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		BaseURL:           strings.TrimRight(env.GetEnv("APP_BASE_URL", "http://localhost:4000"), "/"),
		Environment:       env.GetEnv("APP_ENV", "prod"),
		Version:           env.GetEnv("APP_VERSION", "dev"),
		CronSecret:        env.GetEnv("CRON_SECRET", PlaceholderCronSecret),
		RevalidateSecret:  env.GetEnv("REVALIDATE_SECRET", PlaceholderRevalidateSecret),
		WebhookSecret:     env.GetEnv("WEBHOOK_SECRET", PlaceholderWebhookSecret),
		AdminUser:         env.GetEnv("ADMIN_USER", "admin"),
		AdminPasswordHash: env.GetEnv("ADMIN_PASSWORD_HASH", ""),
		PaystackSecretKey: env.GetEnv("PAYSTACK_SECRET_KEY", ""),
		PaystackPublicKey: env.GetEnv("PAYSTACK_PUBLIC_KEY", ""),
	}

	if cfg.IsProduction() {
		if err := cfg.checkSecrets(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// IsProduction reports whether the process runs with a production flag.
func (c *AppConfig) IsProduction() bool {
	return c.Environment != "dev" && c.Environment != "test"
}

func (c *AppConfig) checkSecrets() error {
	checks := []struct {
		name        string
		value       string
		placeholder string
	}{
		{"CRON_SECRET", c.CronSecret, PlaceholderCronSecret},
		{"REVALIDATE_SECRET", c.RevalidateSecret, PlaceholderRevalidateSecret},
		{"WEBHOOK_SECRET", c.WebhookSecret, PlaceholderWebhookSecret},
	}
	for _, check := range checks {
		if check.value == "" || check.value == check.placeholder {
			return fmt.Errorf("%s must be set to a non-placeholder value in production", check.name)
		}
	}
	return nil
}

// MissingEnvVars lists recognized configuration keys that are unset. The
// health endpoint reports this informationally; it does not gate the overall
// status.
func (c *AppConfig) MissingEnvVars() []string {
	var missing []string
	required := map[string]string{
		"APP_BASE_URL":        env.GetEnv("APP_BASE_URL", ""),
		"CRON_SECRET":         env.GetEnv("CRON_SECRET", ""),
		"REVALIDATE_SECRET":   env.GetEnv("REVALIDATE_SECRET", ""),
		"WEBHOOK_SECRET":      env.GetEnv("WEBHOOK_SECRET", ""),
		"DB_USER":             env.GetEnv("DB_USER", ""),
		"DB_PASSWORD":         env.GetEnv("DB_PASSWORD", ""),
		"DB_NAME":             env.GetEnv("DB_NAME", ""),
		"PAYSTACK_SECRET_KEY": env.GetEnv("PAYSTACK_SECRET_KEY", ""),
		"PAYSTACK_PUBLIC_KEY": env.GetEnv("PAYSTACK_PUBLIC_KEY", ""),
	}
	for key, value := range required {
		if value == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
