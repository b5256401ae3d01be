package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"chatflows/internal/domain"
)

const (
	defaultPort          = "8080"
	defaultFromEmail     = "noreply@ai-chatflows.com"
	defaultSourceTag     = "ai-chatflows.com"
	defaultEmailCooldown = "5m"
	defaultProbeTimeout  = "10s"

	defaultCheckoutStarter = "https://buy.stripe.com/9AQbKU5A3dKk4is5kO"
	defaultCheckoutPro     = "https://buy.stripe.com/fZe6s24dV8p80NOdQQ"
	defaultCheckoutProPlus = "https://buy.stripe.com/28EeVe9V06nY4is59l8Vi02"
)

// Config is everything the pipeline needs from the environment. Load fails
// fast when a required variable is absent so a misconfigured process never
// reaches its first request.
type Config struct {
	Port        string
	DatabaseURL string

	SupabaseURL        string
	SupabaseServiceKey string

	ResendAPIKey string
	FromEmail    string
	AdminEmail   string

	StripeSecretKey     string
	StripeWebhookSecret string
	CheckoutLinks       map[domain.Plan]string

	InternalToken string

	SourceTag     string
	EmailCooldown time.Duration
	ProbeTimeout  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", defaultPort),
		DatabaseURL:         strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SupabaseURL:         strings.TrimSpace(os.Getenv("SUPABASE_URL")),
		SupabaseServiceKey:  strings.TrimSpace(os.Getenv("SUPABASE_SERVICE_KEY")),
		ResendAPIKey:        strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
		FromEmail:           strings.TrimSpace(getEnv("FROM_EMAIL", defaultFromEmail)),
		AdminEmail:          strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		StripeSecretKey:     strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		StripeWebhookSecret: strings.TrimSpace(os.Getenv("STRIPE_WEBHOOK_SECRET")),
		InternalToken:       strings.TrimSpace(os.Getenv("CHATFLOWS_INTERNAL_TOKEN")),
		SourceTag:           getEnv("SOURCE_TAG", defaultSourceTag),
		CheckoutLinks: map[domain.Plan]string{
			domain.PlanStarter: getEnv("STRIPE_CHECKOUT_URL_STARTER", defaultCheckoutStarter),
			domain.PlanPro:     getEnv("STRIPE_CHECKOUT_URL_PRO", defaultCheckoutPro),
			domain.PlanProPlus: getEnv("STRIPE_CHECKOUT_URL_PRO_PLUS", defaultCheckoutProPlus),
		},
	}

	var err error
	cfg.EmailCooldown, err = parseDurationEnv("EMAIL_COOLDOWN", defaultEmailCooldown)
	if err != nil {
		return nil, err
	}
	cfg.ProbeTimeout, err = parseDurationEnv("ATTACHMENT_PROBE_TIMEOUT", defaultProbeTimeout)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	required := []struct {
		name  string
		value string
	}{
		{"DATABASE_URL", cfg.DatabaseURL},
		{"SUPABASE_URL", cfg.SupabaseURL},
		{"SUPABASE_SERVICE_KEY", cfg.SupabaseServiceKey},
		{"RESEND_API_KEY", cfg.ResendAPIKey},
		{"ADMIN_EMAIL", cfg.AdminEmail},
		{"STRIPE_WEBHOOK_SECRET", cfg.StripeWebhookSecret},
	}
	for _, v := range required {
		if v.value == "" {
			return fmt.Errorf("%s must be set", v.name)
		}
	}
	if !strings.HasPrefix(cfg.ResendAPIKey, "re_") {
		return fmt.Errorf("RESEND_API_KEY looks invalid (expected re_ prefix)")
	}
	if !strings.Contains(cfg.AdminEmail, "@") {
		return fmt.Errorf("ADMIN_EMAIL must be a valid email address")
	}
	if cfg.EmailCooldown <= 0 {
		return fmt.Errorf("EMAIL_COOLDOWN must be > 0")
	}
	if cfg.ProbeTimeout <= 0 {
		return fmt.Errorf("ATTACHMENT_PROBE_TIMEOUT must be > 0")
	}
	return nil
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
