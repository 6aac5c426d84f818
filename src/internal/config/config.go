package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=hortivise_payments;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"

type Config struct {
	DatabaseDSN          string
	MigrationsDir        string
	Port                 string
	StripeAPIKey         string
	CheckoutSuccessURL   string
	CheckoutCancelURL    string
	OnboardingRefreshURL string
	OnboardingReturnURL  string
	DefaultCurrency      string
	DefaultCountry       string
	AccessTokenTTL       time.Duration
	ShutdownTimeout      time.Duration
	PlatformFeePercent   float64
	PartialRefundPercent float64
}

// Load reads configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables, in increasing priority.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file := strings.TrimSpace(v.GetString("config_file")); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", file, err)
		}
	}

	cfg := Config{
		DatabaseDSN:          normalizeConnectionString(strings.TrimSpace(v.GetString("database_dsn"))),
		MigrationsDir:        strings.TrimSpace(v.GetString("migrations_dir")),
		Port:                 strings.TrimSpace(v.GetString("port")),
		StripeAPIKey:         strings.TrimSpace(v.GetString("stripe_api_key")),
		CheckoutSuccessURL:   strings.TrimSpace(v.GetString("checkout_success_url")),
		CheckoutCancelURL:    strings.TrimSpace(v.GetString("checkout_cancel_url")),
		OnboardingRefreshURL: strings.TrimSpace(v.GetString("onboarding_refresh_url")),
		OnboardingReturnURL:  strings.TrimSpace(v.GetString("onboarding_return_url")),
		DefaultCurrency:      strings.ToLower(strings.TrimSpace(v.GetString("default_currency"))),
		DefaultCountry:       strings.ToUpper(strings.TrimSpace(v.GetString("default_country"))),
		AccessTokenTTL:       v.GetDuration("access_token_ttl"),
		ShutdownTimeout:      v.GetDuration("shutdown_timeout"),
		PlatformFeePercent:   v.GetFloat64("platform_fee_percent"),
		PartialRefundPercent: v.GetFloat64("partial_refund_percent"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("config_file", "")
	v.SetDefault("database_dsn", defaultConnectionString)
	v.SetDefault("migrations_dir", filepath.Join("src", "migrations"))
	v.SetDefault("port", "3333")
	v.SetDefault("stripe_api_key", "")
	v.SetDefault("checkout_success_url", "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}")
	v.SetDefault("checkout_cancel_url", "http://localhost:3000/cancel")
	v.SetDefault("onboarding_refresh_url", "http://localhost:3000/onboarding/refresh")
	v.SetDefault("onboarding_return_url", "http://localhost:3000/onboarding/return")
	v.SetDefault("default_currency", "usd")
	v.SetDefault("default_country", "US")
	v.SetDefault("access_token_ttl", "48h")
	v.SetDefault("shutdown_timeout", "15s")
	v.SetDefault("platform_fee_percent", 10)
	v.SetDefault("partial_refund_percent", 90)
}

func (c Config) validate() error {
	var errs []string

	if c.Port == "" {
		errs = append(errs, "port is required")
	}
	if len(c.DefaultCurrency) != 3 {
		errs = append(errs, "default_currency must be 3 characters")
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, "access_token_ttl must be positive")
	}
	if c.PlatformFeePercent <= 0 || c.PlatformFeePercent > 100 {
		errs = append(errs, "platform_fee_percent must be greater than 0 and at most 100")
	}
	if c.PartialRefundPercent <= 1 || c.PartialRefundPercent > 100 {
		errs = append(errs, "partial_refund_percent must be greater than 1 and at most 100")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

func normalizeConnectionString(raw string) string {
	if strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://") {
		return raw
	}

	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
