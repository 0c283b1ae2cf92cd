package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Verification policies for the Turnstile step.
const (
	PolicyStrict  = "strict"
	PolicyLenient = "lenient"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string `env:"ENV" envDefault:"development"`
	Port           string `env:"API_PORT" envDefault:"8080"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string `env:"LOG_FILE"`

	// Turnstile Configuration
	TurnstileSecretKey string `env:"TURNSTILE_SECRET_KEY"`
	TurnstileSiteKey   string `env:"TURNSTILE_SITE_KEY"`
	TurnstilePolicy    string `env:"TURNSTILE_POLICY" envDefault:"strict"`

	// Email Configuration
	ResendAPIKey string `env:"RESEND_API_KEY"`
	ContactFrom  string `env:"CONTACT_FROM" envDefault:"Avers Financial <contact@aversacc.com>"`
	ContactTo    string `env:"CONTACT_TO" envDefault:"aversacc@gmail.com"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists. Try the environment-specific file first.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.TurnstilePolicy != PolicyStrict && cfg.TurnstilePolicy != PolicyLenient {
		return nil, fmt.Errorf("invalid TURNSTILE_POLICY %q: must be %q or %q",
			cfg.TurnstilePolicy, PolicyStrict, PolicyLenient)
	}

	// Warn about missing credentials early; the external calls themselves
	// fail with a clear error if these stay unset.
	for _, v := range []string{"TURNSTILE_SECRET_KEY", "RESEND_API_KEY"} {
		if os.Getenv(v) == "" {
			fmt.Printf("Warning: required environment variable %s is not set or empty\n", v)
		}
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}
