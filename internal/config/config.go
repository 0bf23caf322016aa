package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// HMAC is the only signing family the portal supports; the secret is a
// shared key, not a keypair.
var allowedJWTAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

type Config struct {
	HTTPPort    string
	DatabaseDSN string

	JWTSecret    string
	JWTAlgorithm string
	TokenTTL     time.Duration

	RecaptchaSiteKey   string
	RecaptchaSecretKey string

	AdminEmail    string
	AdminPassword string

	TemplateDir string
	StaticDir   string
}

// Load builds the configuration from the environment. A .env file in the
// working directory is read first when present. Missing required keys are
// reported as errors so the process refuses to start instead of running
// with an empty signing secret.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:        getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=shipment_portal port=5432 sslmode=disable"),
		JWTSecret:          os.Getenv("JWT_SECRET_KEY"),
		JWTAlgorithm:       getEnv("JWT_ALGORITHM", "HS256"),
		RecaptchaSiteKey:   os.Getenv("RECAPTCHA_SITE_KEY"),
		RecaptchaSecretKey: os.Getenv("RECAPTCHA_SECRET_KEY"),
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		TemplateDir:        getEnv("TEMPLATE_DIR", "./web/templates"),
		StaticDir:          getEnv("STATIC_DIR", "./web/static"),
	}

	required := []struct{ key, val string }{
		{"JWT_SECRET_KEY", cfg.JWTSecret},
		{"RECAPTCHA_SITE_KEY", cfg.RecaptchaSiteKey},
		{"RECAPTCHA_SECRET_KEY", cfg.RecaptchaSecretKey},
		{"ADMIN_EMAIL", cfg.AdminEmail},
		{"ADMIN_PASSWORD", cfg.AdminPassword},
	}
	for _, r := range required {
		if r.val == "" {
			return nil, fmt.Errorf("environment variable %s is required", r.key)
		}
	}

	if !allowedJWTAlgorithms[cfg.JWTAlgorithm] {
		return nil, fmt.Errorf("JWT_ALGORITHM %q is not supported (use HS256, HS384 or HS512)", cfg.JWTAlgorithm)
	}

	minutes := 10
	if raw := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m <= 0 {
			return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer, got %q", raw)
		}
		minutes = m
	}
	cfg.TokenTTL = time.Duration(minutes) * time.Minute

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
