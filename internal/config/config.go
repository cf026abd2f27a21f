// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// MinTokenSecretLength is the minimum required length for the token signing
// secret. HMAC-SHA256 keys shorter than the hash size weaken the signature.
const MinTokenSecretLength = 32

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath      string `env:"SITEAPI_DB_PATH" envDefault:"./data/site.db"`
	TokenSecret string `env:"SITEAPI_TOKEN_SECRET,required"`
	ServerHost  string `env:"SITEAPI_SERVER_HOST" envDefault:"localhost"`
	ServerPort  int    `env:"SITEAPI_SERVER_PORT" envDefault:"3000"`
	Env         string `env:"SITEAPI_ENV" envDefault:"development"`
	LogLevel    string `env:"SITEAPI_LOG_LEVEL" envDefault:"info"`
	UploadsDir  string `env:"SITEAPI_UPLOADS_DIR" envDefault:"./uploads"`

	// BaseURL is the public address used to build upload retrieval URLs.
	// Defaults to http://<host>:<port> when unset.
	BaseURL string `env:"SITEAPI_BASE_URL"`

	// Admin credentials for the single administrative account.
	AdminUser     string `env:"SITEAPI_ADMIN_USER,required"`
	AdminPassword string `env:"SITEAPI_ADMIN_PASSWORD,required"`

	// TokenTTL bounds issued token lifetime. Zero means tokens never expire.
	TokenTTL time.Duration `env:"SITEAPI_TOKEN_TTL" envDefault:"0"`

	// AllowedOrigins is the cross-origin allow-list: the public site and the
	// admin console, each in local-dev and production variants.
	AllowedOrigins []string `env:"SITEAPI_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://admin.localhost:5173,https://balticclima.com,https://www.balticclima.com,https://admin.balticclima.com"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// PublicBaseURL returns the configured base URL, or a default derived from the
// server address, without a trailing slash.
func (c Config) PublicBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return "http://" + c.ServerAddr()
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.TokenSecret) < MinTokenSecretLength {
		return nil, fmt.Errorf("SITEAPI_TOKEN_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinTokenSecretLength, len(cfg.TokenSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.TokenSecret == weak {
			return nil, fmt.Errorf("SITEAPI_TOKEN_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.TokenSecret) {
		slog.Warn("SITEAPI_TOKEN_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
