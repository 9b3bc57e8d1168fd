package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Dataset
	DatasetURL          string        // HTTP(S) URL or local file path of the recommendations JSON
	DatasetTimeout      time.Duration // Optional HTTP client timeout for dataset fetches; 0 waits for the fetch to finish
	DatasetTokenURL     string        // OAuth2 token endpoint for protected dataset sources
	DatasetClientID     string
	DatasetClientSecret string

	// Database (optional, enables contact message and search lookup persistence)
	DatabaseURL string

	// Redis (optional, backs the rate limiter and sessions)
	RedisURL string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// Admin API OIDC bearer verification
	AdminOIDCIssuer   string
	AdminOIDCAudience string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitMax int // Requests per minute per IP

	// Email/SMTP
	SMTPEnabled        bool
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPFrom           string
	SMTPFromName       string
	SMTPTLS            string // "none", "tls", "starttls"
	ContactNotifyEmail string // Recipient of contact form notifications

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "TravelBloom"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                 getEnv("ENV", "development"),
		ServerAddr:          getEnv("SERVER_ADDR", ":3000"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:3000"),
		DatasetURL:          getEnv("DATASET_URL", "./data/travel_recommendation_api.json"),
		DatasetTimeout:      getEnvDuration("DATASET_TIMEOUT", 0),
		DatasetTokenURL:     getEnv("DATASET_TOKEN_URL", ""),
		DatasetClientID:     getEnv("DATASET_CLIENT_ID", ""),
		DatasetClientSecret: getEnv("DATASET_CLIENT_SECRET", ""),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		TLSEnabled:          getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:         getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:          getEnv("TLS_KEY_FILE", ""),
		AdminOIDCIssuer:     getEnv("ADMIN_OIDC_ISSUER", ""),
		AdminOIDCAudience:   getEnv("ADMIN_OIDC_AUDIENCE", ""),
		SessionSecret:       getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:         getEnv("CORS_ORIGINS", ""),
		RateLimitMax:        getEnvInt("RATE_LIMIT_MAX", 100),

		SMTPEnabled:        getEnv("SMTP_ENABLED", "") != "",
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:           getEnv("SMTP_FROM", ""),
		SMTPFromName:       getEnv("SMTP_FROM_NAME", "TravelBloom"),
		SMTPTLS:            getEnv("SMTP_TLS", "starttls"),
		ContactNotifyEmail: getEnv("CONTACT_NOTIFY_EMAIL", ""),

		SiteTitle:   getEnv("SITE_TITLE", "TravelBloom"),
		SiteTagline: getEnv("SITE_TAGLINE", "Explore dream destinations"),
		SiteFooter:  getEnv("SITE_FOOTER", "TravelBloom - Travel recommendations"),
		SiteLogoURL: getEnv("SITE_LOGO_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsDatabaseEnabled returns true if a Postgres connection string is configured.
func (c *Config) IsDatabaseEnabled() bool {
	return c.DatabaseURL != ""
}

// IsAdminAPIEnabled returns true if OIDC bearer verification is configured.
func (c *Config) IsAdminAPIEnabled() bool {
	return c.AdminOIDCIssuer != "" && c.AdminOIDCAudience != ""
}

// IsEmailEnabled returns true if SMTP is enabled and minimally configured.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPEnabled && c.SMTPHost != "" && c.SMTPFrom != ""
}

// UsesDatasetCredentials returns true if the dataset source requires OAuth2 client credentials.
func (c *Config) UsesDatasetCredentials() bool {
	return c.DatasetTokenURL != "" && c.DatasetClientID != ""
}
