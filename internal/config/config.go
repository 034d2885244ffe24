package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	BasePath         string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

// ProviderConfig holds the identity of the simulated banking provider.
type ProviderConfig struct {
	Name             string
	Version          string
	Description      string
	DocumentationURL string
	PDFBaseURL       string
}

type SecurityConfig struct {
	// Tenants maps API client IDs to their client secrets.
	Tenants            map[string]string
	RateLimitPerSecond int
	RateLimitBurst     int
}

// defaultTenants are the demo credential pairs of the simulator. Overridable
// via CLIENT_CREDENTIALS ("id:secret,id:secret").
var defaultTenants = map[string]string{
	"client_123456": "secret_abcdef123456",
	"client_654321": "secret_fedcba654321",
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			BasePath:     getEnv("BASE_PATH", "/sahl-bank-api"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Provider: ProviderConfig{
			Name:             getEnv("PROVIDER_NAME", "Banque Sahl Al-Maghrib API"),
			Version:          getEnv("PROVIDER_VERSION", "1.0.0"),
			Description:      getEnv("PROVIDER_DESCRIPTION", "API bancaire simulée pour les tests au Maroc"),
			DocumentationURL: getEnv("PROVIDER_DOCS_URL", "https://docs.sahlfinancial.com"),
			PDFBaseURL:       getEnv("STATEMENT_PDF_BASE_URL", "https://api.sahlfinancial.com"),
		},
		Security: SecurityConfig{
			Tenants:            loadTenants(),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 25),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 50),
		},
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins()

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadTenants parses CLIENT_CREDENTIALS as comma-separated id:secret pairs.
// Falls back to the built-in demo tenants when unset or unparseable.
func loadTenants() map[string]string {
	raw := os.Getenv("CLIENT_CREDENTIALS")
	if raw == "" {
		return defaultTenants
	}

	tenants := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			slog.Warn("skipping malformed tenant credential pair", "pair", pair)
			continue
		}
		tenants[parts[0]] = parts[1]
	}

	if len(tenants) == 0 {
		slog.Warn("CLIENT_CREDENTIALS contained no valid pairs, using demo tenants")
		return defaultTenants
	}

	return tenants
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
