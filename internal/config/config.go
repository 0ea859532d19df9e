package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Webhooks WebhookConfig
	CORS     CORSConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	URL string
}

// AdminConfig carries the two operator secrets. Either one is sufficient to
// authorize a request; if both are empty the API fails closed.
type AdminConfig struct {
	Password string
	Token    string
}

// WebhookConfig holds the outbound notification endpoints. An empty URL
// disables the corresponding notification.
type WebhookConfig struct {
	EventUpdatedURL string
	EventDeletedURL string
}

type CORSConfig struct {
	AllowedOrigins  []string
	AllowAllOrigins bool
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("PORT", 3001),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Admin: AdminConfig{
			Password: getEnv("ADMIN_PASSWORD", ""),
			Token:    getEnv("ADMIN_TOKEN", ""),
		},
		Webhooks: WebhookConfig{
			EventUpdatedURL: getEnv("EVENT_UPDATED_WEBHOOK_URL", ""),
			EventDeletedURL: getEnv("EVENT_DELETED_WEBHOOK_URL", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins:  splitEnv("CORS_ALLOWED_ORIGINS"),
			AllowAllOrigins: getEnvBool("CORS_ALLOW_ALL", false),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.Database.URL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	return cfg, nil
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
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitEnv(key string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
