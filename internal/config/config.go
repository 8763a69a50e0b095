package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	Upstream  UpstreamConfig
	Images    ImageConfig
	Bulk      BulkConfig
	CORS      CORSConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// UpstreamConfig holds the menu API connection settings
type UpstreamConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// ImageConfig holds image resolution settings
type ImageConfig struct {
	PlaceholderURL string
	TrustedHosts   []string
	LegacyHosts    []string
}

// BulkConfig holds settings for fan-out operations
type BulkConfig struct {
	Concurrency int
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	GalleryRefreshCron string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "cardapio_admin"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("CARDAPIO_API_BASE_URL", "http://localhost:3000"),
			Token:   getEnv("CARDAPIO_API_TOKEN", ""),
			Timeout: time.Duration(getEnvAsInt("CARDAPIO_API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Images: ImageConfig{
			PlaceholderURL: getEnv("IMAGE_PLACEHOLDER_URL", "/images/placeholder.png"),
			TrustedHosts:   getEnvAsList("IMAGE_TRUSTED_HOSTS", nil),
			LegacyHosts:    getEnvAsList("IMAGE_LEGACY_HOSTS", []string{"grupoideiaum.com.br"}),
		},
		Bulk: BulkConfig{
			Concurrency: getEnvAsInt("BULK_CONCURRENCY", 8),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		},
		Scheduler: SchedulerConfig{
			// every 15 minutes
			GalleryRefreshCron: getEnv("GALLERY_REFRESH_CRON", "0 */15 * * * *"),
		},
	}

	if config.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("CARDAPIO_API_BASE_URL must not be empty")
	}
	if config.Bulk.Concurrency < 1 {
		config.Bulk.Concurrency = 1
	}

	return config, nil
}

// GetDSN returns PostgreSQL connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvAsList splits a comma separated environment variable
func getEnvAsList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
