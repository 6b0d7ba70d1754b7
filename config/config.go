package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	HTTP     ServerConfig
	Postgres PostgresConfig
	Auth     AuthConfig
	Log      LogConfig
	Jobs     JobsConfig
}

type AppConfig struct {
	ServiceName string
}

type ServerConfig struct {
	Host string
	Port string
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	JWTSecret string
}

type LogConfig struct {
	Level string
}

type JobsConfig struct {
	VendorReconcileInterval time.Duration
	ExpirationCheckInterval time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	postgresDSN := os.Getenv("POSTGRES_DSN")
	if postgresDSN == "" {
		return nil, errors.New("POSTGRES_DSN environment variable is required")
	}

	jwtSecret := os.Getenv("AUTH_JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("AUTH_JWT_SECRET environment variable is required")
	}

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "vendor-admin"),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		Postgres: PostgresConfig{
			DSN:             postgresDSN,
			MaxOpenConns:    getIntEnv("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("POSTGRES_CONN_MAX_LIFETIME_MINUTES", 30*time.Minute),
		},
		Auth: AuthConfig{JWTSecret: jwtSecret},
		Log:  LogConfig{Level: getEnv("LOG_LEVEL", "info")},
		Jobs: JobsConfig{
			VendorReconcileInterval: getDurationEnv("VENDOR_RECONCILE_INTERVAL_MINUTES", 15*time.Minute),
			ExpirationCheckInterval: getDurationEnv("EXPIRATION_CHECK_INTERVAL_MINUTES", time.Hour),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}
