package config

import (
	"errors"
	"os"
)

type Config struct {
	Port        string
	Environment string

	// JWTSecret signs session tokens. The process refuses to start
	// without it rather than issue tokens with an empty key.
	JWTSecret string

	// DatabaseURL selects the postgres adapter when set; otherwise the
	// service runs on the sqlite file at DatabasePath.
	DatabaseURL  string
	DatabasePath string

	OTLPEndpoint string
	MetricsPort  string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:         envOr("PORT", "8080"),
		Environment:  envOr("ENVIRONMENT", "development"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabasePath: envOr("DATABASE_PATH", "database.db"),
		OTLPEndpoint: envOr("OTLP_ENDPOINT", "localhost:4317"),
		MetricsPort:  envOr("METRICS_PORT", "9091"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not defined in environment variables")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
