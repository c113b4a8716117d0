package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// fallbackSecret mirrors the demo deployment's default. Explicitly
// insecure; set JWT_SECRET in any real environment.
const fallbackSecret = "esta_es_una_clave_diferente_para_la_copia"

// Config holds application configuration values.
type Config struct {
	AppPort      string
	DatabaseURL  string
	JWTSecret    string
	TokenExpires time.Duration
	CORSOrigin   string
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:      getEnv("APP_PORT", "8080"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		TokenExpires: getEnvDuration("JWT_TTL_HOURS", 168) * time.Hour,
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}

	if cfg.JWTSecret == "" {
		log.Println("warning: JWT_SECRET not set, using insecure fallback secret")
		cfg.JWTSecret = fallbackSecret
	}

	if cfg.AppPort == "" {
		log.Fatal("APP_PORT must be set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(fallback)
}
