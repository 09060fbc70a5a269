package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type AppConfig struct {
	Port string

	BackendURL         string
	BackendTimeout     time.Duration
	BackendReadRetries int

	JWTSecret string
	RedisAddr string
	Database  DatabaseConfig

	KafkaBroker string

	DraftTTL          time.Duration
	ProtectedUsername string
	RepairMaxAttempts int
}

// Load reads .env (when present) and the process environment.
func Load() (AppConfig, error) {
	_ = godotenv.Load()

	cfg := AppConfig{
		Port:               GetEnv("PORT", "3000"),
		BackendURL:         strings.TrimRight(GetEnv("BACKEND_URL", ""), "/"),
		BackendTimeout:     GetEnvAsDuration("BACKEND_TIMEOUT", 30*time.Second),
		BackendReadRetries: GetEnvAsInt("BACKEND_READ_RETRIES", 2),
		JWTSecret:          GetEnv("JWT_SECRET", ""),
		RedisAddr:          GetEnv("REDIS_ADDR", "localhost:6379"),
		Database: DatabaseConfig{
			Host:     GetEnv("DB_HOST", "localhost"),
			User:     GetEnv("DB_USER", "postgres"),
			Password: GetEnv("DB_PASSWORD", ""),
			Name:     GetEnv("DB_NAME", "grainsync_console"),
			Port:     GetEnv("DB_PORT", "5432"),
			SSLMode:  GetEnv("DB_SSLMODE", "disable"),
		},
		KafkaBroker:       GetEnv("KAFKA_BROKER", ""),
		DraftTTL:          GetEnvAsDuration("DRAFT_TTL", 24*time.Hour),
		ProtectedUsername: GetEnv("PROTECTED_USERNAME", "h_malik"),
		RepairMaxAttempts: GetEnvAsInt("REPAIR_MAX_ATTEMPTS", 5),
	}

	if cfg.BackendURL == "" {
		return AppConfig{}, fmt.Errorf("missing required env: BACKEND_URL")
	}
	if cfg.JWTSecret == "" {
		return AppConfig{}, fmt.Errorf("missing required env: JWT_SECRET")
	}

	return cfg, nil
}

func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}
