package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port          string
	JWTSecret     string
	TokenExpiry   time.Duration
	RefreshExpiry time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	RemindersEnabled bool

	AdminEmail    string
	AdminPassword string
}

// Load reads .env when present, then the environment. Missing optional
// values fall back to development defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using environment variables directly")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "solid_secret_key"),
		TokenExpiry:   getDurationEnv("JWT_EXPIRY_HOURS", 24) * time.Hour,
		RefreshExpiry: getDurationEnv("JWT_REFRESH_EXPIRY_HOURS", 24*7) * time.Hour,

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getIntEnv("SMTP_PORT", 587),
		SMTPUser: getEnv("EMAIL_USER", ""),
		SMTPPass: getEnv("EMAIL_PASS", ""),

		RemindersEnabled: getEnv("REMINDERS_ENABLED", "false") == "true",

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, raw, fallback)
		return fallback
	}
	return value
}

func getDurationEnv(key string, fallback int) time.Duration {
	return time.Duration(getIntEnv(key, fallback))
}
