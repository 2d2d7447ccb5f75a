package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBPath         string
	JWTSecret      string
	AllowedOrigins []string
	UploadDir      string
	ClientURL      string
}

// Load reads configuration from the environment, picking up a local .env
// file when one exists. Defaults mirror a local development setup.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:   getenv("PORT", "5000"),
		DBPath: getenv("DB_PATH", "database.sqlite"),
		// Insecure fallback, same posture as the dev default it replaces.
		// Set JWT_SECRET in any real deployment.
		JWTSecret:      getenv("JWT_SECRET", "aigov_dev_secret_2026"),
		AllowedOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174")),
		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
		ClientURL:      getenv("CLIENT_URL", "http://localhost:5173"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
