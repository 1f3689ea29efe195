package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	JWTAlgorithm  string
	TokenTTL      time.Duration
	FrontendURL   string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from the environment. A .env file is honored
// when present but not required.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("no .env file loaded:", err)
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "restaurant_orders.db"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		JWTAlgorithm:  getEnv("JWT_ALGORITHM", "HS256"),
		TokenTTL:      time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 4320)) * time.Minute,
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@admin.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
	}
	return fallback
}
