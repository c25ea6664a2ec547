package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI  string
	DBName    string
	JWTSecret string
	TokenTTL  time.Duration
	RabbitURL string
	Port      string
}

// Load reads .env (if present) and populates AppEnv. MONGO_URI and
// JWT_SECRET are required; there is deliberately no built-in secret
// fallback, a missing secret aborts startup instead.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:  requireEnv("MONGO_URI"),
		DBName:    getEnvOrDefault("DB_NAME", "kashmeeri"),
		JWTSecret: requireEnv("JWT_SECRET"),
		TokenTTL:  getDurationEnv("TOKEN_TTL_HOURS", 24, time.Hour),
		RabbitURL: getEnvOrDefault("RABBIT_URL", ""),
		Port:      getEnvOrDefault("PORT", "8080"),
	}
}

func requireEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		log.Fatalf("ENV %s is required", key)
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
