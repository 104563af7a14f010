package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURL    string
	DBName      string
	JWTSecret   string
	FrontendURL string
	// Token lifetime in minutes (default 24h, matching the admin panel session)
	TokenExpiryMinutes int
	// Resume upload storage
	UploadDir     string
	MaxUploadSize int64
	// Redis configuration (optional; login rate limiting falls back to memory)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		MongoURL:           getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:             getEnv("DB_NAME", "portfolio"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		TokenExpiryMinutes: getEnvInt("TOKEN_EXPIRY_MINUTES", 1440),
		UploadDir:          getEnv("UPLOAD_DIR", "./static/uploads"),
		MaxUploadSize:      int64(getEnvInt("MAX_UPLOAD_SIZE_MB", 5)) << 20,
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		// Rate limiting defaults: 5 login attempts per minute per IP
		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 5),
	}

	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Admin logins will be rejected.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
