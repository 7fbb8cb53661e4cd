package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, read from environment variables.
type Config struct {
	Port      string
	JWTSecret string

	// Google backends
	SpreadsheetID   string
	CredentialsFile string
	CalendarID      string
	Timezone        string

	// Local development mode (no Google APIs)
	UseMockDB   bool
	LocalDBPath string

	// Optional Redis for rate-limit counters and catalog caching
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	FrontendURL string

	CatalogCacheTTL time.Duration

	// Fixed-window rate limits
	RateLimitWindow time.Duration
	RateLimitMax    int
	LoginLimitMax   int
}

// Load reads .env (if present) and builds the configuration.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:            getEnv("PORT", "3000"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		CalendarID:      getEnv("CALENDAR_ID", "primary"),
		Timezone:        getEnv("TIMEZONE", "Asia/Taipei"),
		UseMockDB:       getEnv("USE_MOCK_DB", "false") == "true",
		LocalDBPath:     getEnv("LOCAL_DB_PATH", "local_db.json"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
		CatalogCacheTTL: time.Duration(getEnvInt("CATALOG_CACHE_TTL_SECONDS", 600)) * time.Second,
		RateLimitWindow: 15 * time.Minute,
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 300),
		LoginLimitMax:   getEnvInt("LOGIN_LIMIT_MAX", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
