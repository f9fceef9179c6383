package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends for onboarding slots.
const (
	StorageSQL    = "sql"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config holds application configuration
type Config struct {
	// Server
	Port            string
	Env             string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	// Onboarding persistence
	StorageBackend string
	SlotTTL        time.Duration
	PersistTimeout time.Duration
	StoreIdleTTL   time.Duration

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	// Session tokens
	SessionSecret string
	SessionTTL    time.Duration

	// Admin endpoints
	AdminAPIKey string

	// Scheduling widget on the booking screen
	SchedulingURL   string
	SchedulingLabel string
	SchedulingColor string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		AllowedOrigins:  getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		// Onboarding persistence
		StorageBackend: getEnv("STORAGE_BACKEND", StorageSQL),
		SlotTTL:        getDuration("SLOT_TTL", 0),
		PersistTimeout: getDuration("PERSIST_TIMEOUT", 5*time.Second),
		StoreIdleTTL:   getDuration("STORE_IDLE_TTL", 15*time.Minute),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "celerey"),
		DBPassword: getEnv("DB_PASSWORD", "celerey"),
		DBName:     getEnv("DB_NAME", "celerey"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "celerey.db"),

		// Redis
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getInt("REDIS_DB", 0),
		RedisKeyPrefix: getEnv("REDIS_KEY_PREFIX", "celerey"),

		// Session tokens
		SessionSecret: getEnv("SESSION_SECRET", "fallback-secret-key-for-dev-only"),
		SessionTTL:    getDuration("SESSION_TTL", 30*24*time.Hour),

		// Admin endpoints
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),

		// Scheduling widget
		SchedulingURL:   getEnv("SCHEDULING_URL", "https://calendar.google.com/calendar/appointments/schedules/AcZssZ2oNkk8xLNeobcMRVs7g2CvvviCQxYPsufMva3m0Qy2YgeAV01vLxqabFuYZZkRiSUsNxy-5FuI?gv=true"),
		SchedulingLabel: getEnv("SCHEDULING_LABEL", "Book Your Advisory Session"),
		SchedulingColor: getEnv("SCHEDULING_COLOR", "#1B1856"),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Set replaces the application configuration, for tests.
func Set(cfg *Config) {
	appConfig = cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func getList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
