package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./coursepilot.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)
	UploadDir    string // Optional: directory for payment evidence files (default: ./uploads)

	SessionTTL   time.Duration // Optional: fixed session lifetime (default: 24h)
	CookieSecure bool          // Optional: mark the session cookie Secure (default: false)

	AdminUsername string  // Optional: seeded admin username (default: admin)
	AdminEmail    string  // Optional: seeded admin email; seeding skipped when empty
	AdminPassword string  // Optional: seeded admin password
	CoursePrice   float64 // Optional: flat per-course price for revenue rollups (default: 500)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Session sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile: getEnvOrDefault("COURSEPILOT_DATABASE_FILE", "coursepilot.db"),
		PepperFile:   getEnvOrDefault("COURSEPILOT_PEPPER_FILE", "pepper"),
		UploadDir:    getEnvOrDefault("COURSEPILOT_UPLOAD_DIR", "uploads"),

		SessionTTL:   getEnvDurationOrDefault("COURSEPILOT_SESSION_TTL", 24*time.Hour),
		CookieSecure: getEnvBoolOrDefault("COURSEPILOT_COOKIE_SECURE", false),

		AdminUsername: getEnvOrDefault("COURSEPILOT_ADMIN_USERNAME", "admin"),
		AdminEmail:    os.Getenv("COURSEPILOT_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("COURSEPILOT_ADMIN_PASSWORD"),
		CoursePrice:   getEnvFloatOrDefault("COURSEPILOT_COURSE_PRICE", 500),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
		return floatValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer values are read as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
