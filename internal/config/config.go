package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Condominium API (record store)
	RecordStoreBaseURL string
	RecordStoreTimeout time.Duration

	// Public origin used to compose share links
	PublicBaseURL string

	// JWT secret shared with the condominium API
	JWTSecret string
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
		Port: getEnv("PORT", "8080"),

		// Record store
		RecordStoreBaseURL: getEnv("RECORDSTORE_BASE_URL", "http://localhost:3000/api"),

		// Public origin
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
	}

	// Parse record store request timeout
	timeoutStr := getEnv("RECORDSTORE_TIMEOUT", "15s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid RECORDSTORE_TIMEOUT value '%s', falling back to 15s\n", timeoutStr)
		timeout = 15 * time.Second
	}
	config.RecordStoreTimeout = timeout

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

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
