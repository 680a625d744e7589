package internal

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Report store configuration
	StoreProvider string // "memory", "sqlite" or "postgres"
	SQLitePath    string // Database file path for the sqlite provider
	DatabaseURL   string // Connection string for the postgres provider

	// Export artifact storage
	StorageProvider string // "local" or "s3"

	// Local storage (development)
	LocalStoragePath string // Base directory for local file storage
	LocalStorageURL  string // Base URL for accessing local files

	// S3-compatible storage (production)
	S3Endpoint        string // Custom endpoint for S3-compatible services
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3BucketName      string
	S3PublicURL       string // Optional custom domain URL

	// Weather configuration
	WeatherProvider        string  // "openmeteo" or "mock"
	WeatherLatitude        float64 // Operating site coordinates
	WeatherLongitude       float64
	WeatherCacheTTL        time.Duration
	WeatherRefreshInterval time.Duration // 0 disables the background refresher
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		// Store defaults to an embedded sqlite file for development
		StoreProvider: getEnv("STORE_PROVIDER", "sqlite"),
		SQLitePath:    getEnv("SQLITE_PATH", "./flightform.db"),

		// Storage defaults to local filesystem for development
		StorageProvider:  getEnv("STORAGE_PROVIDER", "local"),
		LocalStoragePath: getEnv("LOCAL_STORAGE_PATH", "./storage"),
		LocalStorageURL:  getEnv("LOCAL_STORAGE_URL", "http://localhost:8080/files"),

		// S3 configuration (production only)
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3Region:          getEnv("S3_REGION", "auto"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3BucketName:      getEnv("S3_BUCKET_NAME", ""),
		S3PublicURL:       getEnv("S3_PUBLIC_URL", ""),

		// Weather defaults to the mock provider so the app runs offline
		WeatherProvider:        getEnv("WEATHER_PROVIDER", "mock"),
		WeatherLatitude:        getEnvFloat("WEATHER_LATITUDE", 55.7558),
		WeatherLongitude:       getEnvFloat("WEATHER_LONGITUDE", 37.6173),
		WeatherCacheTTL:        getEnvDuration("WEATHER_CACHE_TTL", 5*time.Minute),
		WeatherRefreshInterval: getEnvDuration("WEATHER_REFRESH_INTERVAL", 5*time.Minute),
	}

	switch cfg.StoreProvider {
	case "memory":
	case "sqlite":
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH is required when STORE_PROVIDER is 'sqlite'")
		}
	case "postgres":
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_PROVIDER is 'postgres'")
		}
	default:
		return nil, fmt.Errorf("STORE_PROVIDER must be 'memory', 'sqlite' or 'postgres', got: %s", cfg.StoreProvider)
	}

	// Validate storage configuration
	if cfg.StorageProvider == "s3" {
		if cfg.S3AccessKeyID == "" {
			return nil, fmt.Errorf("S3_ACCESS_KEY_ID is required when STORAGE_PROVIDER is 's3'")
		}
		if cfg.S3SecretAccessKey == "" {
			return nil, fmt.Errorf("S3_SECRET_ACCESS_KEY is required when STORAGE_PROVIDER is 's3'")
		}
		if cfg.S3BucketName == "" {
			return nil, fmt.Errorf("S3_BUCKET_NAME is required when STORAGE_PROVIDER is 's3'")
		}
	} else if cfg.StorageProvider != "local" {
		return nil, fmt.Errorf("STORAGE_PROVIDER must be either 'local' or 's3', got: %s", cfg.StorageProvider)
	}

	// Validate weather provider configuration
	if cfg.WeatherProvider != "openmeteo" && cfg.WeatherProvider != "mock" {
		return nil, fmt.Errorf("WEATHER_PROVIDER must be either 'openmeteo' or 'mock', got: %s", cfg.WeatherProvider)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
