package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// storage backends
const (
	StorageModeMemory = "memory"
	StorageModeSQLite = "sqlite"
)

const (
	defaultPort          = "8080"
	defaultDatabasePath  = "persons.db"
	defaultListLimit     = 10
	defaultAllowedOrigin = "http://localhost:5173"
)

type Config struct {
	// HTTP listen port
	Port string

	// storage backend: memory or sqlite
	StorageMode string

	// database path (sqlite mode only)
	DatabasePath string

	// populate the demo dataset at startup (memory mode only)
	SeedDemoData bool

	// listing defaults
	DefaultListLimit int

	// CORS
	AllowedOrigins []string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvBoolOrDefault(envVar string, defaultVal bool) bool {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s'. Using default %t. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	mode := strings.ToLower(getEnvOrDefault("STORAGE_MODE", StorageModeMemory))
	if mode != StorageModeMemory && mode != StorageModeSQLite {
		return Config{}, fmt.Errorf("invalid STORAGE_MODE '%s': must be '%s' or '%s'", mode, StorageModeMemory, StorageModeSQLite)
	}

	origins := strings.Split(getEnvOrDefault("ALLOWED_ORIGINS", defaultAllowedOrigin), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	cfg := Config{
		Port:             getEnvOrDefault("PORT", defaultPort),
		StorageMode:      mode,
		DatabasePath:     getEnvOrDefault("DATABASE_PATH", defaultDatabasePath),
		SeedDemoData:     getEnvBoolOrDefault("SEED_DEMO_DATA", false),
		DefaultListLimit: getEnvIntOrDefault("DEFAULT_LIST_LIMIT", defaultListLimit),
		AllowedOrigins:   origins,
	}

	return cfg, nil
}
