package config

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the CLI's configuration values.
type Config struct {
	GridFile      string // Grid description to load (.yaml, .yml or .json)
	Workers       int    // Worker goroutines for batch queries
	Trace         bool   // Step through the primary query frame by frame
	LogExpansions bool   // Log every node expansion
}

// Load reads the given .env files (or ./.env when none are given) and builds
// a Config from the environment. Missing files are not an error; malformed
// values are.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	workers, err := getEnvAsInt("GRIDPATH_WORKERS", runtime.NumCPU())
	if err != nil {
		return Config{}, err
	}
	if workers < 1 {
		return Config{}, fmt.Errorf("environment variable GRIDPATH_WORKERS must be positive, got %d", workers)
	}
	trace, err := getEnvAsBool("GRIDPATH_TRACE", false)
	if err != nil {
		return Config{}, err
	}
	logExpansions, err := getEnvAsBool("GRIDPATH_LOG_EXPANSIONS", false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		GridFile:      getEnvWithDefault("GRIDPATH_GRID_FILE", "grid.yaml"),
		Workers:       workers,
		Trace:         trace,
		LogExpansions: logExpansions,
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return value, nil
}
