package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/floodgrid/floodfill"
)

// Config holds the server's configuration values.
type Config struct {
	Addr         string       // Address the HTTP server listens on
	BaseURL      string       // Prefix for every API route
	GridSize     int          // Dimension of every new grid
	RandomTrials int          // Holes punched by Randomize
	MaxSessions  int          // Upper bound on live grids, 0 for unlimited
	LogLevel     logrus.Level // Minimum level logged
	GinMode      string       // Mode for the Gin framework (release, debug, test)
}

// Load reads an optional .env file (or the given files) and then the
// environment. Unset variables fall back to defaults.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		logrus.WithError(err).Debug("config: .env file not found or could not be loaded")
	}

	size, err := getEnvAsIntWithDefault("FLOODGRID_GRID_SIZE", floodfill.DefaultSize)
	if err != nil {
		return Config{}, err
	}
	if size < floodfill.MinSize {
		return Config{}, fmt.Errorf("config: FLOODGRID_GRID_SIZE=%d: %w", size, floodfill.ErrGridTooSmall)
	}
	trials, err := getEnvAsIntWithDefault("FLOODGRID_RANDOM_TRIALS", floodfill.DefaultRandomTrials)
	if err != nil {
		return Config{}, err
	}
	if trials < 0 {
		return Config{}, fmt.Errorf("config: FLOODGRID_RANDOM_TRIALS must not be negative, got %d", trials)
	}
	maxSessions, err := getEnvAsIntWithDefault("FLOODGRID_MAX_SESSIONS", 1024)
	if err != nil {
		return Config{}, err
	}
	level, err := logrus.ParseLevel(getEnvWithDefault("FLOODGRID_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("config: FLOODGRID_LOG_LEVEL: %w", err)
	}

	return Config{
		Addr:         getEnvWithDefault("FLOODGRID_ADDR", ":8080"),
		BaseURL:      getEnvWithDefault("FLOODGRID_BASE_URL", "/api"),
		GridSize:     size,
		RandomTrials: trials,
		MaxSessions:  maxSessions,
		LogLevel:     level,
		GinMode:      getEnvWithDefault("GIN_MODE", "release"),
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, or the default if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return value, nil
}
