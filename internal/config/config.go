package config

import (
	"fmt"
	"k8s-azure-app/internal/validation"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultPort is used when PORT is not set
	DefaultPort = "3000"
	// DefaultEnvironment is used when NODE_ENV is not set
	DefaultEnvironment = "development"
	// DefaultBodyLimit is the maximum accepted JSON request body size in bytes
	DefaultBodyLimit = 100 * 1024
)

// Config represents the application configuration
type Config struct {
	// API contains API server configuration
	API APIConfig
	// App contains application identity settings
	App AppConfig
	// Log contains logging configuration
	Log LogConfig
}

// APIConfig contains API server settings
type APIConfig struct {
	// Port is the server port to listen on
	Port string `validate:"port"`
	// ShutdownTimeout bounds how long in-flight requests may run after shutdown starts
	ShutdownTimeout time.Duration `validate:"gte=0"`
	// BodyLimit is the maximum JSON request body size in bytes
	BodyLimit int64 `validate:"gt=0"`
}

// AppConfig contains settings reported by the service itself
type AppConfig struct {
	// Environment is the deployment environment name, e.g. "production"
	Environment string `validate:"nospaces"`
}

// LogConfig contains logging settings
type LogConfig struct {
	// Level is the minimum zap level name
	Level string `validate:"oneof=debug info warn error dpanic panic fatal"`
}

// LoadFromEnv retrieves configuration from environment variables
func (c *Config) LoadFromEnv() error {
	c.API = APIConfig{
		Port:            getEnvOrDefault("PORT", DefaultPort),
		ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
		BodyLimit:       int64(getEnvAsInt("BODY_LIMIT_BYTES", DefaultBodyLimit)),
	}
	c.App = AppConfig{
		Environment: getEnvOrDefault("NODE_ENV", DefaultEnvironment),
	}
	c.Log = LogConfig{
		Level: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return c.Validate()
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the service runs with NODE_ENV=production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// LoadEnvFile loads variables from a dotenv file without overriding ones already set.
// A missing file is an error only when required is true.
func LoadEnvFile(path string, required bool) error {
	if err := godotenv.Load(path); err != nil {
		if !required && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// getEnvAsInt retrieves an environment variable and converts it to an integer
func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
