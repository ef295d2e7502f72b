package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"goscrub/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Upload    UploadConfig
	Inference InferenceConfig
	Profiler  ProfilerConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds the optional recipe store connection settings.
// An empty URL disables recipe persistence.
type DatabaseConfig struct {
	URL string
}

// UploadConfig holds dataset upload limits
type UploadConfig struct {
	MaxFileSizeMB int
	MaxPreviewRow int
}

// InferenceConfig holds type inference thresholds
type InferenceConfig struct {
	NumericThreshold float64
	MaxCategories    int
	CategoricalRatio float64
	SampleLimit      int
}

// ProfilerConfig holds profiling thresholds
type ProfilerConfig struct {
	ZScoreThreshold float64
	TopK            int
}

// Load reads configuration from the environment, honoring a local .env
// file when present, and validates it.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may carry everything
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Upload: UploadConfig{
			MaxFileSizeMB: getEnvIntOrDefault("MAX_FILE_SIZE_MB", 50),
			MaxPreviewRow: getEnvIntOrDefault("MAX_PREVIEW_ROWS", 50000),
		},
		Inference: InferenceConfig{
			NumericThreshold: getEnvFloatOrDefault("NUMERIC_THRESHOLD", 0.8),
			MaxCategories:    getEnvIntOrDefault("MAX_CATEGORIES", 50),
			CategoricalRatio: getEnvFloatOrDefault("CATEGORICAL_RATIO", 0.2),
			SampleLimit:      getEnvIntOrDefault("INFERENCE_SAMPLE_LIMIT", 50),
		},
		Profiler: ProfilerConfig{
			ZScoreThreshold: getEnvFloatOrDefault("ZSCORE_THRESHOLD", 3.0),
			TopK:            getEnvIntOrDefault("PROFILE_TOP_K", 10),
		},
	}

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validate(c *Config) error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT cannot be empty")
	}
	if c.Inference.NumericThreshold <= 0 || c.Inference.NumericThreshold > 1 {
		return errors.ConfigInvalid("NUMERIC_THRESHOLD must be in (0, 1]")
	}
	if c.Inference.CategoricalRatio <= 0 || c.Inference.CategoricalRatio > 1 {
		return errors.ConfigInvalid("CATEGORICAL_RATIO must be in (0, 1]")
	}
	if c.Upload.MaxFileSizeMB <= 0 {
		return errors.ConfigInvalid("MAX_FILE_SIZE_MB must be positive")
	}
	if c.Profiler.ZScoreThreshold <= 0 {
		return errors.ConfigInvalid("ZSCORE_THRESHOLD must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
