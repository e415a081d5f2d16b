package config

import (
	stderrors "errors"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"mathkit/domain/numeric"
	"mathkit/internal"
	"mathkit/internal/errors"
)

const (
	EnvLogLevel         = "MATHKIT_LOG_LEVEL"
	EnvRandomSeed       = "MATHKIT_RANDOM_SEED"
	EnvTolerance        = "MATHKIT_TOLERANCE"
	EnvDecimalTolerance = "MATHKIT_DECIMAL_TOLERANCE"
)

// Config represents the complete library configuration
type Config struct {
	Log       LogConfig
	Random    RandomConfig
	Tolerance ToleranceConfig
}

// LogConfig holds logging settings
type LogConfig struct {
	Level internal.LogLevel
}

// RandomConfig holds random generator settings
type RandomConfig struct {
	// Seed is only used when Seeded is set; otherwise the clock seeds the generator
	Seed   int64
	Seeded bool
}

// ToleranceConfig holds the default comparison tolerances
type ToleranceConfig struct {
	Float   float64
	Decimal decimal.Decimal
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Log:       LogConfig{Level: internal.LogLevelInfo},
		Tolerance: ToleranceConfig{Float: numeric.DefaultTolerance, Decimal: numeric.DefaultDecimalTolerance},
	}
}

// Load reads the given .env files (or ./.env when present) and then the
// environment, and validates the result. Variables already set in the
// environment take precedence over the files.
func Load(files ...string) (*Config, error) {
	if err := loadEnvFiles(files); err != nil {
		return nil, err
	}

	config := Default()

	logConfig, err := loadLogConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load log configuration")
	}
	config.Log = *logConfig

	randomConfig, err := loadRandomConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load random configuration")
	}
	config.Random = *randomConfig

	toleranceConfig, err := loadToleranceConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tolerance configuration")
	}
	config.Tolerance = *toleranceConfig

	return config, nil
}

func loadEnvFiles(files []string) error {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return errors.WithCause(errors.CodeConfigInvalid, "failed to read env file", err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return errors.WithCause(errors.CodeConfigInvalid, "failed to read .env", err)
	}
	return nil
}

func loadLogConfig() (*LogConfig, error) {
	level, err := internal.ParseLogLevel(getEnvOrDefault(EnvLogLevel, "INFO"))
	if err != nil {
		return nil, errors.WithCause(errors.CodeConfigInvalid, EnvLogLevel+" is invalid", err)
	}
	return &LogConfig{Level: level}, nil
}

func loadRandomConfig() (*RandomConfig, error) {
	value := os.Getenv(EnvRandomSeed)
	if value == "" {
		return &RandomConfig{}, nil
	}

	seed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, errors.WithCause(errors.CodeConfigInvalid, EnvRandomSeed+" must be an integer", err)
	}
	return &RandomConfig{Seed: seed, Seeded: true}, nil
}

func loadToleranceConfig() (*ToleranceConfig, error) {
	tolerance := numeric.DefaultTolerance
	if value := os.Getenv(EnvTolerance); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.WithCause(errors.CodeConfigInvalid, EnvTolerance+" must be a number", err)
		}
		if math.IsNaN(parsed) || parsed < 0 {
			return nil, errors.ConfigInvalid(EnvTolerance + " must be non-negative")
		}
		tolerance = parsed
	}

	decimalTolerance := numeric.DefaultDecimalTolerance
	if value := os.Getenv(EnvDecimalTolerance); value != "" {
		parsed, err := decimal.NewFromString(value)
		if err != nil {
			return nil, errors.WithCause(errors.CodeConfigInvalid, EnvDecimalTolerance+" must be a decimal", err)
		}
		if parsed.IsNegative() {
			return nil, errors.ConfigInvalid(EnvDecimalTolerance + " must be non-negative")
		}
		decimalTolerance = parsed
	}

	return &ToleranceConfig{Float: tolerance, Decimal: decimalTolerance}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
