package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	pqerrors "github.com/23skdu/indexpq/internal/errors"
)

// envPrefix is prepended to every environment variable name
const envPrefix = "INDEXPQ"

// Config validation errors
var (
	ErrInvalidLogFormat    = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel     = errors.New("log_level must be debug, info, warn (warning), or error")
	ErrInvalidBenchTrials  = errors.New("bench_trials must be positive")
	ErrInvalidBenchSize    = errors.New("bench_size must be positive")
	ErrInvalidBenchWorkers = errors.New("bench_workers must be positive")
)

// Config is the process configuration, read from INDEXPQ_* variables
type Config struct {
	LogFormat    string `envconfig:"LOG_FORMAT" default:"json"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	DumpMetrics  bool   `envconfig:"DUMP_METRICS" default:"false"`
	BenchTrials  int    `envconfig:"BENCH_TRIALS" default:"32"`
	BenchSize    int    `envconfig:"BENCH_SIZE" default:"10000"`
	BenchWorkers int    `envconfig:"BENCH_WORKERS" default:"4"`
	Seed         uint64 `envconfig:"SEED" default:"1"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		LogFormat:    "json",
		LogLevel:     "info",
		DumpMetrics:  false,
		BenchTrials:  32,
		BenchSize:    10000,
		BenchWorkers: 4,
		Seed:         1,
	}
}

// LoadConfig reads envFile (or ./.env when empty) into the environment and
// then processes INDEXPQ_* variables. A missing default .env is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, pqerrors.WrapConfigurationError(err, "LoadConfig", "load env file").
				WithContext("path", envFile)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, pqerrors.WrapConfigurationError(err, "LoadConfig", "load .env")
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, pqerrors.WrapConfigurationError(err, "LoadConfig", "process environment")
	}
	return cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return ErrInvalidLogLevel
	}
	if cfg.BenchTrials <= 0 {
		return ErrInvalidBenchTrials
	}
	if cfg.BenchSize <= 0 {
		return ErrInvalidBenchSize
	}
	if cfg.BenchWorkers <= 0 {
		return ErrInvalidBenchWorkers
	}
	return nil
}
