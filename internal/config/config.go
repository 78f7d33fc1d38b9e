// Package config loads kminfo settings from built-in defaults, an optional
// YAML file and ALGOSURV_* environment variables, in that order.
//
// Example config file:
//
//	kernel:
//	  max_tier: medium
//	estimator:
//	  parallel_threshold: 32768
//	  workers: 4
//	logging:
//	  level: debug
//	  format: json
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-surv/compute"
	"github.com/cwbudde/algo-surv/survival"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ALGOSURV_"

// Config holds all settings.
type Config struct {
	Kernel    KernelConfig    `yaml:"kernel"`
	Estimator EstimatorConfig `yaml:"estimator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// KernelConfig selects the compute kernel.
type KernelConfig struct {
	// MaxTier caps the vector tier: auto, wide, medium, narrow or scalar.
	MaxTier string `yaml:"max_tier"`
}

// EstimatorConfig tunes risk-set construction.
type EstimatorConfig struct {
	ParallelThreshold int `yaml:"parallel_threshold"`
	// Workers and MinSpan override the pool defaults when positive.
	Workers int `yaml:"workers"`
	MinSpan int `yaml:"min_span"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// LoadDefaults returns the built-in configuration.
func LoadDefaults() *Config {
	return &Config{
		Kernel: KernelConfig{MaxTier: "auto"},
		Estimator: EstimatorConfig{
			ParallelThreshold: survival.DefaultParallelThreshold,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// LoadFromFile reads path on top of the defaults and then applies
// environment overrides. A missing file is not an error. An empty path
// skips the file.
func LoadFromFile(path string) (*Config, error) {
	cfg := LoadDefaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	applyEnvVars(cfg)
	return cfg, nil
}

func applyEnvVars(cfg *Config) {
	cfg.Kernel.MaxTier = getEnv(EnvPrefix+"MAX_TIER", cfg.Kernel.MaxTier)
	cfg.Estimator.ParallelThreshold = getEnvInt(EnvPrefix+"PARALLEL_THRESHOLD", cfg.Estimator.ParallelThreshold)
	cfg.Estimator.Workers = getEnvInt(EnvPrefix+"WORKERS", cfg.Estimator.Workers)
	cfg.Estimator.MinSpan = getEnvInt(EnvPrefix+"MIN_SPAN", cfg.Estimator.MinSpan)
	cfg.Logging.Level = getEnv(EnvPrefix+"LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv(EnvPrefix+"LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.File = getEnv(EnvPrefix+"LOG_FILE", cfg.Logging.File)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := compute.ParseTier(c.Kernel.MaxTier); err != nil {
		return fmt.Errorf("config: kernel.max_tier: %w", err)
	}
	if c.Estimator.ParallelThreshold < 1 {
		return fmt.Errorf("config: invalid parallel_threshold: %d", c.Estimator.ParallelThreshold)
	}
	if c.Estimator.Workers < 0 {
		return fmt.Errorf("config: invalid workers: %d", c.Estimator.Workers)
	}
	if c.Estimator.MinSpan < 0 {
		return fmt.Errorf("config: invalid min_span: %d", c.Estimator.MinSpan)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: invalid logging.format: %q", c.Logging.Format)
	}
	return nil
}

// MaxTier returns the parsed tier cap, TierWide when unset or invalid.
func (c *Config) MaxTier() compute.Tier {
	t, err := compute.ParseTier(c.Kernel.MaxTier)
	if err != nil {
		return compute.TierWide
	}
	return t
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
