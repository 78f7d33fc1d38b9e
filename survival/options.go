package survival

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-surv/compute"
	"github.com/cwbudde/algo-surv/internal/logging"
	"github.com/cwbudde/algo-surv/partition"
)

// DefaultParallelThreshold is the smallest input that is grouped on the
// partition runner instead of in a single pass.
const DefaultParallelThreshold = 16384

// Config defines configuration for an Estimator.
type Config struct {
	// Kernel runs the survival recurrence. Nil selects compute.Default().
	Kernel *compute.Kernel

	// Runner partitions risk-set construction. Nil selects a Pool with
	// default settings.
	Runner partition.Runner

	// ParallelThreshold is the minimum number of observations for which
	// Runner is used.
	ParallelThreshold int

	Logger logrus.FieldLogger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ParallelThreshold: DefaultParallelThreshold,
		Logger:            logging.Discard(),
	}
}

// WithKernel sets the compute kernel.
func WithKernel(k *compute.Kernel) Option {
	return func(cfg *Config) {
		if k != nil {
			cfg.Kernel = k
		}
	}
}

// WithRunner sets the partition runner.
func WithRunner(r partition.Runner) Option {
	return func(cfg *Config) {
		if r != nil {
			cfg.Runner = r
		}
	}
}

// WithParallelThreshold sets the partitioning threshold. Values below 1 are
// ignored; 1 partitions every input.
func WithParallelThreshold(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.ParallelThreshold = n
		}
	}
}

// WithLogger sets the logger for fit diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
