package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-surv/compute"
	"github.com/cwbudde/algo-surv/survival"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "algosurv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg := LoadDefaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "auto", cfg.Kernel.MaxTier)
	assert.Equal(t, survival.DefaultParallelThreshold, cfg.Estimator.ParallelThreshold)
	assert.Equal(t, compute.TierWide, cfg.MaxTier())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
kernel:
  max_tier: medium
estimator:
  parallel_threshold: 100
  workers: 3
logging:
  level: debug
  format: json
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, compute.TierMedium, cfg.MaxTier())
	assert.Equal(t, 100, cfg.Estimator.ParallelThreshold)
	assert.Equal(t, 3, cfg.Estimator.Workers)
	assert.Zero(t, cfg.Estimator.MinSpan)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, LoadDefaults(), cfg)
}

func TestLoadFromFileMalformed(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, "kernel: [unterminated"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "kernel:\n  max_tier: medium\n")
	t.Setenv("ALGOSURV_MAX_TIER", "scalar")
	t.Setenv("ALGOSURV_WORKERS", "2")
	t.Setenv("ALGOSURV_MIN_SPAN", "not-a-number")
	t.Setenv("ALGOSURV_LOG_LEVEL", "warn")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, compute.TierScalar, cfg.MaxTier())
	assert.Equal(t, 2, cfg.Estimator.Workers)
	assert.Zero(t, cfg.Estimator.MinSpan)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestEnvWithoutFile(t *testing.T) {
	t.Setenv("ALGOSURV_PARALLEL_THRESHOLD", "64")
	cfg, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Estimator.ParallelThreshold)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "tier", mutate: func(c *Config) { c.Kernel.MaxTier = "huge" }},
		{name: "threshold", mutate: func(c *Config) { c.Estimator.ParallelThreshold = 0 }},
		{name: "workers", mutate: func(c *Config) { c.Estimator.Workers = -1 }},
		{name: "min span", mutate: func(c *Config) { c.Estimator.MinSpan = -5 }},
		{name: "format", mutate: func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := LoadDefaults()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
