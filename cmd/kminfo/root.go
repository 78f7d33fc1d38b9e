package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-surv/compute"
	"github.com/cwbudde/algo-surv/internal/config"
	"github.com/cwbudde/algo-surv/internal/logging"
	"github.com/cwbudde/algo-surv/partition"
	"github.com/cwbudde/algo-surv/survival"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries what every subcommand needs once flags and config are loaded.
type app struct {
	cfgFile  string
	logLevel string
	maxTier  string

	cfg       *config.Config
	logger    *logrus.Logger
	logCloser io.Closer
	kernel    *compute.Kernel
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kminfo",
		Short: "Inspect survival kernels and fit Kaplan-Meier curves",
		Long: `kminfo reports which vector tier the survival kernels use on this
machine and fits Kaplan-Meier curves with Greenwood standard errors.

Settings come from built-in defaults, an optional YAML file (--config) and
ALGOSURV_* environment variables; flags override all of them.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")
	root.PersistentFlags().StringVar(&a.maxTier, "max-tier", "", "cap the vector tier: auto, wide, medium, narrow, scalar")

	root.AddCommand(
		newCapsCmd(a),
		newFitCmd(a),
		newSumCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadFromFile(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.maxTier != "" {
		cfg.Kernel.MaxTier = a.maxTier
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := logging.Init(logging.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		File:    cfg.Logging.File,
		Console: true,
	})
	if err != nil {
		return err
	}
	if cfg.Logging.File == "" {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	a.cfg = cfg
	a.logger = logger
	a.logCloser = closer
	a.kernel = compute.New(
		compute.WithMaxTier(cfg.MaxTier()),
		compute.WithLogger(logger),
	)
	return nil
}

// close releases the log file opened by load, if any.
func (a *app) close() {
	if a.logCloser != nil {
		a.logCloser.Close()
		a.logCloser = nil
	}
}

func (a *app) runner() *partition.Pool {
	return partition.NewPool(
		partition.WithWorkers(a.cfg.Estimator.Workers),
		partition.WithMinSpan(a.cfg.Estimator.MinSpan),
	)
}

func (a *app) estimator() *survival.Estimator {
	return survival.New(
		survival.WithKernel(a.kernel),
		survival.WithRunner(a.runner()),
		survival.WithParallelThreshold(a.cfg.Estimator.ParallelThreshold),
		survival.WithLogger(a.logger),
	)
}
