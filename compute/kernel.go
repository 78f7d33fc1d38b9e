package compute

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-surv/internal/logging"
	"github.com/cwbudde/algo-surv/internal/vecmath/registry"
)

// VectorKernel is one vectorized implementation of the survival arithmetic.
// Implementations hide all lane handling; callers see only slices in and
// values out.
type VectorKernel interface {
	// Name identifies the implementation (e.g. "generic", "avx2").
	Name() string
	// Tier is the vector width class the implementation needs.
	Tier() Tier
	// Lanes is the number of float64 values per vector step.
	Lanes() int
	// Sum returns the sum of x, 0 for an empty slice.
	Sum(x []float64) float64
	// Ratios computes dst[i] = (atRisk[i]-events[i])/atRisk[i]. Inputs are
	// pre-validated: equal lengths and atRisk[i] > 0.
	Ratios(dst, atRisk, events []float64)
}

// entryKernel adapts a registry entry to VectorKernel.
type entryKernel struct {
	entry registry.OpEntry
}

func (k entryKernel) Name() string                         { return k.entry.Name }
func (k entryKernel) Tier() Tier                           { return tierOf(k.entry.SIMDLevel) }
func (k entryKernel) Lanes() int                           { return k.entry.Lanes() }
func (k entryKernel) Sum(x []float64) float64              { return k.entry.Sum(x) }
func (k entryKernel) Ratios(dst, atRisk, events []float64) { k.entry.Ratios(dst, atRisk, events) }

// Config configures kernel construction.
type Config struct {
	// Capabilities overrides CPU detection when non-nil.
	Capabilities *CapabilitySet

	// MaxTier caps the selected tier. The default, TierWide, imposes no cap.
	MaxTier Tier

	// Logger receives the selection decision at debug level.
	Logger logrus.FieldLogger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a configuration that uses detected capabilities
// without a cap and a silent logger.
func DefaultConfig() Config {
	return Config{
		MaxTier: TierWide,
		Logger:  logging.Discard(),
	}
}

// WithCapabilities replaces detection with caps.
func WithCapabilities(caps CapabilitySet) Option {
	return func(cfg *Config) {
		cfg.Capabilities = &caps
	}
}

// WithMaxTier caps the selected tier.
func WithMaxTier(t Tier) Option {
	return func(cfg *Config) {
		if t >= TierScalar && t <= TierWide {
			cfg.MaxTier = t
		}
	}
}

// WithLogger sets the logger used during selection.
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

// Kernel executes the vector sum and the survival recurrence with the widest
// implementation the capability set allows. The implementation is chosen in
// New and never changes, so a Kernel is safe for concurrent use.
type Kernel struct {
	caps CapabilitySet
	impl VectorKernel
}

// New selects an implementation and returns a ready kernel.
func New(opts ...Option) *Kernel {
	cfg := ApplyOptions(opts...)

	caps := Detect()
	if cfg.Capabilities != nil {
		caps = *cfg.Capabilities
	}
	caps = caps.Cap(cfg.MaxTier)

	entry := registry.Global.Lookup(caps.features())
	if entry == nil {
		panic("compute: no kernel implementation registered")
	}
	if entry.Sum == nil || entry.Ratios == nil {
		panic("compute: selected implementation missing an operation")
	}

	k := &Kernel{caps: caps, impl: entryKernel{entry: *entry}}

	cfg.Logger.WithFields(logrus.Fields{
		"kernel":       k.impl.Name(),
		"tier":         k.impl.Tier().String(),
		"lanes":        k.impl.Lanes(),
		"capabilities": caps.String(),
	}).Debug("compute: kernel selected")

	return k
}

// NewWithImplementation wraps an explicit implementation, bypassing
// detection. The capability set reports only the implementation's tier.
func NewWithImplementation(impl VectorKernel) *Kernel {
	caps := CapabilitySet{}
	switch impl.Tier() {
	case TierWide:
		caps.Wide = true
		fallthrough
	case TierMedium:
		caps.Medium = true
		fallthrough
	case TierNarrow:
		caps.Narrow = true
	}
	return &Kernel{caps: caps, impl: impl}
}

// Implementation returns the selected implementation.
func (k *Kernel) Implementation() VectorKernel {
	return k.impl
}

// Capabilities returns the capability set the kernel was selected from.
func (k *Kernel) Capabilities() CapabilitySet {
	return k.caps
}

// Implementations returns every implementation linked into the binary,
// widest first, regardless of what the current CPU supports. All of them
// either use baseline instructions of the build architecture or dispatch
// themselves, so they are safe to call on any machine of that architecture.
func Implementations() []VectorKernel {
	entries := registry.Global.ListEntries()
	out := make([]VectorKernel, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryKernel{entry: e})
	}
	return out
}
