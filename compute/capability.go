package compute

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-surv/internal/cpu"
)

// Tier is a vector width class. Tiers are ordered: a higher tier processes
// more float64 lanes per instruction.
type Tier int

const (
	// TierScalar is the portable one-lane fallback.
	TierScalar Tier = iota
	// TierNarrow is 128-bit vectors, two lanes (SSE2, NEON).
	TierNarrow
	// TierMedium is 256-bit vectors, four lanes (AVX2).
	TierMedium
	// TierWide is 512-bit vectors, eight lanes (AVX-512).
	TierWide
)

// String returns the lower-case tier name accepted by ParseTier.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierNarrow:
		return "narrow"
	case TierMedium:
		return "medium"
	case TierWide:
		return "wide"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// ParseTier parses a tier name. The empty string and "auto" mean TierWide,
// i.e. no cap.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "wide":
		return TierWide, nil
	case "scalar", "generic", "none":
		return TierScalar, nil
	case "narrow":
		return TierNarrow, nil
	case "medium":
		return TierMedium, nil
	default:
		return TierScalar, fmt.Errorf("compute: unknown tier %q", s)
	}
}

func tierOf(level cpu.SIMDLevel) Tier {
	switch level {
	case cpu.SIMDSSE2, cpu.SIMDNEON:
		return TierNarrow
	case cpu.SIMDAVX2:
		return TierMedium
	case cpu.SIMDAVX512:
		return TierWide
	default:
		return TierScalar
	}
}

// CapabilitySet lists the vector tiers the processor supports. It is a value
// type and never changes after detection.
type CapabilitySet struct {
	Narrow bool
	Medium bool
	Wide   bool

	Architecture string
	Vendor       string
	Brand        string
}

// Detect returns the capability set of the current processor. The underlying
// CPU query runs once per process.
func Detect() CapabilitySet {
	return capabilitiesFrom(cpu.DetectFeatures())
}

func capabilitiesFrom(f cpu.Features) CapabilitySet {
	topo := cpu.DetectTopology()

	caps := CapabilitySet{
		Architecture: f.Architecture,
		Vendor:       topo.Vendor,
		Brand:        topo.Brand,
	}
	if f.ForceGeneric {
		return caps
	}

	caps.Narrow = f.HasSSE2 || f.HasNEON
	caps.Medium = f.HasAVX2
	caps.Wide = f.HasAVX512
	return caps
}

// Tiers returns the supported tiers in ascending order. TierScalar is always
// first.
func (c CapabilitySet) Tiers() []Tier {
	tiers := []Tier{TierScalar}
	if c.Narrow {
		tiers = append(tiers, TierNarrow)
	}
	if c.Medium {
		tiers = append(tiers, TierMedium)
	}
	if c.Wide {
		tiers = append(tiers, TierWide)
	}
	return tiers
}

// Best returns the widest supported tier.
func (c CapabilitySet) Best() Tier {
	tiers := c.Tiers()
	return tiers[len(tiers)-1]
}

// Cap returns a copy of c with every tier above limit cleared.
func (c CapabilitySet) Cap(limit Tier) CapabilitySet {
	if limit < TierNarrow {
		c.Narrow = false
	}
	if limit < TierMedium {
		c.Medium = false
	}
	if limit < TierWide {
		c.Wide = false
	}
	return c
}

// features converts the set back into registry lookup flags.
func (c CapabilitySet) features() cpu.Features {
	f := cpu.Features{
		HasAVX2:      c.Medium,
		HasAVX512:    c.Wide,
		Architecture: c.Architecture,
	}
	if c.Narrow {
		if c.Architecture == "arm64" {
			f.HasNEON = true
		} else {
			f.HasSSE2 = true
		}
	}
	return f
}

// String formats the set for logs and the CLI.
func (c CapabilitySet) String() string {
	names := make([]string, 0, 4)
	for _, t := range c.Tiers() {
		names = append(names, t.String())
	}
	return fmt.Sprintf("%s [%s]", c.Architecture, strings.Join(names, " "))
}
