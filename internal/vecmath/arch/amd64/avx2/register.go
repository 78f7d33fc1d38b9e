//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-surv/internal/cpu"
	"github.com/cwbudde/algo-surv/internal/vecmath/registry"
)

// init registers the AVX2 implementations with the kernel registry.
//
// AVX2 provides 256-bit SIMD operations. Available on Intel Haswell (2013+)
// and AMD Excavator (2015+).
//
// Priority: 20 (highest; AVX-512 machines select this tier as well)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		Sum:    Sum,
		Ratios: Ratios,
	})
}
