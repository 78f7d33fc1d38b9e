//go:build arm64 && !purego

// Package neon registers the narrow (128-bit, two float64 lanes) tier on arm64.
//
// The sum runs on the NEON assembly kernel from algo-vecmath; the ratios
// share the generic loop.
package neon

import (
	vecneon "github.com/cwbudde/algo-vecmath/arch/arm64/neon"

	"github.com/cwbudde/algo-surv/internal/cpu"
	"github.com/cwbudde/algo-surv/internal/vecmath/arch/generic"
	"github.com/cwbudde/algo-surv/internal/vecmath/registry"
)

// init registers the NEON implementations with the kernel registry.
//
// NEON (Advanced SIMD) is mandatory on ARMv8, so this tier is selected on
// every arm64 machine unless ForceGeneric is set.
//
// Priority: 10
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  10,

		Sum:    vecneon.Sum,
		Ratios: generic.Ratios,
	})
}
