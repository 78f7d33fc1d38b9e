//go:build amd64 && !purego

// Package sse2 registers the narrow (128-bit, two float64 lanes) tier on amd64.
//
// The sum runs on the SSE2 assembly kernel from algo-vecmath. SSE2 has no
// packed divide worth a separate kernel at two lanes, so the ratios share
// the generic loop.
package sse2

import (
	vecsse2 "github.com/cwbudde/algo-vecmath/arch/amd64/sse2"

	"github.com/cwbudde/algo-surv/internal/cpu"
	"github.com/cwbudde/algo-surv/internal/vecmath/arch/generic"
	"github.com/cwbudde/algo-surv/internal/vecmath/registry"
)

// init registers the SSE2 implementations with the kernel registry.
//
// SSE2 provides 128-bit SIMD operations and is part of the x86-64 baseline,
// so it's available on all amd64 CPUs.
//
// Priority: 10 (medium - preferred over generic, but lower than AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		Sum:    vecsse2.Sum,
		Ratios: generic.Ratios,
	})
}
