//go:build amd64 && !purego

// Package avx2 provides the medium (256-bit, four float64 lanes) tier on amd64.
//
// The vector code comes from github.com/viterin/vek, whose AVX2 assembly is
// used when the CPU supports AVX2 and FMA; otherwise vek runs its own
// unrolled Go loops, so these functions are safe on any amd64 machine.
package avx2

import (
	"github.com/viterin/vek"
)

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return vek.Sum(x)
}

// Ratios computes dst[i] = (atRisk[i] - events[i]) / atRisk[i].
// Slices must have equal length. Panics if lengths differ.
//
// The subtraction and the division are applied as two separate passes, the
// same operation order as the scalar kernel.
func Ratios(dst, atRisk, events []float64) {
	if len(atRisk) != len(events) || len(dst) != len(atRisk) {
		panic("avx2: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	copy(dst, atRisk)
	vek.Sub_Inplace(dst, events)
	vek.Div_Inplace(dst, atRisk)
}

// Accelerated reports whether vek dispatches to its assembly kernels.
func Accelerated() bool {
	return vek.Info().Acceleration
}
