// Package compute provides runtime-dispatched vector kernels for survival
// analysis.
//
// A Kernel is built once from the processor's CapabilitySet and keeps the
// widest VectorKernel implementation the CPU supports:
//
//   - scalar: portable Go, one lane
//   - narrow: SSE2 on amd64, NEON on arm64, two float64 lanes
//     (assembly sum from github.com/cwbudde/algo-vecmath)
//   - medium: AVX2 on amd64, four float64 lanes (github.com/viterin/vek)
//
// AVX-512F is detected and reported as the wide tier, but no wide
// implementation is linked: such machines run the medium tier.
//
// Build with the purego tag to link only the scalar implementation.
//
// # Operations
//
//   - VectorSum: sum of a float64 slice, 0 for an empty slice
//   - SurvivalProbabilities: cumulative product-limit curve from at-risk and
//     event counts
//   - VectorMean, ParallelSum: mean, and partitioned sum on a partition.Runner
//
// # Errors
//
// Every failure is a *ComputeError whose Kind separates bad input shape
// (KindShape) from degenerate statistical input (KindDegenerate). The
// wrapped sentinels (ErrLengthMismatch, ErrZeroAtRisk, ...) can be tested
// with errors.Is. Nothing in this package panics on malformed numeric input.
//
// # Thread Safety
//
// Kernels are immutable after New and may be shared across goroutines
// without locking.
package compute
