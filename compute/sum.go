package compute

import (
	"sync"

	"github.com/cwbudde/algo-surv/partition"
)

var (
	defaultKernel     *Kernel
	defaultKernelOnce sync.Once
)

// Default returns the process-wide kernel built from detected capabilities.
func Default() *Kernel {
	defaultKernelOnce.Do(func() {
		defaultKernel = New()
	})
	return defaultKernel
}

// VectorSum returns the sum of all elements in data using the default kernel.
// Returns 0 for an empty slice.
func VectorSum(data []float64) float64 {
	return Default().VectorSum(data)
}

// VectorSum returns the sum of all elements in data.
// Returns 0 for an empty slice.
//
// The result agrees with a left-to-right scalar sum up to floating-point
// reassociation: lanes accumulate separately and are reduced at the end.
func (k *Kernel) VectorSum(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return k.impl.Sum(data)
}

// VectorMean returns the arithmetic mean of data, or 0 for an empty slice.
func (k *Kernel) VectorMean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return k.VectorSum(data) / float64(len(data))
}

// ParallelSum sums data in contiguous partitions on r, each partition with
// the kernel's vector sum, then adds the partial sums in partition order.
// The result is deterministic for a given runner and input length.
func (k *Kernel) ParallelSum(r partition.Runner, data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	partials := partition.Run(r, data, k.VectorSum)

	total := 0.0
	for _, p := range partials {
		total += p
	}
	return total
}
