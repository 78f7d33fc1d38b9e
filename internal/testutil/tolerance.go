package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		require.InDelta(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: non-finite value %v", i, v)
	}
}

// RequireProbabilityCurve fails t unless every value lies in [0, 1] and the
// sequence never increases.
func RequireProbabilityCurve(t *testing.T, curve []float64) {
	t.Helper()
	for i, v := range curve {
		require.True(t, v >= 0 && v <= 1, "index %d: %v outside [0, 1]", i, v)
		if i > 0 {
			require.LessOrEqual(t, v, curve[i-1], "index %d increases", i)
		}
	}
}

// RequireNonNegative fails t if any element is negative or NaN.
func RequireNonNegative(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		require.True(t, v >= 0, "index %d: %v is negative or NaN", i, v)
	}
}

// SumTolerance returns an absolute error bound for reassociated summation of
// x: rel times the sum of magnitudes, plus a tiny floor for all-zero input.
func SumTolerance(x []float64, rel float64) float64 {
	mag := 0.0
	for _, v := range x {
		mag += math.Abs(v)
	}
	return rel*mag + 1e-300
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
