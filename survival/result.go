package survival

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

// Result is a fitted Kaplan-Meier curve. All slices have one element per
// distinct observation time, in ascending time order; Survival[i] and
// StdError[i] hold the values in effect from Time[i] on.
type Result struct {
	Time     []float64
	Survival []float64
	StdError []float64
	NRisk    []uint
	NEvent   []uint
}

// Len returns the number of distinct times.
func (r *Result) Len() int {
	return len(r.Time)
}

// Curve returns the full survival curve, starting with 1 before the first
// time.
func (r *Result) Curve() []float64 {
	return append([]float64{1}, r.Survival...)
}

// StdErrorCurve returns the full standard-error curve, starting with 0.
func (r *Result) StdErrorCurve() []float64 {
	return append([]float64{0}, r.StdError...)
}

// RiskSet returns a copy of the at-risk table the curve was computed from.
func (r *Result) RiskSet() RiskSet {
	return RiskSet{
		Time:   slices.Clone(r.Time),
		AtRisk: slices.Clone(r.NRisk),
		Events: slices.Clone(r.NEvent),
	}
}

// SurvivalAt evaluates the step function at t: 1 before the first time,
// otherwise the value at the last time not after t. NaN yields NaN.
func (r *Result) SurvivalAt(t float64) float64 {
	if math.IsNaN(t) {
		return math.NaN()
	}
	i, found := slices.BinarySearch(r.Time, t)
	if found {
		return r.Survival[i]
	}
	if i == 0 {
		return 1
	}
	return r.Survival[i-1]
}

// Median returns the first time at which survival drops to 0.5 or below.
// ok is false when the curve never gets there.
func (r *Result) Median() (t float64, ok bool) {
	for i, s := range r.Survival {
		if s <= 0.5 {
			return r.Time[i], true
		}
	}
	return math.NaN(), false
}

// Band returns the pointwise interval S -/+ z*se, clipped to [0, 1].
func (r *Result) Band(z float64) (lower, upper []float64) {
	n := len(r.Survival)
	lower = slices.Clone(r.Survival)
	upper = slices.Clone(r.Survival)
	if n == 0 {
		return lower, upper
	}

	delta := make([]float64, n)
	vecmath.ScaleBlock(delta, r.StdError, z)
	vecmath.AddBlockInPlace(upper, delta)
	vecmath.ScaleBlock(delta, r.StdError, -z)
	vecmath.AddBlockInPlace(lower, delta)

	for i := range lower {
		lower[i] = clamp01(lower[i])
		upper[i] = clamp01(upper[i])
	}
	return lower, upper
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
