package compute

const opSurvival = "SurvivalProbabilities"

// SurvivalProbabilities computes the cumulative survival curve with the
// default kernel. See Kernel.SurvivalProbabilities.
func SurvivalProbabilities(nRisk, nEvent []uint) ([]float64, error) {
	return Default().SurvivalProbabilities(nRisk, nEvent)
}

// SurvivalProbabilities returns the product-limit curve for per-time at-risk
// and event counts:
//
//	out[0]   = 1
//	out[i+1] = out[i] * (nRisk[i]-nEvent[i]) / nRisk[i]
//
// The result has len(nRisk)+1 elements. Two empty slices yield [1].
//
// Errors, all *ComputeError, are returned before any output is produced:
// ErrLengthMismatch (shape) when the slices differ in length, and
// ErrZeroAtRisk or ErrEventsExceedRisk (degenerate) at the first offending
// index.
//
// Only the per-index ratios run on the vector implementation. The running
// product is a strictly ordered scalar fold, because every output element
// depends on all earlier ratios, not just on the last value of the
// preceding vector block.
func (k *Kernel) SurvivalProbabilities(nRisk, nEvent []uint) ([]float64, error) {
	if len(nRisk) != len(nEvent) {
		return nil, ShapeError(opSurvival, -1, ErrLengthMismatch)
	}
	n := len(nRisk)
	if n == 0 {
		return []float64{1}, nil
	}

	for i := range nRisk {
		if nRisk[i] == 0 {
			return nil, DegenerateError(opSurvival, i, ErrZeroAtRisk)
		}
		if nEvent[i] > nRisk[i] {
			return nil, DegenerateError(opSurvival, i, ErrEventsExceedRisk)
		}
	}

	atRisk := make([]float64, n)
	events := make([]float64, n)
	for i := range nRisk {
		atRisk[i] = float64(nRisk[i])
		events[i] = float64(nEvent[i])
	}

	ratios := make([]float64, n)
	k.impl.Ratios(ratios, atRisk, events)

	out := make([]float64, n+1)
	out[0] = 1
	for i, p := range ratios {
		out[i+1] = out[i] * p
	}
	return out, nil
}
