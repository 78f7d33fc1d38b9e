package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-surv/internal/testutil"
)

// survivalRef is the direct sequential recurrence.
func survivalRef(nRisk, nEvent []uint) []float64 {
	out := make([]float64, len(nRisk)+1)
	out[0] = 1
	for i := range nRisk {
		out[i+1] = out[i] * (float64(nRisk[i]) - float64(nEvent[i])) / float64(nRisk[i])
	}
	return out
}

func TestSurvivalProbabilities(t *testing.T) {
	cases := []struct {
		name   string
		nRisk  []uint
		nEvent []uint
		want   []float64
	}{
		{
			name:   "four steps",
			nRisk:  []uint{100, 90, 80, 70},
			nEvent: []uint{10, 5, 8, 7},
			want:   []float64{1, 0.9, 0.85, 0.765, 0.6885},
		},
		{
			name: "empty",
			want: []float64{1},
		},
		{
			name:   "no events",
			nRisk:  []uint{5, 4, 3},
			nEvent: []uint{0, 0, 0},
			want:   []float64{1, 1, 1, 1},
		},
		{
			name:   "everyone fails",
			nRisk:  []uint{4, 3},
			nEvent: []uint{1, 3},
			want:   []float64{1, 0.75, 0},
		},
		{
			name:   "single",
			nRisk:  []uint{2},
			nEvent: []uint{1},
			want:   []float64{1, 0.5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, impl := range Implementations() {
				got, err := NewWithImplementation(impl).SurvivalProbabilities(tc.nRisk, tc.nEvent)
				require.NoError(t, err, impl.Name())
				testutil.RequireSliceNearlyEqual(t, got, tc.want, 1e-12)
			}
		})
	}
}

func TestSurvivalProbabilitiesErrors(t *testing.T) {
	cases := []struct {
		name     string
		nRisk    []uint
		nEvent   []uint
		sentinel error
		kind     Kind
		index    int
	}{
		{
			name:     "length mismatch",
			nRisk:    []uint{3, 2},
			nEvent:   []uint{1},
			sentinel: ErrLengthMismatch,
			kind:     KindShape,
			index:    -1,
		},
		{
			name:     "one side empty",
			nRisk:    nil,
			nEvent:   []uint{1},
			sentinel: ErrLengthMismatch,
			kind:     KindShape,
			index:    -1,
		},
		{
			name:     "zero at risk",
			nRisk:    []uint{5, 4, 0},
			nEvent:   []uint{1, 1, 0},
			sentinel: ErrZeroAtRisk,
			kind:     KindDegenerate,
			index:    2,
		},
		{
			name:     "events exceed risk",
			nRisk:    []uint{5, 4},
			nEvent:   []uint{1, 5},
			sentinel: ErrEventsExceedRisk,
			kind:     KindDegenerate,
			index:    1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SurvivalProbabilities(tc.nRisk, tc.nEvent)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tc.sentinel)

			var ce *ComputeError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.kind, ce.Kind)
			assert.Equal(t, tc.index, ce.Index)
			assert.Equal(t, opSurvival, ce.Op)
		})
	}
}

func TestSurvivalProbabilitiesMonotone(t *testing.T) {
	for _, n := range []int{1, 3, 8, 9, 33, 500, 4097} {
		nRisk, nEvent := testutil.RiskCounts(int64(n), n)
		got, err := SurvivalProbabilities(nRisk, nEvent)
		require.NoError(t, err, "n=%d", n)
		require.Len(t, got, n+1)
		assert.Equal(t, 1.0, got[0], "n=%d", n)
		testutil.RequireProbabilityCurve(t, got)
	}
}

// Every element must carry the full product of earlier ratios. Reusing only
// the last value of the previous vector block for a whole block of outputs
// breaks this at every lane after the first.
func TestSurvivalProbabilitiesBlockCarry(t *testing.T) {
	nRisk := []uint{20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4}
	nEvent := []uint{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	want := survivalRef(nRisk, nEvent)

	for _, impl := range Implementations() {
		got, err := NewWithImplementation(impl).SurvivalProbabilities(nRisk, nEvent)
		require.NoError(t, err, impl.Name())
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-14)
		// One event out of n+1 each step telescopes to n/20.
		for i := 1; i < len(got); i++ {
			require.InDelta(t, float64(20-i)/20, got[i], 1e-14, "%s: out[%d]", impl.Name(), i)
		}
	}
}

func TestSurvivalProbabilitiesDoesNotMutateInput(t *testing.T) {
	nRisk := []uint{10, 8, 6}
	nEvent := []uint{2, 2, 2}
	_, err := SurvivalProbabilities(nRisk, nEvent)
	require.NoError(t, err)
	assert.Equal(t, []uint{10, 8, 6}, nRisk)
	assert.Equal(t, []uint{2, 2, 2}, nEvent)
}
