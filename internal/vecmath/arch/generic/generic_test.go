package generic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	cases := []struct {
		name string
		x    []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{3.5}, 3.5},
		{"mixed", []float64{-1, 2, -3, 0.5}, -1.5},
		{"simple", []float64{1, 2, 3, 4, 5}, 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sum(tc.x))
		})
	}
}

func TestRatios(t *testing.T) {
	atRisk := []float64{100, 90, 80, 70, 1}
	events := []float64{10, 5, 8, 7, 1}
	want := []float64{0.9, 85.0 / 90.0, 0.9, 0.9, 0}

	dst := make([]float64, len(atRisk))
	Ratios(dst, atRisk, events)

	assert.InDeltaSlice(t, want, dst, 1e-15)
}

func TestRatiosLengthMismatchPanics(t *testing.T) {
	assert.PanicsWithValue(t, "generic: slice length mismatch", func() {
		Ratios(make([]float64, 2), []float64{1, 2, 3}, []float64{0, 0, 0})
	})
}
