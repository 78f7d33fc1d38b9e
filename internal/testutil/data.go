package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates uniform values in [-amplitude, amplitude] with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Observations generates n reproducible survival observations. Times are
// rounded to a grid of the given resolution so that ties occur; each subject
// has the event with probability eventRate, otherwise it is censored.
func Observations(seed int64, n int, resolution, eventRate float64) (time []float64, event []bool) {
	rng := rand.New(rand.NewSource(seed))
	time = make([]float64, n)
	event = make([]bool, n)
	for i := range time {
		t := rng.ExpFloat64() * 10
		if resolution > 0 {
			t = math.Round(t/resolution) * resolution
		}
		time[i] = t
		event[i] = rng.Float64() < eventRate
	}
	return time, event
}

// RiskCounts generates a valid, strictly decreasing at-risk sequence and
// matching event counts (0 <= events <= at risk) of length n.
func RiskCounts(seed int64, n int) (atRisk, events []uint) {
	rng := rand.New(rand.NewSource(seed))
	atRisk = make([]uint, n)
	events = make([]uint, n)

	remaining := uint(n * 4)
	for i := range atRisk {
		atRisk[i] = remaining
		events[i] = uint(rng.Intn(int(remaining)/4 + 1))
		remaining -= 1 + uint(rng.Intn(3))
		if remaining < 1 {
			remaining = 1
		}
	}
	return atRisk, events
}
