package generic

// Ratios computes dst[i] = (atRisk[i] - events[i]) / atRisk[i].
// Slices must have equal length. Panics if lengths differ.
func Ratios(dst, atRisk, events []float64) {
	if len(atRisk) != len(events) || len(dst) != len(atRisk) {
		panic("generic: slice length mismatch")
	}
	for i := range dst {
		dst[i] = (atRisk[i] - events[i]) / atRisk[i]
	}
}
