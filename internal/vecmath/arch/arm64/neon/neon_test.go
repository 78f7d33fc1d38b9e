//go:build arm64 && !purego

package neon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-surv/internal/cpu"
	"github.com/cwbudde/algo-surv/internal/vecmath/arch/generic"
	"github.com/cwbudde/algo-surv/internal/vecmath/registry"
)

func TestRegisteredSumMatchesGeneric(t *testing.T) {
	entry := registry.Global.Lookup(cpu.Features{HasNEON: true})
	require.NotNil(t, entry)
	require.Equal(t, "neon", entry.Name)

	for _, n := range []int{0, 1, 2, 3, 7, 64, 1001} {
		x := make([]float64, n)
		for i := range x {
			x[i] = float64(i%13) - 6.5
		}
		assert.InDelta(t, generic.Sum(x), entry.Sum(x), 1e-9, "n=%d", n)
	}
}
