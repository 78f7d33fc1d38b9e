//go:build amd64 && !purego

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-surv/internal/cpu"
	"github.com/cwbudde/algo-surv/internal/vecmath/registry"

	// Import amd64-specific implementations
	_ "github.com/cwbudde/algo-surv/internal/vecmath/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-surv/internal/vecmath/arch/amd64/sse2"
	_ "github.com/cwbudde/algo-surv/internal/vecmath/arch/generic"
)

// TestRegistryIntegration_AMD64 verifies implementations register on amd64.
func TestRegistryIntegration_AMD64(t *testing.T) {
	entries := registry.Global.ListEntries()
	require.NotEmpty(t, entries, "init() functions not running")

	names := make(map[string]registry.OpEntry)
	for _, e := range entries {
		t.Logf("  - %s (priority %d, level %s, lanes %d)", e.Name, e.Priority, e.SIMDLevel, e.Lanes())
		assert.NotNil(t, e.Sum, e.Name)
		assert.NotNil(t, e.Ratios, e.Name)
		names[e.Name] = e
	}

	for name, lanes := range map[string]int{"generic": 1, "sse2": 2, "avx2": 4} {
		e, ok := names[name]
		if assert.True(t, ok, "%s implementation not registered", name) {
			assert.Equal(t, lanes, e.Lanes(), name)
		}
	}
	assert.Len(t, names, 3)

	entry := registry.Global.Lookup(cpu.DetectFeatures())
	require.NotNil(t, entry)
	t.Logf("selected %s on this machine", entry.Name)

	forced := registry.Global.Lookup(cpu.Features{ForceGeneric: true})
	require.NotNil(t, forced)
	assert.Equal(t, "generic", forced.Name)

	wide := registry.Global.Lookup(cpu.Features{HasSSE2: true, HasAVX2: true, HasAVX512: true})
	require.NotNil(t, wide)
	assert.Equal(t, "avx2", wide.Name)
}
