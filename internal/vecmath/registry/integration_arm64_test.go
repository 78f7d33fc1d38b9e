//go:build arm64 && !purego

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-surv/internal/cpu"
	"github.com/cwbudde/algo-surv/internal/vecmath/registry"

	// Import arm64-specific implementations
	_ "github.com/cwbudde/algo-surv/internal/vecmath/arch/arm64/neon"
	_ "github.com/cwbudde/algo-surv/internal/vecmath/arch/generic"
)

// TestRegistryIntegration_ARM64 verifies implementations register on arm64.
func TestRegistryIntegration_ARM64(t *testing.T) {
	names := make(map[string]registry.OpEntry)
	for _, e := range registry.Global.ListEntries() {
		names[e.Name] = e
	}

	require.Contains(t, names, "generic")
	require.Contains(t, names, "neon")
	assert.Equal(t, 2, names["neon"].Lanes())

	entry := registry.Global.Lookup(cpu.DetectFeatures())
	require.NotNil(t, entry)
	if cpu.DetectFeatures().HasNEON {
		assert.Equal(t, "neon", entry.Name)
	}
}
