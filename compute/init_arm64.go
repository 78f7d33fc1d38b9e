//go:build arm64 && !purego

package compute

// This file imports arm64-specific implementation packages to trigger
// their init() functions, which register implementations with the global registry.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-surv/internal/vecmath/arch/generic"

	// ARM64 implementations
	_ "github.com/cwbudde/algo-surv/internal/vecmath/arch/arm64/neon"
)
