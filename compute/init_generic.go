//go:build purego || !(amd64 || arm64)

package compute

// This file imports only the generic implementation, for purego builds and
// architectures without a vector tier.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-surv/internal/vecmath/arch/generic"
)
