//go:build amd64 && !purego

package main

import "github.com/cwbudde/algo-surv/internal/vecmath/arch/amd64/avx2"

func vekAssembly() string {
	if avx2.Accelerated() {
		return "yes"
	}
	return "no"
}
