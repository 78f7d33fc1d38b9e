package cpu

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// defaultL2Bytes is assumed when the cache hierarchy cannot be queried.
const defaultL2Bytes = 256 << 10

// Topology describes the processor beyond its vector extensions: identity,
// core counts and cache sizes. It is used to size work partitions.
type Topology struct {
	Vendor        string
	Brand         string
	PhysicalCores int
	LogicalCores  int
	L1DataBytes   int
	L2Bytes       int
	L3Bytes       int
}

var (
	topology     Topology
	topologyOnce sync.Once
)

// DetectTopology returns the cached processor topology.
//
// Unknown values reported by cpuid (zero or negative) are replaced with
// conservative defaults so callers can divide by them safely.
func DetectTopology() Topology {
	topologyOnce.Do(func() {
		topology = detectTopologyImpl()
	})
	return topology
}

func detectTopologyImpl() Topology {
	t := Topology{
		Vendor:        cpuid.CPU.VendorString,
		Brand:         cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		L1DataBytes:   cpuid.CPU.Cache.L1D,
		L2Bytes:       cpuid.CPU.Cache.L2,
		L3Bytes:       cpuid.CPU.Cache.L3,
	}

	if t.LogicalCores <= 0 {
		t.LogicalCores = runtime.NumCPU()
	}
	if t.PhysicalCores <= 0 {
		t.PhysicalCores = t.LogicalCores
	}
	if t.L2Bytes <= 0 {
		t.L2Bytes = defaultL2Bytes
	}
	if t.L1DataBytes < 0 {
		t.L1DataBytes = 0
	}
	if t.L3Bytes < 0 {
		t.L3Bytes = 0
	}
	if t.Vendor == "" {
		t.Vendor = "unknown"
	}

	return t
}
