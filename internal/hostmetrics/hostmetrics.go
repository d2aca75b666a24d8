// Package hostmetrics is the boundary to the host OS accounting that the
// usage report needs: per-process memory counters and the system-wide
// cumulative CPU time counters. Platform calls live in the Provider
// implementations; the percentage math stays in this package.
package hostmetrics

// ProcessMemory holds one instantaneous snapshot of the current process's
// memory counters, in bytes.
type ProcessMemory struct {
	// Committed is the memory reserved and backed by swap/page-file
	// capacity, whether or not resident (VmSize analogue).
	Committed uint64

	// Resident is the memory currently backed by physical RAM pages
	// (VmRSS analogue).
	Resident uint64
}

// CPUSample holds one reading of the system-wide cumulative CPU time
// counters since boot, in seconds. Utilization is computed from the deltas
// of two samples taken some interval apart.
type CPUSample struct {
	Idle  float64
	Total float64
}

// Provider supplies the platform counters. The gopsutil-backed
// SystemProvider is the production implementation; tests install fakes.
type Provider interface {
	ProcessMemory() (ProcessMemory, error)
	CPUSample() (CPUSample, error)
}
