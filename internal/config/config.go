// Package config holds the runtime configuration of a stress run: how much
// memory to commit, how many CPU workers to spawn, and how long the pauses
// are. Values come from command-line flags with environment overrides on
// top.
package config

import (
	"fmt"
	"time"
)

const bytesPerGiB = 1024 * 1024 * 1024

// Config mirrors the command-line flags.
type Config struct {
	// MemoryGB is the size of the block to commit, in GiB. Fractional
	// values are allowed so test runs can ask for a few megabytes.
	MemoryGB float64

	// FillByte is the value written across the whole block.
	FillByte byte

	// WorkersPerKind is the number of CPU workers per generator kind.
	// Zero means one per logical CPU.
	WorkersPerKind int

	// RampUp is how long to let the load build before reporting.
	RampUp time.Duration

	// SampleInterval is the distance between the two CPU usage samples.
	SampleInterval time.Duration

	// NoPause skips the final wait for Enter.
	NoPause bool
}

// Default returns the stock configuration: 22 GiB, all cores, 10 s ramp-up.
func Default() Config {
	return Config{
		MemoryGB:       22,
		FillByte:       1,
		RampUp:         10 * time.Second,
		SampleInterval: time.Second,
	}
}

// MemoryBytes converts the configured GiB figure to bytes.
func (c Config) MemoryBytes() uint64 {
	return uint64(c.MemoryGB * bytesPerGiB)
}

// Validate rejects values a stress run cannot work with. Whether the
// requested size fits the machine's physical RAM is checked at allocation
// time, where the failure surfaces as the allocation error.
func (c Config) Validate() error {
	if c.MemoryGB <= 0 {
		return fmt.Errorf("memory size must be positive, got %v GB", c.MemoryGB)
	}
	if c.WorkersPerKind < 0 {
		return fmt.Errorf("workers per kind must not be negative, got %d", c.WorkersPerKind)
	}
	if c.RampUp < 0 {
		return fmt.Errorf("ramp-up duration must not be negative, got %v", c.RampUp)
	}
	if c.SampleInterval <= 0 {
		return fmt.Errorf("sample interval must be positive, got %v", c.SampleInterval)
	}
	return nil
}
