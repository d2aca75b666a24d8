package config

import (
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestMemoryBytes(t *testing.T) {
	tests := []struct {
		gb       float64
		expected uint64
	}{
		{22, 22 * 1024 * 1024 * 1024},
		{1, 1024 * 1024 * 1024},
		{0.0009765625, 1024 * 1024}, // 1 MB, the scaled-down test size
	}

	for _, tt := range tests {
		c := Default()
		c.MemoryGB = tt.gb
		require.Equal(t, tt.expected, c.MemoryBytes())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero memory", func(c *Config) { c.MemoryGB = 0 }},
		{"negative memory", func(c *Config) { c.MemoryGB = -1 }},
		{"negative workers", func(c *Config) { c.WorkersPerKind = -2 }},
		{"negative ramp-up", func(c *Config) { c.RampUp = -time.Second }},
		{"zero sample interval", func(c *Config) { c.SampleInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ZXSTRESS_MEMORY_GB", "0.5")
	t.Setenv("ZXSTRESS_CPU_WORKERS", "4")
	t.Setenv("ZXSTRESS_RAMP_UP", "250ms")
	t.Setenv("ZXSTRESS_SAMPLE_INTERVAL", "2s")
	t.Setenv("ZXSTRESS_NO_PAUSE", "true")

	c := Default()
	c.LoadEnv(logr.Discard())

	require.Equal(t, 0.5, c.MemoryGB)
	require.Equal(t, 4, c.WorkersPerKind)
	require.Equal(t, 250*time.Millisecond, c.RampUp)
	require.Equal(t, 2*time.Second, c.SampleInterval)
	require.True(t, c.NoPause)
}

func TestLoadEnvIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("ZXSTRESS_MEMORY_GB", "a lot")
	t.Setenv("ZXSTRESS_RAMP_UP", "soon")

	c := Default()
	c.LoadEnv(logr.Discard())

	require.Equal(t, Default().MemoryGB, c.MemoryGB)
	require.Equal(t, Default().RampUp, c.RampUp)
}
