package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/devzero-inc/zxstress/internal/config"
)

// scaledDownConfig is the full sequence shrunk to test size: 1 MB instead
// of 22 GiB, near-zero waits, one worker per generator kind.
func scaledDownConfig() config.Config {
	return config.Config{
		MemoryGB:       0.0009765625, // 1 MB
		FillByte:       1,
		WorkersPerKind: 1,
		RampUp:         time.Millisecond,
		SampleInterval: 10 * time.Millisecond,
	}
}

func TestRunEndToEnd(t *testing.T) {
	var out strings.Builder
	in := strings.NewReader("\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := run(ctx, scaledDownConfig(), in, &out, logr.Discard())
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "Rezerwuję ok.")
	require.Contains(t, text, "Pamięć została przydzielona i wypełniona.")
	require.Contains(t, text, "=== Statystyki pamięci procesu ===")
	require.Contains(t, text, "Pamięć wirtualna (VmSize):")
	require.Contains(t, text, "Pamięć fizyczna (VmRSS):")
	require.Contains(t, text, "=== Statystyki procesora ===")
	require.Contains(t, text, "Naciśnij Enter, aby zakończyć...")
}

func TestRunNoPauseSkipsPrompt(t *testing.T) {
	cfg := scaledDownConfig()
	cfg.NoPause = true

	var out strings.Builder
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := run(ctx, cfg, strings.NewReader(""), &out, logr.Discard())
	require.NoError(t, err)
	require.NotContains(t, out.String(), "Naciśnij Enter")
}

func TestRunFailsOnOversizedRequest(t *testing.T) {
	cfg := scaledDownConfig()
	cfg.MemoryGB = 1 << 30 // a binary exabyte; no machine commits this

	var out strings.Builder
	err := run(context.Background(), cfg, strings.NewReader("\n"), &out, logr.Discard())
	require.Error(t, err)

	// The failure happens before the fill and load phases.
	text := out.String()
	require.Contains(t, text, "Nie udało się zaalokować pamięci!")
	require.NotContains(t, text, "Pamięć została przydzielona i wypełniona.")
}

func TestRunFailsOnInvalidConfig(t *testing.T) {
	cfg := scaledDownConfig()
	cfg.SampleInterval = 0

	err := run(context.Background(), cfg, strings.NewReader("\n"), &strings.Builder{}, logr.Discard())
	require.Error(t, err)
}
