// Package report renders the human-readable usage report on stdout. The
// lines are printed in Polish, matching the tool's original console output;
// diagnostics go to the logger instead.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-logr/logr"

	"github.com/devzero-inc/zxstress/internal/hostmetrics"
)

const megabyte = 1024 * 1024

// Reporter prints the memory and CPU sections of the usage report.
type Reporter struct {
	out      io.Writer
	provider hostmetrics.Provider
	logger   logr.Logger
	interval time.Duration
}

// NewReporter builds a reporter that samples through provider and waits
// interval between the two CPU samples.
func NewReporter(out io.Writer, provider hostmetrics.Provider, interval time.Duration, logger logr.Logger) *Reporter {
	return &Reporter{
		out:      out,
		provider: provider,
		logger:   logger,
		interval: interval,
	}
}

// MemoryUsage prints the process memory section. A failed query prints the
// error line and returns; it never aborts the run.
func (r *Reporter) MemoryUsage() {
	fmt.Fprintln(r.out, "\n=== Statystyki pamięci procesu ===")

	pm, err := r.provider.ProcessMemory()
	if err != nil {
		r.logger.Error(err, "process memory query failed")
		fmt.Fprintln(r.out, "Nie udało się uzyskać danych o pamięci!")
		return
	}

	fmt.Fprintf(r.out, "Pamięć wirtualna (VmSize): %d MB\n", pm.Committed/megabyte)
	fmt.Fprintf(r.out, "Pamięć fizyczna (VmRSS): %d MB\n", pm.Resident/megabyte)
}

// CPUUsage samples the system counters twice, one interval apart, and
// prints the overall utilization percentage. A failed query or a malformed
// delta prints the error line and skips the percentage; it is never fatal.
func (r *Reporter) CPUUsage() {
	fmt.Fprintln(r.out, "\n=== Statystyki procesora ===")

	first, err := r.provider.CPUSample()
	if err != nil {
		r.skipCPU(err)
		return
	}

	time.Sleep(r.interval)

	second, err := r.provider.CPUSample()
	if err != nil {
		r.skipCPU(err)
		return
	}

	usage, err := hostmetrics.CPUUsageBetween(first, second)
	if err != nil {
		r.skipCPU(err)
		return
	}

	fmt.Fprintf(r.out, "Obciążenie CPU: %.4g%%\n", usage)
}

func (r *Reporter) skipCPU(err error) {
	r.logger.Error(err, "cpu usage query failed")
	fmt.Fprintln(r.out, "Nie udało się uzyskać danych o procesorze!")
}
