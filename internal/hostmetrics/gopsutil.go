package hostmetrics

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/process"
)

// SystemProvider reads the counters from the host OS via gopsutil.
type SystemProvider struct{}

func NewSystemProvider() *SystemProvider {
	return &SystemProvider{}
}

func (p *SystemProvider) ProcessMemory() (ProcessMemory, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ProcessMemory{}, fmt.Errorf("looking up current process: %w", err)
	}

	info, err := proc.MemoryInfo()
	if err != nil {
		return ProcessMemory{}, fmt.Errorf("reading process memory counters: %w", err)
	}

	return ProcessMemory{Committed: info.VMS, Resident: info.RSS}, nil
}

func (p *SystemProvider) CPUSample() (CPUSample, error) {
	times, err := cpu.Times(false)
	if err != nil {
		return CPUSample{}, fmt.Errorf("reading system cpu times: %w", err)
	}
	if len(times) == 0 {
		return CPUSample{}, fmt.Errorf("no aggregate cpu times reported")
	}

	// Guest time is already folded into user/nice on Linux, so it is left
	// out of the total to avoid double counting.
	t := times[0]
	total := t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal

	return CPUSample{Idle: t.Idle, Total: total}, nil
}
