package hostmetrics

import "fmt"

// CPUUsageBetween computes the system-wide utilization percentage between
// two samples as 100 - 100*Δidle/Δtotal, clamped to [0, 100]. The counters
// are cumulative since boot, so prev must have been taken before cur.
func CPUUsageBetween(prev, cur CPUSample) (float64, error) {
	deltaTotal := cur.Total - prev.Total
	deltaIdle := cur.Idle - prev.Idle

	if deltaTotal <= 0 {
		return 0, fmt.Errorf("total cpu time did not advance between samples (delta=%v)", deltaTotal)
	}
	if deltaIdle < 0 {
		return 0, fmt.Errorf("idle cpu time went backwards between samples (delta=%v)", deltaIdle)
	}

	usage := 100 - deltaIdle/deltaTotal*100
	if usage < 0 {
		usage = 0
	}
	if usage > 100 {
		usage = 100
	}
	return usage, nil
}
