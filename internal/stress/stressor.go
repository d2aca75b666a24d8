// Package stress holds the load side of the tool: the committed memory
// block and the CPU-bound busy-loop workers.
package stress

import (
	"context"
	"runtime"

	"github.com/go-logr/logr"
)

// Stressor spawns the CPU load workers. Workers are fire-and-forget: the
// goroutine handles are discarded and nothing joins them. They stop only
// when ctx is cancelled or the process exits.
type Stressor struct {
	logger  logr.Logger
	spawned int
}

func NewStressor(logger logr.Logger) *Stressor {
	return &Stressor{logger: logger}
}

// Start launches perKind sqrt workers and perKind prime workers. perKind
// <= 0 means one of each per logical CPU, which doubles up the hardware
// concurrency so the scheduler always has a runnable worker per core.
func (s *Stressor) Start(ctx context.Context, perKind int) {
	if perKind <= 0 {
		perKind = runtime.NumCPU()
	}
	for i := 0; i < perKind; i++ {
		go sqrtLoad(ctx)
		go primeLoad(ctx)
		s.spawned += 2
	}
	s.logger.Info("started cpu load workers",
		"perKind", perKind,
		"total", s.spawned,
		"logicalCPUs", runtime.NumCPU())
}

// Spawned returns how many workers Start launched so far.
func (s *Stressor) Spawned() int {
	return s.spawned
}
