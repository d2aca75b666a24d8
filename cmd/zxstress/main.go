package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"

	"github.com/devzero-inc/zxstress/internal/config"
	"github.com/devzero-inc/zxstress/internal/hostmetrics"
	"github.com/devzero-inc/zxstress/internal/report"
	"github.com/devzero-inc/zxstress/internal/stress"
	"github.com/devzero-inc/zxstress/internal/util"
	"github.com/devzero-inc/zxstress/internal/version"
)

var (
	memoryGB       = flag.Float64("memory-gb", 22, "Size of the memory block to commit, in GiB.")
	fillByte       = flag.Uint("fill-byte", 1, "Byte value written across the block.")
	workersPerKind = flag.Int("cpu-workers", 0, "CPU workers per generator kind. 0 means one per logical CPU.")
	rampUp         = flag.Duration("ramp-up", 10*time.Second, "How long to let the load build before reporting.")
	sampleInterval = flag.Duration("sample-interval", time.Second, "Distance between the two CPU usage samples.")
	noPause        = flag.Bool("no-pause", false, "Exit without waiting for Enter.")
	showVersion    = flag.Bool("version", false, "Print version information and exit.")
)

func main() {
	flag.Parse()

	if *showVersion {
		info := version.Get()
		fmt.Printf("zxstress %s (%s, %s)\n", info.String(), info.GoVersion, info.Platform)
		os.Exit(0)
	}

	logger, err := util.NewLogger("zxstress")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Config{
		MemoryGB:       *memoryGB,
		FillByte:       byte(*fillByte),
		WorkersPerKind: *workersPerKind,
		RampUp:         *rampUp,
		SampleInterval: *sampleInterval,
		NoPause:        *noPause,
	}
	cfg.LoadEnv(logger)

	// A background context on purpose: the workers run until the process
	// exits, never joined (see the stressor docs).
	if err := run(context.Background(), cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error(err, "stress run failed")
		os.Exit(1)
	}
}

// run drives the whole sequence: allocate and fill the block, spawn the
// load workers, wait out the ramp-up, report usage, pause for Enter. The
// only error it returns is the fatal allocation/validation failure.
func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer, logger logr.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("starting stress run",
		"version", version.Get().String(),
		"memoryGB", cfg.MemoryGB,
		"workersPerKind", cfg.WorkersPerKind)

	fmt.Fprintf(out, "Rezerwuję ok. %g GB pamięci...\n", cfg.MemoryGB)
	block, err := stress.AllocBlock(cfg.MemoryBytes(), cfg.FillByte)
	if err != nil {
		fmt.Fprintln(out, "Nie udało się zaalokować pamięci!")
		return fmt.Errorf("allocating memory block: %w", err)
	}
	block.Fill()

	stressor := stress.NewStressor(logger)
	stressor.Start(ctx, cfg.WorkersPerKind)

	fmt.Fprintf(out, "\nCzekam %.0f sekund na obciążenie...\n", cfg.RampUp.Seconds())
	time.Sleep(cfg.RampUp)

	fmt.Fprintln(out, "Pamięć została przydzielona i wypełniona.")

	reporter := report.NewReporter(out, hostmetrics.NewSystemProvider(), cfg.SampleInterval, logger)
	reporter.MemoryUsage()
	reporter.CPUUsage()

	if !cfg.NoPause {
		fmt.Fprintln(out, "Naciśnij Enter, aby zakończyć...")
		if _, err := bufio.NewReader(in).ReadString('\n'); err != nil && err != io.EOF {
			logger.Error(err, "reading final acknowledgment failed")
		}
	}

	block.Release()
	return nil
}
