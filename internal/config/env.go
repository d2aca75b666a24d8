package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-logr/logr"
)

// LoadEnv applies environment overrides on top of c. Each accepted override
// is logged; unparseable values are logged and ignored.
func (c *Config) LoadEnv(logger logr.Logger) {
	if v := os.Getenv("ZXSTRESS_MEMORY_GB"); v != "" {
		if gb, err := strconv.ParseFloat(v, 64); err == nil {
			c.MemoryGB = gb
			logger.Info("Loaded memory size from environment", "gb", gb)
		} else {
			logger.Error(err, "Failed to parse ZXSTRESS_MEMORY_GB environment variable", "value", v)
		}
	}

	if v := os.Getenv("ZXSTRESS_CPU_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.WorkersPerKind = n
			logger.Info("Loaded cpu worker count from environment", "workers", n)
		} else {
			logger.Error(err, "Failed to parse ZXSTRESS_CPU_WORKERS environment variable", "value", v)
		}
	}

	if v := os.Getenv("ZXSTRESS_RAMP_UP"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RampUp = d
			logger.Info("Loaded ramp-up duration from environment", "duration", d)
		} else {
			logger.Error(err, "Failed to parse ZXSTRESS_RAMP_UP environment variable", "value", v)
		}
	}

	if v := os.Getenv("ZXSTRESS_SAMPLE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.SampleInterval = d
			logger.Info("Loaded sample interval from environment", "duration", d)
		} else {
			logger.Error(err, "Failed to parse ZXSTRESS_SAMPLE_INTERVAL environment variable", "value", v)
		}
	}

	if v := os.Getenv("ZXSTRESS_NO_PAUSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.NoPause = b
			logger.Info("Loaded no-pause switch from environment", "noPause", b)
		} else {
			logger.Error(err, "Failed to parse ZXSTRESS_NO_PAUSE environment variable", "value", v)
		}
	}
}
