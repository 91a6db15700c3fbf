// Package cpu
package cpu

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"

	"hwcheck/internal/logger"
)

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log, freqPath: scalingCurFreqPath}
}

func (c *Collector) Collect(ctx context.Context) (CPUSnapshot, error) {
	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		c.log.Error("failed to count logical cpus", "error", err)
		return CPUSnapshot{}, fmt.Errorf("count logical cpus: %w", err)
	}

	mhz, ok := c.currentFrequency(ctx)

	return CPUSnapshot{
		LogicalCores: cores,
		FrequencyMHz: mhz,
		HasFrequency: ok,
	}, nil
}
