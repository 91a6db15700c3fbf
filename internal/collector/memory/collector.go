// Package memory
package memory

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/mem"

	"hwcheck/internal/logger"
)

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log}
}

func (c *Collector) Collect(ctx context.Context) (MemorySnapshot, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		c.log.Error("failed to read virtual memory", "error", err)
		return MemorySnapshot{}, fmt.Errorf("read virtual memory: %w", err)
	}

	c.log.Debug("memory sampled",
		"total", humanize.IBytes(vm.Total),
		"available", humanize.IBytes(vm.Available),
	)

	return MemorySnapshot{
		TotalBytes:     vm.Total,
		AvailableBytes: vm.Available,
	}, nil
}
