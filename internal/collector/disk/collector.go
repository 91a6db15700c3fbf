// Package disk
package disk

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/disk"

	"hwcheck/internal/logger"
)

// NewCollector samples the filesystem mounted at path.
func NewCollector(log logger.Logger, path string) *Collector {
	if path == "" {
		path = "/"
	}
	return &Collector{log: log, path: path}
}

func (c *Collector) Collect(ctx context.Context) (DiskSnapshot, error) {
	usage, err := disk.UsageWithContext(ctx, c.path)
	if err != nil {
		c.log.Error("failed to read filesystem usage", "path", c.path, "error", err)
		return DiskSnapshot{Path: c.path}, fmt.Errorf("read usage of %s: %w", c.path, err)
	}

	c.log.Debug("disk sampled",
		"path", c.path,
		"fstype", usage.Fstype,
		"total", humanize.IBytes(usage.Total),
		"free", humanize.IBytes(usage.Free),
	)

	return DiskSnapshot{
		Path:       c.path,
		TotalBytes: usage.Total,
		FreeBytes:  usage.Free,
	}, nil
}
