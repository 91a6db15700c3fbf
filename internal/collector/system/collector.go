// Package system
package system

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"

	"hwcheck/internal/logger"
)

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log}
}

func (c *Collector) Collect(ctx context.Context) (PlatformIdentity, error) {
	goos, arch := runtime.GOOS, ""

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		c.log.Warn("failed to read host info, using runtime values", "error", err)
	} else {
		if info.OS != "" {
			goos = info.OS
		}
		arch = info.KernelArch
		c.log.Debug("host info",
			"platform", info.Platform,
			"platform_version", info.PlatformVersion,
			"kernel", info.KernelVersion,
		)
	}

	if arch == "" {
		arch = machineFromGOARCH(runtime.GOARCH)
	}

	return PlatformIdentity{
		OSName:  osName(goos),
		Machine: arch,
	}, nil
}
