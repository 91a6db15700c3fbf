package check

import (
	"hwcheck/internal/collector/battery"
	"hwcheck/internal/collector/cpu"
	"hwcheck/internal/collector/disk"
	"hwcheck/internal/collector/memory"
	"hwcheck/internal/collector/network"
	"hwcheck/internal/collector/system"
	"hwcheck/internal/config"
	"hwcheck/internal/logger"
)

// NewDefaultSuite wires every host check to its live collector.
func NewDefaultSuite(cfg *config.Config, log logger.Logger) *Suite {
	net := network.NewCollector(log)

	return NewSuite(log,
		NewCPUCheck(cpu.NewCollector(log)),
		NewMemoryCheck(memory.NewCollector(log), cfg.MinMemory),
		NewDiskCheck(disk.NewCollector(log, cfg.DiskPath), DiskLimitsFrom(cfg)),
		NewNetworkCheck(net, net, cfg.ProbeAddr, cfg.ProbeTimeout),
		NewPlatformCheck(system.NewCollector(log), cfg.AllowedOS),
		NewBatteryCheck(battery.NewCollector(log, cfg.PowerSupplyDir)),
	)
}
