// Package check turns host snapshots into pass/fail/skip verdicts.
//
// The Evaluate* functions are pure: they take a snapshot and the configured
// bounds and return a domain.Result. The Check types in checks.go pair each
// evaluator with the collector that produces its snapshot.
package check

import (
	"math"
	"slices"
	"strings"

	"hwcheck/internal/config"
	"hwcheck/internal/domain"
)

const (
	NameCPU     = "cpu"
	NameMemory  = "memory"
	NameDisk    = "disk"
	NameNetwork = "network"
	NameSystem  = "system"
	NameBattery = "battery"
)

const (
	gib = float64(config.GiB)
	mib = float64(config.MiB)
)

func EvaluateCPU(s domain.CPUSnapshot) domain.Result {
	if s.LogicalCores <= 0 {
		return domain.Fail(NameCPU, newError(ErrBoundsViolation,
			"no CPU cores detected: logical cores is %d, expected > 0", s.LogicalCores))
	}
	if !s.HasFrequency {
		return domain.Fail(NameCPU, newError(ErrMissingCapability,
			"CPU frequency not reported"))
	}
	if !(s.FrequencyMHz > 0) {
		return domain.Fail(NameCPU, newError(ErrBoundsViolation,
			"CPU frequency is %.1fMHz, expected > 0MHz", s.FrequencyMHz))
	}
	return domain.Pass(NameCPU)
}

func EvaluateMemory(s domain.MemorySnapshot, minTotal uint64) domain.Result {
	if s.TotalBytes <= minTotal {
		return domain.Fail(NameMemory, newError(ErrBoundsViolation,
			"total memory is %.1fGiB, expected > %.1fGiB", float64(s.TotalBytes)/gib, float64(minTotal)/gib))
	}
	if s.AvailableBytes == 0 {
		return domain.Fail(NameMemory, newError(ErrBoundsViolation,
			"available memory is %.1fGiB, expected > 0GiB", float64(s.AvailableBytes)/gib))
	}
	return domain.Pass(NameMemory)
}

type DiskLimits struct {
	MinTotal uint64
	MinFree  uint64
	MaxFree  uint64
}

func DiskLimitsFrom(cfg *config.Config) DiskLimits {
	return DiskLimits{
		MinTotal: cfg.MinDiskTotal,
		MinFree:  cfg.MinDiskFree,
		MaxFree:  cfg.MaxDiskFree,
	}
}

// EvaluateDisk requires total > MinTotal and MinFree <= free <= MaxFree.
func EvaluateDisk(s domain.DiskSnapshot, l DiskLimits) domain.Result {
	if s.TotalBytes <= l.MinTotal {
		return domain.Fail(NameDisk, newError(ErrBoundsViolation,
			"disk total size of %s is %.1fGiB, expected > %.1fGiB",
			s.Path, float64(s.TotalBytes)/gib, float64(l.MinTotal)/gib))
	}
	if s.FreeBytes < l.MinFree {
		return domain.Fail(NameDisk, newError(ErrBoundsViolation,
			"disk free space on %s is %.1fMiB, expected >= %.1fMiB (low-space condition)",
			s.Path, float64(s.FreeBytes)/mib, float64(l.MinFree)/mib))
	}
	if s.FreeBytes > l.MaxFree {
		return domain.Fail(NameDisk, newError(ErrBoundsViolation,
			"disk free space on %s is %.1fGiB, expected <= %.1fGiB",
			s.Path, float64(s.FreeBytes)/gib, float64(l.MaxFree)/gib))
	}
	return domain.Pass(NameDisk)
}

// EvaluateNetwork judges the identity lookup and the outbound probe. Pass
// nil errors for steps that succeeded.
func EvaluateNetwork(id domain.NetworkIdentity, resolveErr error, target string, probeErr error) domain.Result {
	if resolveErr != nil {
		return domain.Fail(NameNetwork, wrapError(ErrMissingCapability, resolveErr,
			"no IP address detected for hostname %q", id.Hostname))
	}
	if id.IP == "" {
		return domain.Fail(NameNetwork, newError(ErrMissingCapability,
			"no IP address detected for hostname %q", id.Hostname))
	}
	if probeErr != nil {
		return domain.Fail(NameNetwork, wrapError(ErrConnectivityFailure, probeErr,
			"no network connectivity to %s", target))
	}
	return domain.Pass(NameNetwork)
}

func EvaluatePlatform(id domain.PlatformIdentity, allowed []string) domain.Result {
	known := slices.ContainsFunc(allowed, func(name string) bool {
		return strings.EqualFold(strings.TrimSpace(name), id.OSName)
	})
	if !known {
		return domain.Fail(NameSystem, newError(ErrBoundsViolation,
			"operating system %q is not in the allowed set [%s]", id.OSName, strings.Join(allowed, ", ")))
	}
	if strings.TrimSpace(id.Machine) == "" {
		return domain.Fail(NameSystem, newError(ErrMissingCapability,
			"machine architecture not detected"))
	}
	return domain.Pass(NameSystem)
}

const (
	reasonNoBattery    = "no battery detected on this system"
	reasonPowerUnknown = "power status not reported by OS"
)

// EvaluateBattery treats a nil snapshot as "no battery": the check is
// skipped, not failed.
func EvaluateBattery(b *domain.BatterySnapshot) domain.Result {
	if b == nil {
		return domain.Skip(NameBattery, reasonNoBattery, newError(ErrMissingCapability, reasonNoBattery))
	}
	if math.IsNaN(b.Percent) || b.Percent < 0 || b.Percent > 100 {
		return domain.Fail(NameBattery, newError(ErrBoundsViolation,
			"unexpected battery percentage: %.1f, expected within [0, 100]", b.Percent))
	}
	if !b.PowerPlugged.Valid() {
		return domain.Fail(NameBattery, newError(ErrBoundsViolation,
			"unexpected power_plugged state value: %s, expected plugged, unplugged or unknown", b.PowerPlugged))
	}
	if b.PowerPlugged == domain.PowerUnknown {
		return domain.Skip(NameBattery, reasonPowerUnknown, newError(ErrMissingCapability, reasonPowerUnknown))
	}
	return domain.Pass(NameBattery)
}
