package check

import (
	"context"
	"time"

	"hwcheck/internal/domain"
)

type Check interface {
	Name() string
	Run(ctx context.Context) domain.Result
}

type CPUSource interface {
	Collect(ctx context.Context) (domain.CPUSnapshot, error)
}

type MemorySource interface {
	Collect(ctx context.Context) (domain.MemorySnapshot, error)
}

type DiskSource interface {
	Collect(ctx context.Context) (domain.DiskSnapshot, error)
}

type IdentitySource interface {
	Identity(ctx context.Context) (domain.NetworkIdentity, error)
}

type Prober interface {
	Probe(ctx context.Context, addr string, timeout time.Duration) error
}

type PlatformSource interface {
	Collect(ctx context.Context) (domain.PlatformIdentity, error)
}

type BatterySource interface {
	Collect(ctx context.Context) (*domain.BatterySnapshot, error)
}

type CPUCheck struct {
	src CPUSource
}

func NewCPUCheck(src CPUSource) *CPUCheck {
	return &CPUCheck{src: src}
}

func (c *CPUCheck) Name() string { return NameCPU }

func (c *CPUCheck) Run(ctx context.Context) domain.Result {
	snap, err := c.src.Collect(ctx)
	if err != nil {
		return domain.Fail(NameCPU, wrapError(ErrMissingCapability, err, "CPU information not available"))
	}
	return EvaluateCPU(snap)
}

type MemoryCheck struct {
	src      MemorySource
	minTotal uint64
}

func NewMemoryCheck(src MemorySource, minTotal uint64) *MemoryCheck {
	return &MemoryCheck{src: src, minTotal: minTotal}
}

func (c *MemoryCheck) Name() string { return NameMemory }

func (c *MemoryCheck) Run(ctx context.Context) domain.Result {
	snap, err := c.src.Collect(ctx)
	if err != nil {
		return domain.Fail(NameMemory, wrapError(ErrMissingCapability, err, "memory information not available"))
	}
	return EvaluateMemory(snap, c.minTotal)
}

type DiskCheck struct {
	src    DiskSource
	limits DiskLimits
}

func NewDiskCheck(src DiskSource, limits DiskLimits) *DiskCheck {
	return &DiskCheck{src: src, limits: limits}
}

func (c *DiskCheck) Name() string { return NameDisk }

func (c *DiskCheck) Run(ctx context.Context) domain.Result {
	snap, err := c.src.Collect(ctx)
	if err != nil {
		return domain.Fail(NameDisk, wrapError(ErrMissingCapability, err, "disk usage not available"))
	}
	return EvaluateDisk(snap, c.limits)
}

type NetworkCheck struct {
	identity IdentitySource
	prober   Prober
	target   string
	timeout  time.Duration
}

func NewNetworkCheck(identity IdentitySource, prober Prober, target string, timeout time.Duration) *NetworkCheck {
	return &NetworkCheck{identity: identity, prober: prober, target: target, timeout: timeout}
}

func (c *NetworkCheck) Name() string { return NameNetwork }

// Run skips the probe when the hostname does not resolve.
func (c *NetworkCheck) Run(ctx context.Context) domain.Result {
	id, err := c.identity.Identity(ctx)
	if err != nil || id.IP == "" {
		return EvaluateNetwork(id, err, c.target, nil)
	}
	return EvaluateNetwork(id, nil, c.target, c.prober.Probe(ctx, c.target, c.timeout))
}

type PlatformCheck struct {
	src     PlatformSource
	allowed []string
}

func NewPlatformCheck(src PlatformSource, allowed []string) *PlatformCheck {
	return &PlatformCheck{src: src, allowed: allowed}
}

func (c *PlatformCheck) Name() string { return NameSystem }

func (c *PlatformCheck) Run(ctx context.Context) domain.Result {
	id, err := c.src.Collect(ctx)
	if err != nil {
		return domain.Fail(NameSystem, wrapError(ErrMissingCapability, err, "platform identity not available"))
	}
	return EvaluatePlatform(id, c.allowed)
}

type BatteryCheck struct {
	src BatterySource
}

func NewBatteryCheck(src BatterySource) *BatteryCheck {
	return &BatteryCheck{src: src}
}

func (c *BatteryCheck) Name() string { return NameBattery }

// Run skips rather than fails when the battery cannot be read; the battery
// is optional hardware.
func (c *BatteryCheck) Run(ctx context.Context) domain.Result {
	snap, err := c.src.Collect(ctx)
	if err != nil {
		e := wrapError(ErrMissingCapability, err, "battery sensor unreadable")
		return domain.Skip(NameBattery, e.Error(), e)
	}
	return EvaluateBattery(snap)
}
