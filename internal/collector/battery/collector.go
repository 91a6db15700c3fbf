// Package battery reads the host battery from the kernel power_supply class.
//
// A supply counts as the system battery when its type file says "Battery"
// (or, lacking a type file, its name looks like BAT0) and its scope is not
// "Device", which excludes wireless mice and keyboards. The first such supply
// in name order is reported.
package battery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"hwcheck/internal/logger"
	"hwcheck/pkg"
)

var (
	batteryNames = []string{"bat*"}
	mainsNames   = []string{"ac*", "adp*", "mains"}
)

func NewCollector(log logger.Logger, root string) *Collector {
	if root == "" {
		root = DefaultRoot
	}
	return &Collector{log: log, root: root}
}

// Collect returns nil and no error when the host has no battery.
func (c *Collector) Collect(ctx context.Context) (*BatterySnapshot, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.log.Debug("power_supply class not present", "path", c.root)
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.root, err)
	}

	var batteries, mains []string
	for _, e := range entries {
		name := e.Name()
		dir := filepath.Join(c.root, name)

		switch kind := readString(dir, "type"); {
		case kind == typeBattery:
			if readString(dir, "scope") == scopeDevice {
				continue
			}
			batteries = append(batteries, name)
		case kind == typeMains:
			mains = append(mains, name)
		case kind == "" && pkg.MatchAny(name, batteryNames):
			batteries = append(batteries, name)
		case kind == "" && pkg.MatchAny(name, mainsNames):
			mains = append(mains, name)
		}
	}

	if len(batteries) == 0 {
		return nil, nil
	}
	slices.Sort(batteries)
	slices.Sort(mains)

	name := batteries[0]
	dir := filepath.Join(c.root, name)

	percent, err := readPercent(dir)
	if err != nil {
		c.log.Warn("battery present but charge unreadable", "battery", name, "error", err)
		return nil, fmt.Errorf("battery %s: %w", name, err)
	}

	state := c.powerState(dir, mains)
	c.log.Debug("battery sampled", "battery", name, "percent", percent, "power", state)

	return &BatterySnapshot{
		Name:         name,
		Percent:      percent,
		PowerPlugged: state,
	}, nil
}
