// Package domain
package domain

type CPUSnapshot struct {
	LogicalCores int     `json:"logical_cores"`
	FrequencyMHz float64 `json:"frequency_mhz"`
	HasFrequency bool    `json:"has_frequency"`
}

type MemorySnapshot struct {
	TotalBytes     uint64 `json:"total_bytes"`
	AvailableBytes uint64 `json:"available_bytes"`
}

type DiskSnapshot struct {
	Path       string `json:"path"`
	TotalBytes uint64 `json:"total_bytes"`
	FreeBytes  uint64 `json:"free_bytes"`
}

type NetworkIdentity struct {
	Hostname string `json:"hostname"`
	IP       string `json:"ip"`
}

type PlatformIdentity struct {
	OSName  string `json:"os_name"`
	Machine string `json:"machine"`
}

// PowerState is whether the host runs on external power.
type PowerState int

const (
	PowerUnknown PowerState = iota
	PowerPlugged
	PowerUnplugged
)

func (p PowerState) String() string {
	switch p {
	case PowerPlugged:
		return "plugged"
	case PowerUnplugged:
		return "unplugged"
	case PowerUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Valid reports whether p is one of the three known states.
func (p PowerState) Valid() bool {
	return p >= PowerUnknown && p <= PowerUnplugged
}

type BatterySnapshot struct {
	Name         string     `json:"name"`
	Percent      float64    `json:"percent"`
	PowerPlugged PowerState `json:"power_plugged"`
}
