package battery

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hwcheck/internal/domain"
)

var errNoCharge = errors.New("no energy, charge or capacity attribute")

func readString(dir, attr string) string {
	b, err := os.ReadFile(filepath.Join(dir, attr))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func readFloat(dir, attr string) (float64, bool) {
	raw := readString(dir, attr)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// readPercent uses energy (µWh) or charge (µAh) ratios when the driver exposes
// them and falls back to the driver's own capacity percentage. The value is
// not clamped; broken firmware reporting more than 100% must stay visible.
func readPercent(dir string) (float64, error) {
	for _, pair := range [][2]string{
		{"energy_now", "energy_full"},
		{"charge_now", "charge_full"},
	} {
		now, okNow := readFloat(dir, pair[0])
		full, okFull := readFloat(dir, pair[1])
		if okNow && okFull && full > 0 {
			return 100 * now / full, nil
		}
	}

	if capacity, ok := readFloat(dir, "capacity"); ok {
		return capacity, nil
	}

	return 0, errNoCharge
}

// powerState trusts an AC adapter's online flag first, then the battery's
// own status.
func (c *Collector) powerState(batteryDir string, mains []string) domain.PowerState {
	for _, name := range mains {
		switch readString(filepath.Join(c.root, name), "online") {
		case "1":
			return domain.PowerPlugged
		case "0":
			return domain.PowerUnplugged
		}
	}

	switch strings.ToLower(readString(batteryDir, "status")) {
	case "charging", "full":
		return domain.PowerPlugged
	case "discharging":
		return domain.PowerUnplugged
	default:
		return domain.PowerUnknown
	}
}
