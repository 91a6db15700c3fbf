package cpu

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
)

const scalingCurFreqPath = "/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq"

// currentFrequency prefers the live cpufreq value and falls back to what the
// cpuinfo table reports. ok is false when neither source has a frequency.
func (c *Collector) currentFrequency(ctx context.Context) (float64, bool) {
	mhz, err := readFreqMHz(c.freqPath)
	if err == nil {
		return mhz, true
	}
	c.log.Debug("cpufreq not available", "path", c.freqPath, "error", err)

	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		c.log.Debug("failed to read cpu info", "error", err)
		return 0, false
	}
	if len(infos) == 0 || infos[0].Mhz <= 0 {
		return 0, false
	}

	return infos[0].Mhz, true
}

// readFreqMHz reads a sysfs cpufreq file, which is expressed in kHz.
func readFreqMHz(path string) (float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	khz, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
	if err != nil {
		return 0, err
	}
	return khz / 1e3, nil
}
