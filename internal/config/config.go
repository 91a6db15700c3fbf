// Package config
package config

import (
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
)

const (
	KiB uint64 = 1 << 10
	MiB uint64 = 1 << 20
	GiB uint64 = 1 << 30
)

type Config struct {
	LogLevel  string `json:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat string `json:"log_format" validate:"oneof=text json"`

	MinMemory      uint64        `json:"min_memory" validate:"gt=0"`
	DiskPath       string        `json:"disk_path" validate:"required"`
	MinDiskTotal   uint64        `json:"min_disk_total" validate:"gt=0"`
	MinDiskFree    uint64        `json:"min_disk_free" validate:"gt=0"`
	MaxDiskFree    uint64        `json:"max_disk_free" validate:"gtefield=MinDiskFree"`
	ProbeAddr      string        `json:"probe_addr" validate:"hostname_port"`
	ProbeTimeout   time.Duration `json:"probe_timeout" validate:"gt=0"`
	AllowedOS      []string      `json:"allowed_os" validate:"min=1,dive,required"`
	PowerSupplyDir string        `json:"power_supply_dir" validate:"required"`
}

func Default() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		MinMemory:      5 * GiB,
		DiskPath:       "/",
		MinDiskTotal:   1 * GiB,
		MinDiskFree:    200 * MiB,
		MaxDiskFree:    1000 * GiB,
		ProbeAddr:      "8.8.8.8:53",
		ProbeTimeout:   3 * time.Second,
		AllowedOS:      []string{"Linux"},
		PowerSupplyDir: "/sys/class/power_supply",
	}
}

func Load() *Config {
	godotenv.Load()

	cfg := Default()

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}

	cfg.MinMemory = bytesEnv("HWCHECK_MIN_MEMORY", cfg.MinMemory)
	cfg.MinDiskTotal = bytesEnv("HWCHECK_MIN_DISK_TOTAL", cfg.MinDiskTotal)
	cfg.MinDiskFree = bytesEnv("HWCHECK_MIN_DISK_FREE", cfg.MinDiskFree)
	cfg.MaxDiskFree = bytesEnv("HWCHECK_MAX_DISK_FREE", cfg.MaxDiskFree)

	if v := os.Getenv("HWCHECK_DISK_PATH"); v != "" {
		cfg.DiskPath = v
	}
	if v := os.Getenv("HWCHECK_PROBE_ADDR"); v != "" {
		cfg.ProbeAddr = v
	}
	if raw := os.Getenv("HWCHECK_PROBE_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			cfg.ProbeTimeout = parsed
		}
	}
	if raw := os.Getenv("HWCHECK_ALLOWED_OS"); raw != "" {
		if names := splitList(raw); len(names) > 0 {
			cfg.AllowedOS = names
		}
	}
	if v := os.Getenv("HWCHECK_POWER_SUPPLY_DIR"); v != "" {
		cfg.PowerSupplyDir = v
	}

	return cfg
}

func bytesEnv(key string, fallback uint64) uint64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := humanize.ParseBytes(raw)
	if err != nil || n == 0 {
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
