package battery

import (
	"hwcheck/internal/domain"
	"hwcheck/internal/logger"
)

const (
	DefaultRoot = "/sys/class/power_supply"

	typeBattery = "Battery"
	typeMains   = "Mains"
	scopeDevice = "Device"
)

type Collector struct {
	log  logger.Logger
	root string
}

type BatterySnapshot = domain.BatterySnapshot
