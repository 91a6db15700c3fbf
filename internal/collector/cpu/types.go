package cpu

import (
	"hwcheck/internal/domain"
	"hwcheck/internal/logger"
)

type Collector struct {
	log      logger.Logger
	freqPath string
}

type CPUSnapshot = domain.CPUSnapshot
