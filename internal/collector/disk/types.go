package disk

import (
	"hwcheck/internal/domain"
	"hwcheck/internal/logger"
)

type Collector struct {
	log  logger.Logger
	path string
}

type DiskSnapshot = domain.DiskSnapshot
