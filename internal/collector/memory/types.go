package memory

import (
	"hwcheck/internal/domain"
	"hwcheck/internal/logger"
)

type Collector struct {
	log logger.Logger
}

type MemorySnapshot = domain.MemorySnapshot
