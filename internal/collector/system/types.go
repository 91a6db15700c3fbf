package system

import (
	"hwcheck/internal/domain"
	"hwcheck/internal/logger"
)

type Collector struct {
	log logger.Logger
}

type PlatformIdentity = domain.PlatformIdentity
