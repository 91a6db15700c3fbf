package network

import (
	"context"
	"net"

	"hwcheck/internal/domain"
	"hwcheck/internal/logger"
)

// DialFunc matches net.Dialer.DialContext.
type DialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

type Collector struct {
	log      logger.Logger
	resolver *net.Resolver
	dial     DialFunc
}

type NetworkIdentity = domain.NetworkIdentity
