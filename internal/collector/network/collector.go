// Package network
package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/shirou/gopsutil/v4/host"

	"hwcheck/internal/logger"
)

var ErrNoAddress = errors.New("hostname resolved to no address")

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:      log,
		resolver: net.DefaultResolver,
		dial:     (&net.Dialer{}).DialContext,
	}
}

// WithDialer replaces the function Probe uses to open connections.
func (c *Collector) WithDialer(dial DialFunc) *Collector {
	c.dial = dial
	return c
}

// Identity returns the local hostname and the first address it resolves to,
// preferring IPv4.
func (c *Collector) Identity(ctx context.Context) (NetworkIdentity, error) {
	id := NetworkIdentity{Hostname: c.hostname(ctx)}
	if id.Hostname == "" {
		return id, errors.New("hostname not available")
	}

	addrs, err := c.resolver.LookupHost(ctx, id.Hostname)
	if err != nil {
		c.log.Warn("failed to resolve hostname", "hostname", id.Hostname, "error", err)
		return id, fmt.Errorf("resolve %s: %w", id.Hostname, err)
	}

	id.IP = pickAddress(addrs)
	if id.IP == "" {
		return id, fmt.Errorf("resolve %s: %w", id.Hostname, ErrNoAddress)
	}

	return id, nil
}

func (c *Collector) hostname(ctx context.Context) string {
	info, err := host.InfoWithContext(ctx)
	if err == nil && info.Hostname != "" {
		return info.Hostname
	}
	c.log.Debug("host info has no hostname, using os.Hostname", "error", err)

	name, err := os.Hostname()
	if err != nil {
		c.log.Debug("failed to get hostname", "error", err)
		return ""
	}
	return name
}

func pickAddress(addrs []string) string {
	var fallback string
	for _, a := range addrs {
		ip := net.ParseIP(a)
		if ip == nil {
			continue
		}
		if ip.To4() != nil {
			return ip.String()
		}
		if fallback == "" {
			fallback = ip.String()
		}
	}
	return fallback
}
