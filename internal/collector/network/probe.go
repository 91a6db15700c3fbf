package network

import (
	"context"
	"time"
)

// Probe opens a TCP connection to addr and closes it again. The dial is
// bounded by timeout and by ctx, whichever ends first.
func (c *Collector) Probe(ctx context.Context, addr string, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	conn, err := c.dial(ctx, "tcp", addr)
	if err != nil {
		c.log.Debug("probe failed", "addr", addr, "elapsed", time.Since(start), "error", err)
		return err
	}
	defer conn.Close()

	c.log.Debug("probe connected", "addr", addr, "remote", conn.RemoteAddr().String(), "elapsed", time.Since(start))
	return nil
}
