// Package remote implements the HTTP client for the entitlement backend of
// record.
package remote

import (
	"log/slog"
	"sync/atomic"
)

// pendingCounter tracks in-flight backend requests. The loading signal is
// derived, never stored, so it can only report true while at least one
// request is actually outstanding.
type pendingCounter struct {
	pending atomic.Int32
	logger  *slog.Logger
}

func newPendingCounter(logger *slog.Logger) *pendingCounter {
	return &pendingCounter{logger: logger}
}

// increment marks one request as started.
func (c *pendingCounter) increment() {
	c.pending.Add(1)
}

// decrement marks one request as finished. A counter that would go negative
// is reset to zero: an unpaired decrement must never leave the loading
// signal stuck.
func (c *pendingCounter) decrement() {
	if c.pending.Add(-1) < 0 {
		c.pending.Store(0)
		c.logger.Warn("Pending request counter went negative, clamping to zero")
	}
}

// loading reports whether any request is in flight.
func (c *pendingCounter) loading() bool {
	return c.pending.Load() > 0
}
