package contract

import "stonegate/sdk"

// Ctx carries the host binding for a single invocation. Every operation
// takes it explicitly so each test case can run against its own isolated
// host fixture instead of a process-wide singleton.
type Ctx struct {
	Host sdk.Host
}

// NewCtx wraps a host binding for one invocation.
func NewCtx(h sdk.Host) *Ctx {
	return &Ctx{Host: h}
}

// now returns the current ledger timestamp.
func (c *Ctx) now() uint64 {
	return c.Host.Env().Timestamp
}
