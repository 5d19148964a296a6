package contract

import (
	"fmt"
	"strconv"

	"stonegate/sdk"
)

// Every mutation leaves two traces: a structured event for off-chain
// indexers filtering by topic, and a terse pipe-delimited log line so a
// chain explorer can follow the contract without decoding event payloads.

// emitInitialized marks the one-time bootstrap with the admin identity.
func emitInitialized(c *Ctx, admin sdk.Address) {
	c.Host.Log(fmt.Sprintf("init|by:%s", admin))
	c.Host.PublishEvent([]string{"init"}, admin.String())
}

// emitRoleGranted records who now holds which tier.
func emitRoleGranted(c *Ctx, account sdk.Address, role Role) {
	c.Host.Log(fmt.Sprintf("rg|to:%s|r:%s", account, role))
	c.Host.PublishEvent([]string{"role", "grant", role.String()}, account.String())
}

// emitRoleRevoked mirrors the grant ping for deletions.
func emitRoleRevoked(c *Ctx, account sdk.Address) {
	c.Host.Log(fmt.Sprintf("rr|to:%s", account))
	c.Host.PublishEvent([]string{"role", "revoke"}, account.String())
}

// emitTimeLockSet tells watchers when the contract unlocks.
func emitTimeLockSet(c *Ctx, unlockTime uint64) {
	c.Host.Log(fmt.Sprintf("tl|at:%d", unlockTime))
	c.Host.PublishEvent([]string{"timelock"}, strconv.FormatUint(unlockTime, 10))
}

// emitCooldownSet announces the new throttle period.
func emitCooldownSet(c *Ctx, period uint64) {
	c.Host.Log(fmt.Sprintf("cd|p:%d", period))
	c.Host.PublishEvent([]string{"cooldown"}, strconv.FormatUint(period, 10))
}

// emitStateChanged is the single log entry for any lifecycle flip.
func emitStateChanged(c *Ctx, state State) {
	c.Host.Log(fmt.Sprintf("st|s:%s", state))
	c.Host.PublishEvent([]string{"state", state.String()}, state.String())
}

// emitActionRun records a successfully gated action by kind and caller.
func emitActionRun(c *Ctx, kind string, caller sdk.Address) {
	c.Host.Log(fmt.Sprintf("act|k:%s|by:%s", kind, caller))
	c.Host.PublishEvent([]string{"action", kind}, caller.String())
}
