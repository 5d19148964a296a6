package contract

import (
	"strconv"

	"stonegate/sdk"
)

// Per-account data lives in the persistent tier so it survives across
// ledgers independently of the contract instance.

// loadRole resolves an address to its stored role. Absence means the
// lowest tier, not an error.
func loadRole(c *Ctx, addr sdk.Address) Role {
	ptr := c.Host.StorageGet(sdk.TierPersistent, roleKey(addr))
	if ptr == nil || *ptr == "" {
		return RoleNone
	}
	role, err := ParseRole(*ptr)
	if err != nil {
		return RoleNone
	}
	return role
}

// saveRole overwrites the role assignment; re-granting is idempotent.
func saveRole(c *Ctx, addr sdk.Address, role Role) {
	key := roleKey(addr)
	c.Host.StorageSet(sdk.TierPersistent, key, role.String())
	c.Host.ExtendTTL(sdk.TierPersistent, key, ttlThreshold, ttlExtendTo)
}

// deleteRole removes the assignment; the address falls back to RoleNone.
func deleteRole(c *Ctx, addr sdk.Address) {
	c.Host.StorageDelete(sdk.TierPersistent, roleKey(addr))
}

// loadLastAction returns the caller's last cooldown-gated action
// timestamp, or nil when the caller never acted.
func loadLastAction(c *Ctx, addr sdk.Address) *uint64 {
	ptr := c.Host.StorageGet(sdk.TierPersistent, lastActionKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	ts, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		return nil
	}
	return &ts
}

// saveLastAction records a successful cooldown-gated action. Only written
// after all guards passed; rejected attempts leave the record untouched.
func saveLastAction(c *Ctx, addr sdk.Address, ts uint64) {
	key := lastActionKey(addr)
	c.Host.StorageSet(sdk.TierPersistent, key, strconv.FormatUint(ts, 10))
	c.Host.ExtendTTL(sdk.TierPersistent, key, ttlThreshold, ttlExtendTo)
}
