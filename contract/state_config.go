package contract

import (
	"strconv"

	"stonegate/sdk"
)

// Contract-wide configuration lives in the instance tier: it shares the
// contract's lifetime and every invocation reads it, so one TTL extension
// covers the whole block of singletons.

// isInitialized returns true once an admin has been stored.
func isInitialized(c *Ctx) bool {
	return c.Host.StorageHas(sdk.TierInstance, AdminKey)
}

// loadAdmin returns the bootstrap admin identity.
func loadAdmin(c *Ctx) (sdk.Address, error) {
	ptr := c.Host.StorageGet(sdk.TierInstance, AdminKey)
	if ptr == nil || *ptr == "" {
		return "", errNotInitialized()
	}
	return sdk.Address(*ptr), nil
}

// saveAdmin stores the admin identity. Written exactly once, by Initialize.
func saveAdmin(c *Ctx, addr sdk.Address) {
	c.Host.StorageSet(sdk.TierInstance, AdminKey, addr.String())
	c.Host.ExtendTTL(sdk.TierInstance, AdminKey, ttlThreshold, ttlExtendTo)
}

// loadState returns the lifecycle flag, defaulting to Active when unset.
func loadState(c *Ctx) State {
	ptr := c.Host.StorageGet(sdk.TierInstance, StateKey)
	if ptr == nil || *ptr == "" {
		return StateActive
	}
	s, err := ParseState(*ptr)
	if err != nil {
		return StateActive
	}
	return s
}

func saveState(c *Ctx, s State) {
	c.Host.StorageSet(sdk.TierInstance, StateKey, s.String())
	c.Host.ExtendTTL(sdk.TierInstance, StateKey, ttlThreshold, ttlExtendTo)
}

// loadUint reads an unsigned singleton, treating absent or unparsable
// entries as zero.
func loadUint(c *Ctx, tier sdk.Tier, key string) uint64 {
	ptr := c.Host.StorageGet(tier, key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func saveUint(c *Ctx, tier sdk.Tier, key string, n uint64) {
	c.Host.StorageSet(tier, key, strconv.FormatUint(n, 10))
	c.Host.ExtendTTL(tier, key, ttlThreshold, ttlExtendTo)
}

// loadTimeLock returns the global unlock timestamp; zero means no lock.
func loadTimeLock(c *Ctx) uint64 {
	return loadUint(c, sdk.TierInstance, TimeLockKey)
}

func saveTimeLock(c *Ctx, unlock uint64) {
	saveUint(c, sdk.TierInstance, TimeLockKey, unlock)
}

// loadCooldown returns the cooldown period in seconds; zero means disabled.
func loadCooldown(c *Ctx) uint64 {
	return loadUint(c, sdk.TierInstance, CooldownKey)
}

func saveCooldown(c *Ctx, period uint64) {
	saveUint(c, sdk.TierInstance, CooldownKey, period)
}
