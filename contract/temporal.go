package contract

import "stonegate/sdk"

// SetTimeLock stores a global unlock timestamp. Until the ledger clock
// reaches it, TimeLockedAction rejects every caller. Zero clears the lock.
// Admin-only.
func SetTimeLock(c *Ctx, admin sdk.Address, unlockTime uint64) error {
	if err := requireAuth(c, admin); err != nil {
		return err
	}
	if err := requireAdmin(c, admin); err != nil {
		return err
	}

	saveTimeLock(c, unlockTime)
	emitTimeLockSet(c, unlockTime)
	return nil
}

// TimeLockedAction succeeds once the ledger timestamp reaches the stored
// unlock time, boundary included. The lock is not consumed: after it
// elapses the action stays open permanently. Returns the current ledger
// timestamp.
func TimeLockedAction(c *Ctx, caller sdk.Address) (uint64, error) {
	if err := requireAuth(c, caller); err != nil {
		return 0, err
	}

	now := c.now()
	if unlock := loadTimeLock(c); now < unlock {
		return 0, errTimeLocked(unlock - now)
	}

	emitActionRun(c, "timelock", caller)
	return now, nil
}

// SetCooldown stores the minimum number of seconds between successive
// cooldown-gated calls by the same caller. Zero disables the gate.
// Admin-only.
func SetCooldown(c *Ctx, admin sdk.Address, period uint64) error {
	if err := requireAuth(c, admin); err != nil {
		return err
	}
	if err := requireAdmin(c, admin); err != nil {
		return err
	}

	saveCooldown(c, period)
	emitCooldownSet(c, period)
	return nil
}

// CooldownAction is rate-limited per caller: it fails while
// now < last + period and otherwise records now as the caller's new
// last-action timestamp. The boundary succeeds (elapsed means
// now >= last + period). A first-time caller always passes. Rejections
// never touch the record, so failed attempts earn no credit. Returns the
// current ledger timestamp.
func CooldownAction(c *Ctx, caller sdk.Address) (uint64, error) {
	if err := requireAuth(c, caller); err != nil {
		return 0, err
	}

	now := c.now()
	period := loadCooldown(c)
	if last := loadLastAction(c, caller); last != nil && now < *last+period {
		return 0, errCooldownActive(*last + period - now)
	}

	saveLastAction(c, caller, now)
	emitActionRun(c, "cooldown", caller)
	return now, nil
}
