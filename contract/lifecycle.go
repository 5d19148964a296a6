package contract

import "stonegate/sdk"

// SetState overwrites the contract-wide lifecycle flag. Admin-only. No
// transition table is enforced: any state is reachable from any other,
// including leaving Frozen. Callers needing stricter lifecycle guarantees
// must layer their own transition validation on top.
func SetState(c *Ctx, admin sdk.Address, state State) error {
	if err := requireAuth(c, admin); err != nil {
		return err
	}
	if err := requireAdmin(c, admin); err != nil {
		return err
	}

	saveState(c, state)
	emitStateChanged(c, state)
	return nil
}

// GetState returns the current lifecycle flag, Active when unset.
func GetState(c *Ctx) State {
	return loadState(c)
}

// ActiveOnlyAction runs only while the contract is Active; Paused and
// Frozen both reject, each with an error naming the blocking state.
// Returns the current ledger timestamp.
func ActiveOnlyAction(c *Ctx, caller sdk.Address) (uint64, error) {
	if err := requireAuth(c, caller); err != nil {
		return 0, err
	}
	if err := requireState(c, StateActive); err != nil {
		return 0, err
	}

	emitActionRun(c, "active", caller)
	return c.now(), nil
}
