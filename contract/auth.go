package contract

import "stonegate/sdk"

// The guard chain: identity first, always, then whichever of role /
// temporal / state gates the operation's policy calls for. Each guard is a
// pure decision over persisted data and fails fast with a coded error; the
// host's all-or-nothing execution takes care of rolling back writes.

// requireAuth verifies the claimed caller actually authorized this
// invocation. Running it after other guards would let those guards apply
// to an unverified identity, so it always comes first.
func requireAuth(c *Ctx, addr sdk.Address) error {
	if !addr.IsValid() {
		return errInvalidAddress(addr.String())
	}
	if !c.Host.Authorized(addr) {
		return errUnauthorized(addr)
	}
	return nil
}

// requireAdmin checks the caller against the stored bootstrap admin
// identity. Admin-only setters use this, not the role table, so revoking
// roles can never lock the admin out of configuration.
func requireAdmin(c *Ctx, caller sdk.Address) error {
	admin, err := loadAdmin(c)
	if err != nil {
		return err
	}
	if caller != admin {
		return errNotAdmin(caller)
	}
	return nil
}

// requireRole resolves the caller's role and fails unless it reaches the
// minimum tier. Ordinal comparison makes Admin satisfy every requirement.
func requireRole(c *Ctx, caller sdk.Address, min Role) error {
	if role := loadRole(c, caller); !role.AtLeast(min) {
		return errInsufficientRole(role, min)
	}
	return nil
}

// requireState fails unless the lifecycle flag equals the required state.
// This is an equality gate, not a transition table: the admin may move the
// contract between any two states.
func requireState(c *Ctx, required State) error {
	if current := loadState(c); current != required {
		return errStateMismatch(current, required)
	}
	return nil
}
