package contract

import "stonegate/sdk"

// GrantRole assigns a permission tier to an account. Only the stored admin
// may grant, and they must have authorized the invocation. Re-granting the
// same role is an idempotent overwrite.
func GrantRole(c *Ctx, admin, account sdk.Address, role Role) error {
	if err := requireAuth(c, admin); err != nil {
		return err
	}
	if err := requireAdmin(c, admin); err != nil {
		return err
	}
	if !account.IsValid() {
		return errInvalidAddress(account.String())
	}
	if role == RoleNone {
		// Granting the bottom tier is a revoke in disguise; force the
		// explicit operation so intent stays auditable.
		return errInvalidEnum("role", role.String())
	}

	saveRole(c, account, role)
	emitRoleGranted(c, account, role)
	return nil
}

// RevokeRole deletes an account's role assignment; the account falls back
// to the implicit lowest tier. Revoking an address with no stored role is
// a deterministic no-op. Admin-only.
func RevokeRole(c *Ctx, admin, account sdk.Address) error {
	if err := requireAuth(c, admin); err != nil {
		return err
	}
	if err := requireAdmin(c, admin); err != nil {
		return err
	}

	deleteRole(c, account)
	emitRoleRevoked(c, account)
	return nil
}

// GetRole resolves an account to its permission tier. A pure read: absent
// assignments resolve to RoleNone.
func GetRole(c *Ctx, account sdk.Address) Role {
	return loadRole(c, account)
}

// HasRole reports whether the account satisfies a minimum tier. A holder
// of a higher tier passes checks for every lower one, so HasRole(admin,
// RoleModerator) is true even though the stored role is literally Admin.
func HasRole(c *Ctx, account sdk.Address, min Role) bool {
	return loadRole(c, account).AtLeast(min)
}

// AdminAction is a sample operation restricted to Admin-tier callers. It
// shows the two-step pattern: verify identity first, then check the
// persisted permission. Returns the doubled input.
func AdminAction(c *Ctx, caller sdk.Address, value uint64) (uint64, error) {
	if err := requireAuth(c, caller); err != nil {
		return 0, err
	}
	if err := requireRole(c, caller, RoleAdmin); err != nil {
		return 0, err
	}

	result := value * 2
	emitActionRun(c, "admin", caller)
	return result, nil
}

// ModeratorAction is a sample operation open to Moderator tier and above.
// Returns the input plus 100.
func ModeratorAction(c *Ctx, caller sdk.Address, value uint64) (uint64, error) {
	if err := requireAuth(c, caller); err != nil {
		return 0, err
	}
	if err := requireRole(c, caller, RoleModerator); err != nil {
		return 0, err
	}

	result := value + 100
	emitActionRun(c, "moderator", caller)
	return result, nil
}
