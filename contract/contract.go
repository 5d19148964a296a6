package contract

import "stonegate/sdk"

// Initialize stores the caller as the bootstrap admin, grants them the
// Admin role so role-gated operations work immediately, and sets the
// lifecycle flag to Active. Must be called exactly once; repeated calls
// fail so the admin identity cannot be hijacked after deployment.
func Initialize(c *Ctx, admin sdk.Address) error {
	if err := requireAuth(c, admin); err != nil {
		return err
	}
	if isInitialized(c) {
		return errAlreadyInitialized()
	}

	saveAdmin(c, admin)
	saveRole(c, admin, RoleAdmin)
	saveState(c, StateActive)

	emitInitialized(c, admin)
	return nil
}

// Admin returns the bootstrap admin identity.
func Admin(c *Ctx) (sdk.Address, error) {
	return loadAdmin(c)
}
