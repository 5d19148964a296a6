package contract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stonegate/sdk"
)

func TestGrantAndGetRole(t *testing.T) {
	c, h := initialized(t)

	require.NoError(t, GrantRole(c, alice, bob, RoleModerator))
	require.Equal(t, RoleModerator, GetRole(c, bob))
	require.NotZero(t, h.TTL(sdk.TierPersistent, roleKey(bob)))

	last := h.LastEvent()
	require.NotNil(t, last)
	require.Equal(t, []string{"role", "grant", "moderator"}, last.Topics)
	require.Equal(t, bob.String(), last.Data)
}

func TestGrantRoleOverwrites(t *testing.T) {
	c, _ := initialized(t)

	require.NoError(t, GrantRole(c, alice, bob, RoleUser))
	require.NoError(t, GrantRole(c, alice, bob, RoleModerator))
	require.Equal(t, RoleModerator, GetRole(c, bob))

	// Re-granting the same role is a no-op overwrite, not an error.
	require.NoError(t, GrantRole(c, alice, bob, RoleModerator))
	require.Equal(t, RoleModerator, GetRole(c, bob))
}

func TestGrantRoleNoneRejected(t *testing.T) {
	c, _ := initialized(t)

	requireCode(t, GrantRole(c, alice, bob, RoleNone), CodeInvalidEnum, "invalid_enum")
	require.Equal(t, RoleNone, GetRole(c, bob))
}

func TestGrantRoleInvalidAccount(t *testing.T) {
	c, _ := initialized(t)

	requireCode(t, GrantRole(c, alice, "", RoleUser), CodeInvalidAddress, "invalid_address")
	requireCode(t, GrantRole(c, alice, "user:a|b", RoleUser), CodeInvalidAddress, "invalid_address")
}

func TestGrantRoleNonAdmin(t *testing.T) {
	c, _ := initialized(t, bob)

	require.NoError(t, GrantRole(c, alice, bob, RoleAdmin))

	// Even an Admin-tier role holder is not the bootstrap admin.
	requireCode(t, GrantRole(c, bob, carol, RoleUser), CodeNotAdmin, "not_admin")
	require.Equal(t, RoleNone, GetRole(c, carol))
}

func TestGrantRoleUnauthorizedAdmin(t *testing.T) {
	c, h := initialized(t)

	h.SetSender(bob)
	requireCode(t, GrantRole(c, alice, carol, RoleUser), CodeUnauthorized, "unauthorized")
}

func TestRevokeRole(t *testing.T) {
	c, h := initialized(t)

	require.NoError(t, GrantRole(c, alice, bob, RoleModerator))
	require.NoError(t, RevokeRole(c, alice, bob))
	require.Equal(t, RoleNone, GetRole(c, bob))

	last := h.LastEvent()
	require.NotNil(t, last)
	require.Equal(t, []string{"role", "revoke"}, last.Topics)
}

func TestRevokeAbsentRoleIsNoop(t *testing.T) {
	c, _ := initialized(t)

	require.NoError(t, RevokeRole(c, alice, carol))
	require.Equal(t, RoleNone, GetRole(c, carol))
}

func TestGetRoleUnknownAccount(t *testing.T) {
	c, _ := initialized(t)
	require.Equal(t, RoleNone, GetRole(c, carol))
}

func TestHasRoleHierarchy(t *testing.T) {
	c, _ := initialized(t)

	require.NoError(t, GrantRole(c, alice, bob, RoleModerator))
	require.NoError(t, GrantRole(c, alice, carol, RoleUser))

	// Admin satisfies every tier.
	require.True(t, HasRole(c, alice, RoleNone))
	require.True(t, HasRole(c, alice, RoleUser))
	require.True(t, HasRole(c, alice, RoleModerator))
	require.True(t, HasRole(c, alice, RoleAdmin))

	// Moderator satisfies itself and below.
	require.True(t, HasRole(c, bob, RoleUser))
	require.True(t, HasRole(c, bob, RoleModerator))
	require.False(t, HasRole(c, bob, RoleAdmin))

	// User stops at User.
	require.True(t, HasRole(c, carol, RoleUser))
	require.False(t, HasRole(c, carol, RoleModerator))

	// Unknown accounts only satisfy the bottom tier.
	require.True(t, HasRole(c, "user:dave", RoleNone))
	require.False(t, HasRole(c, "user:dave", RoleUser))
}

func TestAdminAction(t *testing.T) {
	c, h := initialized(t, bob)

	result, err := AdminAction(c, alice, 21)
	require.NoError(t, err)
	require.Equal(t, uint64(42), result)

	last := h.LastEvent()
	require.NotNil(t, last)
	require.Equal(t, []string{"action", "admin"}, last.Topics)

	require.NoError(t, GrantRole(c, alice, bob, RoleModerator))
	_, err = AdminAction(c, bob, 21)
	requireCode(t, err, CodeInsufficientRole, "insufficient_role")
}

func TestModeratorAction(t *testing.T) {
	c, _ := initialized(t, bob, carol)

	require.NoError(t, GrantRole(c, alice, bob, RoleModerator))
	require.NoError(t, GrantRole(c, alice, carol, RoleUser))

	result, err := ModeratorAction(c, bob, 7)
	require.NoError(t, err)
	require.Equal(t, uint64(107), result)

	// The admin passes the moderator gate through the hierarchy.
	result, err = ModeratorAction(c, alice, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(100), result)

	_, err = ModeratorAction(c, carol, 7)
	requireCode(t, err, CodeInsufficientRole, "insufficient_role")
}

func TestActionUnauthorizedCaller(t *testing.T) {
	c, _ := initialized(t)

	_, err := AdminAction(c, sdk.Address("user:mallory"), 1)
	requireCode(t, err, CodeUnauthorized, "unauthorized")

	_, err = ModeratorAction(c, sdk.Address("user:mallory"), 1)
	requireCode(t, err, CodeUnauthorized, "unauthorized")
}
