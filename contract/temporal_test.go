package contract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stonegate/sdk"
)

func TestTimeLockBoundary(t *testing.T) {
	c, h := initialized(t, bob)

	require.NoError(t, SetTimeLock(c, alice, 1000))

	h.SetTimestamp(999)
	_, err := TimeLockedAction(c, bob)
	requireCode(t, err, CodeTimeLocked, "time_locked")
	require.Contains(t, err.Error(), "1s remaining")

	h.SetTimestamp(1000)
	ts, err := TimeLockedAction(c, bob)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), ts)
}

func TestTimeLockNotConsumed(t *testing.T) {
	c, h := initialized(t, bob)

	require.NoError(t, SetTimeLock(c, alice, 600))
	h.SetTimestamp(600)

	for i := 0; i < 3; i++ {
		_, err := TimeLockedAction(c, bob)
		require.NoError(t, err)
	}
}

func TestTimeLockUnsetIsOpen(t *testing.T) {
	c, h := initialized(t, bob)

	h.SetTimestamp(1)
	ts, err := TimeLockedAction(c, bob)
	require.NoError(t, err)
	require.Equal(t, uint64(1), ts)
}

func TestTimeLockZeroClears(t *testing.T) {
	c, _ := initialized(t, bob)

	require.NoError(t, SetTimeLock(c, alice, 5000))
	_, err := TimeLockedAction(c, bob)
	requireCode(t, err, CodeTimeLocked, "time_locked")

	require.NoError(t, SetTimeLock(c, alice, 0))
	_, err = TimeLockedAction(c, bob)
	require.NoError(t, err)
}

func TestSetTimeLockNonAdmin(t *testing.T) {
	c, _ := initialized(t, bob)

	requireCode(t, SetTimeLock(c, bob, 1000), CodeNotAdmin, "not_admin")
	require.Equal(t, uint64(0), loadTimeLock(c))
}

func TestCooldownFirstCallPasses(t *testing.T) {
	c, h := initialized(t, bob)

	require.NoError(t, SetCooldown(c, alice, 300))

	// No prior record: the gate does not apply.
	h.SetTimestamp(10)
	ts, err := CooldownAction(c, bob)
	require.NoError(t, err)
	require.Equal(t, uint64(10), ts)
	require.NotZero(t, h.TTL(sdk.TierPersistent, lastActionKey(bob)))
}

func TestCooldownBoundary(t *testing.T) {
	c, h := initialized(t, bob)

	require.NoError(t, SetCooldown(c, alice, 300))

	h.SetTimestamp(2000)
	_, err := CooldownAction(c, bob)
	require.NoError(t, err)

	h.SetTimestamp(2299)
	_, err = CooldownAction(c, bob)
	requireCode(t, err, CodeCooldownActive, "cooldown_active")
	require.Contains(t, err.Error(), "1s remaining")

	h.SetTimestamp(2300)
	ts, err := CooldownAction(c, bob)
	require.NoError(t, err)
	require.Equal(t, uint64(2300), ts)
}

func TestCooldownRejectionLeavesRecordUntouched(t *testing.T) {
	c, h := initialized(t, bob)

	require.NoError(t, SetCooldown(c, alice, 300))

	h.SetTimestamp(2000)
	_, err := CooldownAction(c, bob)
	require.NoError(t, err)

	// A failed attempt must not reset the clock: blocking at t=2100 still
	// leaves t=2300 as the next admissible call.
	h.SetTimestamp(2100)
	_, err = CooldownAction(c, bob)
	requireCode(t, err, CodeCooldownActive, "cooldown_active")

	last := loadLastAction(c, bob)
	require.NotNil(t, last)
	require.Equal(t, uint64(2000), *last)

	h.SetTimestamp(2300)
	_, err = CooldownAction(c, bob)
	require.NoError(t, err)
}

func TestCooldownPerCaller(t *testing.T) {
	c, h := initialized(t, bob, carol)

	require.NoError(t, SetCooldown(c, alice, 300))

	h.SetTimestamp(2000)
	_, err := CooldownAction(c, bob)
	require.NoError(t, err)

	// Carol's clock is independent of Bob's.
	h.SetTimestamp(2001)
	_, err = CooldownAction(c, carol)
	require.NoError(t, err)

	_, err = CooldownAction(c, bob)
	requireCode(t, err, CodeCooldownActive, "cooldown_active")
}

func TestCooldownZeroDisables(t *testing.T) {
	c, h := initialized(t, bob)

	h.SetTimestamp(2000)
	for i := 0; i < 3; i++ {
		_, err := CooldownAction(c, bob)
		require.NoError(t, err)
	}
}

func TestSetCooldownNonAdmin(t *testing.T) {
	c, _ := initialized(t, bob)

	requireCode(t, SetCooldown(c, bob, 300), CodeNotAdmin, "not_admin")
	require.Equal(t, uint64(0), loadCooldown(c))
}
