package sdk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockHostAuthorization(t *testing.T) {
	m := NewMockHost()

	require.False(t, m.Authorized("user:alice"))

	m.SetSender("user:alice")
	require.True(t, m.Authorized("user:alice"))
	require.False(t, m.Authorized("user:bob"))

	m.Authorize("user:bob")
	require.True(t, m.Authorized("user:bob"))

	m.ResetAuths()
	require.False(t, m.Authorized("user:bob"))

	m.MockAllAuths()
	require.True(t, m.Authorized("user:anyone"))
}

func TestMockHostEmptySenderNeverAuthorized(t *testing.T) {
	m := NewMockHost()
	require.False(t, m.Authorized(""))
}

func TestMockHostTemporaryExpiry(t *testing.T) {
	m := NewMockHost()

	m.StorageSet(TierTemporary, "cache", "hot")
	m.ExtendTTL(TierTemporary, "cache", mockDefaultTTL+1, 2)
	require.Equal(t, m.Env().Sequence+2, m.TTL(TierTemporary, "cache"))

	m.AdvanceSequence(2)
	require.True(t, m.StorageHas(TierTemporary, "cache"))

	m.AdvanceSequence(1)
	require.False(t, m.StorageHas(TierTemporary, "cache"))

	// Persistent entries ignore sequence advancement.
	m.StorageSet(TierPersistent, "k", "v")
	m.AdvanceSequence(mockDefaultTTL * 2)
	require.True(t, m.StorageHas(TierPersistent, "k"))
}

func TestMockHostExtendTTLThreshold(t *testing.T) {
	m := NewMockHost()

	m.StorageSet(TierPersistent, "k", "v")
	before := m.TTL(TierPersistent, "k")

	// Healthy lifetime, low threshold: nothing changes.
	m.ExtendTTL(TierPersistent, "k", 10, 100000)
	require.Equal(t, before, m.TTL(TierPersistent, "k"))

	// Threshold above the remaining lifetime triggers the extension.
	m.ExtendTTL(TierPersistent, "k", mockDefaultTTL+1, 100000)
	require.Equal(t, m.Env().Sequence+uint64(100000), m.TTL(TierPersistent, "k"))

	// Missing keys stay missing.
	m.ExtendTTL(TierPersistent, "ghost", 10, 100)
	require.Zero(t, m.TTL(TierPersistent, "ghost"))
}

func TestMockHostTransactions(t *testing.T) {
	m := NewMockHost()
	first := m.Env().TxID
	require.NotEmpty(t, first)

	m.AdvanceTime(10)
	require.NotEqual(t, first, m.Env().TxID)
	require.Equal(t, uint64(10), m.Env().Timestamp)
	require.Equal(t, uint64(2), m.Env().Sequence)
}

func TestMockHostEvents(t *testing.T) {
	m := NewMockHost()
	require.Nil(t, m.LastEvent())

	m.PublishEvent([]string{"a", "b"}, "data")
	require.Len(t, m.Events(), 1)
	require.Equal(t, []string{"a", "b"}, m.LastEvent().Topics)
	require.Equal(t, "data", m.LastEvent().Data)

	require.Panics(t, func() {
		m.PublishEvent([]string{"1", "2", "3", "4", "5"}, "too many")
	})
}
