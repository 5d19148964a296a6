package sdk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressDomain(t *testing.T) {
	require.Equal(t, AddressDomainUser, Address("user:alice").Domain())
	require.Equal(t, AddressDomainContract, Address("contract:gate").Domain())
	require.Equal(t, AddressDomainSystem, Address("system:ledger").Domain())

	// No recognized prefix falls back to the user domain.
	require.Equal(t, AddressDomainUser, Address("alice").Domain())
}

func TestAddressIsValid(t *testing.T) {
	require.True(t, Address("user:alice").IsValid())
	require.True(t, Address("contract:gate").IsValid())

	require.False(t, Address("").IsValid())
	require.False(t, Address("user:a|b").IsValid())
	require.False(t, Address("user:a\nb").IsValid())
}
