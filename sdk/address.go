package sdk

import "strings"

// AddressDomain tells which side of the chain an address belongs to.
type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

// Address identifies an account or contract on the host chain. It is an
// opaque string as far as contract code is concerned; the host verifies
// signatures, we only compare and store addresses.
type Address string

// String returns the literal representation (like user:alice) of the address.
func (a Address) String() string {
	return string(a)
}

// Domain checks the prefix to tell user/contract/system addresses apart.
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// IsValid is a light sanity check; the host is the real authority on whether
// an address exists. Pipes and newlines are excluded because they would
// corrupt event log lines.
func (a Address) IsValid() bool {
	s := a.String()
	return s != "" && !strings.ContainsAny(s, "|\n")
}
