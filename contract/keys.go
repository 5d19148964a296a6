package contract

import "stonegate/sdk"

// Instance-tier singletons: contract-wide configuration.
const (
	AdminKey    = "cfg:admin"    // bootstrap admin address
	StateKey    = "cfg:state"    // lifecycle flag, absent = active
	TimeLockKey = "cfg:unlock"   // global unlock timestamp, absent = 0
	CooldownKey = "cfg:cooldown" // cooldown period seconds, absent = 0
)

// roleKey addresses the persistent per-account role assignment.
func roleKey(addr sdk.Address) string {
	return "role:" + addr.String()
}

// lastActionKey addresses the persistent per-account cooldown record.
func lastActionKey(addr sdk.Address) string {
	return "cd:last:" + addr.String()
}

// TTL policy for entries this contract keeps alive. Thresholds and targets
// are in ledgers, mirroring the host's extend-ttl call.
const (
	ttlThreshold = 2000
	ttlExtendTo  = 10000
)
