package sdk

// Sender describes who signed the current invocation.
type Sender struct {
	Address       Address   `json:"id"`
	RequiredAuths []Address `json:"required_auths"`
}

// Env is the per-invocation snapshot supplied by the host. Contract code
// must not cache it across invocations.
type Env struct {
	TxID      string `json:"tx.id"`
	Timestamp uint64 `json:"block.timestamp"`
	Sequence  uint64 `json:"block.height"`
	Sender    Sender `json:"sender"`
}

// Tier selects one of the host's storage durability tiers.
type Tier uint8

const (
	// TierPersistent holds per-account data that must survive across
	// ledgers as long as its TTL is extended.
	TierPersistent Tier = iota
	// TierInstance holds contract-wide configuration sharing the
	// contract's own lifetime.
	TierInstance
	// TierTemporary holds short-lived entries that the host drops once
	// their TTL runs out.
	TierTemporary
)

// String returns the short tier name used in bucket names and logs.
func (t Tier) String() string {
	switch t {
	case TierPersistent:
		return "persistent"
	case TierInstance:
		return "instance"
	case TierTemporary:
		return "temporary"
	default:
		return "unknown"
	}
}

// Host is the boundary between contract code and the execution
// environment. On chain it is backed by wasm imports; natively by the
// local runtime or the in-memory mock. All storage values are strings,
// matching the wire format of the host ABI.
//
// Every invocation is atomic from the contract's point of view: either
// the whole call commits or the host discards all writes.
type Host interface {
	// Log writes a line to the host console / event log.
	Log(msg string)

	// Env returns the invocation snapshot (sender, tx id, ledger time).
	Env() Env

	// Authorized reports whether addr signed off on this invocation.
	Authorized(addr Address) bool

	StorageSet(tier Tier, key, value string)
	StorageGet(tier Tier, key string) *string
	StorageHas(tier Tier, key string) bool
	StorageDelete(tier Tier, key string)

	// ExtendTTL keeps an entry alive: if the entry would expire within
	// threshold ledgers, its lifetime is pushed out to extendTo ledgers
	// from now.
	ExtendTTL(tier Tier, key string, threshold, extendTo uint64)

	// PublishEvent emits a structured event with up to four topics.
	PublishEvent(topics []string, data string)
}
