package sdk

import (
	"fmt"
	"strconv"
)

// MockHost is an in-memory Host for unit tests. Each test creates its own
// instance, sets the ledger clock and the authorization set, and inspects
// the recorded events and logs afterwards. Nothing is shared between
// instances, so guard-chain tests stay hermetic.
type MockHost struct {
	env      Env
	authAll  bool
	auths    map[Address]struct{}
	tiers    [3]map[string]string
	ttls     [3]map[string]uint64
	events   []Event
	logs     []string
	txSerial uint64
}

// NewMockHost returns a fresh host at ledger sequence 1, timestamp 0, with
// no authorized addresses.
func NewMockHost() *MockHost {
	m := &MockHost{
		auths: map[Address]struct{}{},
	}
	for i := range m.tiers {
		m.tiers[i] = map[string]string{}
		m.ttls[i] = map[string]uint64{}
	}
	m.env.Sequence = 1
	m.nextTx()
	return m
}

func (m *MockHost) nextTx() {
	m.txSerial++
	m.env.TxID = "tx-" + strconv.FormatUint(m.txSerial, 10)
}

// SetTimestamp moves the ledger clock to ts.
func (m *MockHost) SetTimestamp(ts uint64) { m.env.Timestamp = ts }

// AdvanceTime moves the ledger clock forward by d seconds and starts a new
// transaction, like a fresh invocation arriving later.
func (m *MockHost) AdvanceTime(d uint64) {
	m.env.Timestamp += d
	m.AdvanceSequence(1)
}

// AdvanceSequence moves the ledger sequence forward by n and expires any
// temporary entries whose TTL ran out, mimicking host archival.
func (m *MockHost) AdvanceSequence(n uint64) {
	m.env.Sequence += n
	for key, liveUntil := range m.ttls[TierTemporary] {
		if liveUntil < m.env.Sequence {
			delete(m.tiers[TierTemporary], key)
			delete(m.ttls[TierTemporary], key)
		}
	}
	m.nextTx()
}

// SetSender sets the invocation sender. The sender is always authorized.
func (m *MockHost) SetSender(addr Address) { m.env.Sender.Address = addr }

// Authorize marks addresses as having signed the current invocation.
func (m *MockHost) Authorize(addrs ...Address) {
	for _, a := range addrs {
		m.auths[a] = struct{}{}
	}
	m.env.Sender.RequiredAuths = append(m.env.Sender.RequiredAuths, addrs...)
}

// ResetAuths clears all authorizations, including mock-all mode.
func (m *MockHost) ResetAuths() {
	m.auths = map[Address]struct{}{}
	m.env.Sender.RequiredAuths = nil
	m.authAll = false
}

// MockAllAuths makes every address pass the authorization check, for tests
// that exercise logic below the identity layer.
func (m *MockHost) MockAllAuths() { m.authAll = true }

// Events returns all events published so far.
func (m *MockHost) Events() []Event { return m.events }

// LastEvent returns the most recent event, or nil if none was published.
func (m *MockHost) LastEvent() *Event {
	if len(m.events) == 0 {
		return nil
	}
	return &m.events[len(m.events)-1]
}

// Logs returns all log lines written so far.
func (m *MockHost) Logs() []string { return m.logs }

// TTL reports the ledger sequence until which the entry stays alive, or 0
// if the key is unknown.
func (m *MockHost) TTL(tier Tier, key string) uint64 { return m.ttls[tier][key] }

// Log implements Host.
func (m *MockHost) Log(msg string) { m.logs = append(m.logs, msg) }

// Env implements Host.
func (m *MockHost) Env() Env { return m.env }

// Authorized implements Host.
func (m *MockHost) Authorized(addr Address) bool {
	if m.authAll {
		return true
	}
	if addr == m.env.Sender.Address && addr != "" {
		return true
	}
	_, ok := m.auths[addr]
	return ok
}

const mockDefaultTTL = 4096

// StorageSet implements Host. New entries get a default lifetime.
func (m *MockHost) StorageSet(tier Tier, key, value string) {
	m.tiers[tier][key] = value
	if _, ok := m.ttls[tier][key]; !ok {
		m.ttls[tier][key] = m.env.Sequence + mockDefaultTTL
	}
}

// StorageGet implements Host. It returns nil for missing keys.
func (m *MockHost) StorageGet(tier Tier, key string) *string {
	v, ok := m.tiers[tier][key]
	if !ok {
		return nil
	}
	return &v
}

// StorageHas implements Host.
func (m *MockHost) StorageHas(tier Tier, key string) bool {
	_, ok := m.tiers[tier][key]
	return ok
}

// StorageDelete implements Host.
func (m *MockHost) StorageDelete(tier Tier, key string) {
	delete(m.tiers[tier], key)
	delete(m.ttls[tier], key)
}

// ExtendTTL implements Host.
func (m *MockHost) ExtendTTL(tier Tier, key string, threshold, extendTo uint64) {
	if !m.StorageHas(tier, key) {
		return
	}
	liveUntil := m.ttls[tier][key]
	if liveUntil < m.env.Sequence+threshold {
		m.ttls[tier][key] = m.env.Sequence + extendTo
	}
}

// PublishEvent implements Host.
func (m *MockHost) PublishEvent(topics []string, data string) {
	if len(topics) > MaxEventTopics {
		panic(fmt.Sprintf("too many event topics: %d", len(topics)))
	}
	cp := make([]string, len(topics))
	copy(cp, topics)
	m.events = append(m.events, Event{Topics: cp, Data: data})
}
