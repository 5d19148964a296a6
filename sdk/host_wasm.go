//go:build wasm

package sdk

import (
	"encoding/json"
	"strconv"
)

//go:wasmimport sdk console.log
func hostLog(s *string) *string

//go:wasmimport sdk db.set_object
func hostSet(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func hostGet(key *string) *string

//go:wasmimport sdk db.rm_object
func hostDelete(key *string) *string

//go:wasmimport sdk db.extend_ttl
func hostExtendTTL(key *string, threshold *string, extendTo *string) *string

//go:wasmimport sdk system.get_env
func hostGetEnv(arg *string) *string

//go:wasmimport sdk events.publish
func hostPublishEvent(topics *string, data *string) *string

//go:wasmimport env revert
func hostRevert(msg, symbol *string)

// Revert throws a named error back to the caller and aborts the
// invocation. The host discards all writes made so far.
func Revert(msg string, symbol string) {
	hostRevert(&msg, &symbol)
	panic(msg)
}

// WasmHost adapts the chain's wasm imports to the Host interface. Storage
// keys are namespaced by tier prefix since the host exposes a flat keyspace.
type WasmHost struct {
	env       Env
	envLoaded bool
}

// NewWasmHost returns the host binding for the current invocation.
func NewWasmHost() *WasmHost { return &WasmHost{} }

func tierKey(tier Tier, key string) string {
	return tier.String() + ":" + key
}

// Log implements Host.
func (h *WasmHost) Log(msg string) { hostLog(&msg) }

// Env implements Host. The snapshot is parsed once per invocation.
func (h *WasmHost) Env() Env {
	if !h.envLoaded {
		raw := hostGetEnv(nil)
		if raw != nil {
			json.Unmarshal([]byte(*raw), &h.env)
		}
		h.envLoaded = true
	}
	return h.env
}

// Authorized implements Host by checking the invocation's signer set.
func (h *WasmHost) Authorized(addr Address) bool {
	env := h.Env()
	if addr == env.Sender.Address {
		return true
	}
	for _, a := range env.Sender.RequiredAuths {
		if a == addr {
			return true
		}
	}
	return false
}

// StorageSet implements Host.
func (h *WasmHost) StorageSet(tier Tier, key, value string) {
	k := tierKey(tier, key)
	hostSet(&k, &value)
}

// StorageGet implements Host.
func (h *WasmHost) StorageGet(tier Tier, key string) *string {
	k := tierKey(tier, key)
	return hostGet(&k)
}

// StorageHas implements Host.
func (h *WasmHost) StorageHas(tier Tier, key string) bool {
	return h.StorageGet(tier, key) != nil
}

// StorageDelete implements Host.
func (h *WasmHost) StorageDelete(tier Tier, key string) {
	k := tierKey(tier, key)
	hostDelete(&k)
}

// ExtendTTL implements Host.
func (h *WasmHost) ExtendTTL(tier Tier, key string, threshold, extendTo uint64) {
	k := tierKey(tier, key)
	th := strconv.FormatUint(threshold, 10)
	ex := strconv.FormatUint(extendTo, 10)
	hostExtendTTL(&k, &th, &ex)
}

// PublishEvent implements Host. Topics travel as a JSON array.
func (h *WasmHost) PublishEvent(topics []string, data string) {
	raw, err := json.Marshal(topics)
	if err != nil {
		Revert("could not serialize event topics", "sdk_error")
	}
	t := string(raw)
	hostPublishEvent(&t, &data)
}
