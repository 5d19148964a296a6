package contract

import "stonegate/sdk"

// Error codes, grouped by guard layer. The ranges follow the layered
// validation taxonomy: parameter 100-199, state 200-299, authorization
// 300-399. Codes are part of the caller-facing contract and must not be
// renumbered.
const (
	// Parameter validation.
	CodeInvalidAmount    uint32 = 100
	CodeInvalidAddress   uint32 = 103
	CodeInvalidEnum      uint32 = 107
	CodeInvalidTimestamp uint32 = 111
	CodeInvalidPayload   uint32 = 120

	// State validation.
	CodeNotInitialized uint32 = 200
	CodeContractPaused uint32 = 201
	CodeContractFrozen uint32 = 202
	CodeNotFound       uint32 = 205
	CodeAlreadyExists  uint32 = 206
	CodeCooldownActive uint32 = 210
	CodeTimeLocked     uint32 = 211

	// Authorization validation.
	CodeUnauthorized     uint32 = 300
	CodeNotAdmin         uint32 = 301
	CodeInsufficientRole uint32 = 303
)

func errInvalidAddress(raw string) *sdk.Error {
	return sdk.Errorf(CodeInvalidAddress, "invalid_address", "not a usable address: %q", raw)
}

func errInvalidEnum(what, raw string) *sdk.Error {
	return sdk.Errorf(CodeInvalidEnum, "invalid_enum", "unknown %s: %q", what, raw)
}

func errInvalidPayload(method string, cause error) *sdk.Error {
	return sdk.Errorf(CodeInvalidPayload, "invalid_payload", "bad payload for %s: %v", method, cause)
}

func errNotInitialized() *sdk.Error {
	return sdk.Errorf(CodeNotInitialized, "not_initialized", "contract not initialized")
}

func errAlreadyInitialized() *sdk.Error {
	return sdk.Errorf(CodeAlreadyExists, "already_initialized", "contract already initialized")
}

func errUnknownMethod(name string) *sdk.Error {
	return sdk.Errorf(CodeNotFound, "unknown_method", "no such method: %s", name)
}

// errStateMismatch names the current vs required state so callers know
// which lifecycle flag blocked them.
func errStateMismatch(current, required State) *sdk.Error {
	code := CodeContractPaused
	symbol := "contract_paused"
	if current == StateFrozen {
		code = CodeContractFrozen
		symbol = "contract_frozen"
	}
	return sdk.Errorf(code, symbol, "contract is %s, operation requires %s", current, required)
}

// errCooldownActive carries the remaining wait in seconds.
func errCooldownActive(remaining uint64) *sdk.Error {
	return sdk.Errorf(CodeCooldownActive, "cooldown_active", "cooldown not elapsed, %ds remaining", remaining)
}

// errTimeLocked carries the remaining wait in seconds.
func errTimeLocked(remaining uint64) *sdk.Error {
	return sdk.Errorf(CodeTimeLocked, "time_locked", "action is time-locked, %ds remaining", remaining)
}

func errUnauthorized(addr sdk.Address) *sdk.Error {
	return sdk.Errorf(CodeUnauthorized, "unauthorized", "%s did not authorize this invocation", addr)
}

func errNotAdmin(addr sdk.Address) *sdk.Error {
	return sdk.Errorf(CodeNotAdmin, "not_admin", "%s is not the contract admin", addr)
}

func errInsufficientRole(have, min Role) *sdk.Error {
	return sdk.Errorf(CodeInsufficientRole, "insufficient_role", "caller holds %s, needs at least %s", have, min)
}
