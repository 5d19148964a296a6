//go:build wasm

package main

import (
	"stonegate/contract"
	"stonegate/sdk"
)

// main is left empty on purpose
func main() {
}

func strptr(s string) *string { return &s }

// call runs one dispatched method against the wasm host binding and
// translates a coded failure into a named host revert.
func call(method string, payload *string) *string {
	raw := ""
	if payload != nil {
		raw = *payload
	}
	c := contract.NewCtx(sdk.NewWasmHost())
	result, err := contract.Invoke(c, method, raw)
	if err != nil {
		if coded, ok := sdk.AsError(err); ok {
			sdk.Revert(coded.Detail, coded.Symbol)
		}
		sdk.Revert(err.Error(), "contract_error")
	}
	return strptr(result)
}

//go:wasmexport initialize
func Initialize(payload *string) *string { return call("initialize", payload) }

//go:wasmexport grant_role
func GrantRole(payload *string) *string { return call("grant_role", payload) }

//go:wasmexport revoke_role
func RevokeRole(payload *string) *string { return call("revoke_role", payload) }

//go:wasmexport get_role
func GetRole(payload *string) *string { return call("get_role", payload) }

//go:wasmexport has_role
func HasRole(payload *string) *string { return call("has_role", payload) }

//go:wasmexport admin_action
func AdminAction(payload *string) *string { return call("admin_action", payload) }

//go:wasmexport moderator_action
func ModeratorAction(payload *string) *string { return call("moderator_action", payload) }

//go:wasmexport set_time_lock
func SetTimeLock(payload *string) *string { return call("set_time_lock", payload) }

//go:wasmexport time_locked_action
func TimeLockedAction(payload *string) *string { return call("time_locked_action", payload) }

//go:wasmexport set_cooldown
func SetCooldown(payload *string) *string { return call("set_cooldown", payload) }

//go:wasmexport cooldown_action
func CooldownAction(payload *string) *string { return call("cooldown_action", payload) }

//go:wasmexport set_state
func SetState(payload *string) *string { return call("set_state", payload) }

//go:wasmexport get_state
func GetState(payload *string) *string { return call("get_state", payload) }

//go:wasmexport active_only_action
func ActiveOnlyAction(payload *string) *string { return call("active_only_action", payload) }
