package contract

import (
	"encoding/json"
	"strconv"
	"strings"

	"stonegate/sdk"
)

// Payload structs for the method dispatcher. Payloads arrive as JSON
// strings over the host ABI; results leave as plain strings.

type initializeArgs struct {
	Admin string `json:"admin"`
}

type grantRoleArgs struct {
	Admin   string `json:"admin"`
	Account string `json:"account"`
	Role    string `json:"role"`
}

type revokeRoleArgs struct {
	Admin   string `json:"admin"`
	Account string `json:"account"`
}

type accountArgs struct {
	Account string `json:"account"`
}

type hasRoleArgs struct {
	Account string `json:"account"`
	Role    string `json:"role"`
}

type actionArgs struct {
	Caller string `json:"caller"`
	Value  uint64 `json:"value"`
}

type callerArgs struct {
	Caller string `json:"caller"`
}

type setTimeLockArgs struct {
	Admin      string `json:"admin"`
	UnlockTime uint64 `json:"unlock_time"`
}

type setCooldownArgs struct {
	Admin  string `json:"admin"`
	Period uint64 `json:"period"`
}

type setStateArgs struct {
	Admin string `json:"admin"`
	State string `json:"state"`
}

// decode unpacks a JSON payload into the method's args struct.
func decode[T any](method, payload string) (*T, error) {
	var v T
	if err := json.Unmarshal([]byte(strings.TrimSpace(payload)), &v); err != nil {
		return nil, errInvalidPayload(method, err)
	}
	return &v, nil
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// Invoke routes a method name and JSON payload to the matching operation.
// The wasm entrypoints and the local CLI both go through here, so the
// call surface stays identical on and off chain.
func Invoke(c *Ctx, method, payload string) (string, error) {
	switch method {
	case "initialize":
		args, err := decode[initializeArgs](method, payload)
		if err != nil {
			return "", err
		}
		if err := Initialize(c, sdk.Address(args.Admin)); err != nil {
			return "", err
		}
		return "initialized", nil

	case "grant_role":
		args, err := decode[grantRoleArgs](method, payload)
		if err != nil {
			return "", err
		}
		role, err := ParseRole(args.Role)
		if err != nil {
			return "", err
		}
		if err := GrantRole(c, sdk.Address(args.Admin), sdk.Address(args.Account), role); err != nil {
			return "", err
		}
		return "granted", nil

	case "revoke_role":
		args, err := decode[revokeRoleArgs](method, payload)
		if err != nil {
			return "", err
		}
		if err := RevokeRole(c, sdk.Address(args.Admin), sdk.Address(args.Account)); err != nil {
			return "", err
		}
		return "revoked", nil

	case "get_role":
		args, err := decode[accountArgs](method, payload)
		if err != nil {
			return "", err
		}
		return GetRole(c, sdk.Address(args.Account)).String(), nil

	case "has_role":
		args, err := decode[hasRoleArgs](method, payload)
		if err != nil {
			return "", err
		}
		min, err := ParseRole(args.Role)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(HasRole(c, sdk.Address(args.Account), min)), nil

	case "admin_action":
		args, err := decode[actionArgs](method, payload)
		if err != nil {
			return "", err
		}
		result, err := AdminAction(c, sdk.Address(args.Caller), args.Value)
		if err != nil {
			return "", err
		}
		return formatUint(result), nil

	case "moderator_action":
		args, err := decode[actionArgs](method, payload)
		if err != nil {
			return "", err
		}
		result, err := ModeratorAction(c, sdk.Address(args.Caller), args.Value)
		if err != nil {
			return "", err
		}
		return formatUint(result), nil

	case "set_time_lock":
		args, err := decode[setTimeLockArgs](method, payload)
		if err != nil {
			return "", err
		}
		if err := SetTimeLock(c, sdk.Address(args.Admin), args.UnlockTime); err != nil {
			return "", err
		}
		return "time lock set", nil

	case "time_locked_action":
		args, err := decode[callerArgs](method, payload)
		if err != nil {
			return "", err
		}
		ts, err := TimeLockedAction(c, sdk.Address(args.Caller))
		if err != nil {
			return "", err
		}
		return formatUint(ts), nil

	case "set_cooldown":
		args, err := decode[setCooldownArgs](method, payload)
		if err != nil {
			return "", err
		}
		if err := SetCooldown(c, sdk.Address(args.Admin), args.Period); err != nil {
			return "", err
		}
		return "cooldown set", nil

	case "cooldown_action":
		args, err := decode[callerArgs](method, payload)
		if err != nil {
			return "", err
		}
		ts, err := CooldownAction(c, sdk.Address(args.Caller))
		if err != nil {
			return "", err
		}
		return formatUint(ts), nil

	case "set_state":
		args, err := decode[setStateArgs](method, payload)
		if err != nil {
			return "", err
		}
		state, err := ParseState(args.State)
		if err != nil {
			return "", err
		}
		if err := SetState(c, sdk.Address(args.Admin), state); err != nil {
			return "", err
		}
		return "state set", nil

	case "get_state":
		return GetState(c).String(), nil

	case "active_only_action":
		args, err := decode[callerArgs](method, payload)
		if err != nil {
			return "", err
		}
		ts, err := ActiveOnlyAction(c, sdk.Address(args.Caller))
		if err != nil {
			return "", err
		}
		return formatUint(ts), nil

	default:
		return "", errUnknownMethod(method)
	}
}

// Methods lists every dispatchable method name, for CLI help output.
func Methods() []string {
	return []string{
		"initialize",
		"grant_role",
		"revoke_role",
		"get_role",
		"has_role",
		"admin_action",
		"moderator_action",
		"set_time_lock",
		"time_locked_action",
		"set_cooldown",
		"cooldown_action",
		"set_state",
		"get_state",
		"active_only_action",
	}
}
