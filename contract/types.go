package contract

// Role is a permission tier. Tiers are totally ordered: a higher rank
// satisfies any lower-tier requirement, so gates compare ordinals instead
// of doing set membership checks.
type Role uint8

const (
	RoleNone      Role = 0
	RoleUser      Role = 1
	RoleModerator Role = 2
	RoleAdmin     Role = 3
)

// String serializes the role into the word stored on chain and shown in
// events.
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleModerator:
		return "moderator"
	case RoleAdmin:
		return "admin"
	default:
		return "none"
	}
}

// AtLeast reports whether the role satisfies a minimum tier.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

// ParseRole maps a stored or payload word back to a role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "none":
		return RoleNone, nil
	case "user":
		return RoleUser, nil
	case "moderator":
		return RoleModerator, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleNone, errInvalidEnum("role", s)
	}
}

// State is the contract-wide lifecycle flag. Absent storage means Active.
type State uint8

const (
	StateActive State = 0
	StatePaused State = 1
	StateFrozen State = 2
)

// String serializes the state into the stored word.
func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateFrozen:
		return "frozen"
	default:
		return "active"
	}
}

// ParseState maps a stored or payload word back to a state.
func ParseState(s string) (State, error) {
	switch s {
	case "active":
		return StateActive, nil
	case "paused":
		return StatePaused, nil
	case "frozen":
		return StateFrozen, nil
	default:
		return StateActive, errInvalidEnum("state", s)
	}
}
