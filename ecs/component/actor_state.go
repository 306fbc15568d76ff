package component

// State is the discrete player behavior state.
type State int

const (
	StateIdle State = iota
	StateWalking
	StateCrouching
	// CrouchWalking is unreachable under the current movement rules
	// (crouching forces zero velocity) but stays a distinct state for
	// later tuning.
	StateCrouchWalking
	StateFiring
	StateCrouchFiring
	StateReloading
)

var stateNames = map[State]string{
	StateIdle:          "idle",
	StateWalking:       "walking",
	StateCrouching:     "crouching",
	StateCrouchWalking: "crouch_walking",
	StateFiring:        "firing",
	StateCrouchFiring:  "crouch_firing",
	StateReloading:     "reloading",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// StateByName resolves the name a behavior script uses back to a state.
func StateByName(name string) (State, bool) {
	for s, n := range stateNames {
		if n == name {
			return s, true
		}
	}
	return StateIdle, false
}

// Locking reports whether the behavior machine must leave the state
// alone. Locked states are exited only by the animation process.
func (s State) Locking() bool {
	return s == StateFiring || s == StateCrouchFiring || s == StateReloading
}

// Clip names in the player sprite sheet.
const (
	ClipAim        = "GunAim"
	ClipWalk       = "GunWalk"
	ClipCrouch     = "GunCrouch"
	ClipFire       = "GunFire"
	ClipWalkFire   = "GunWalkFire"
	ClipCrouchFire = "GunCrouchFire"
	ClipReload     = "GunReload"
)

// ClipForState maps a state to its looping clip. Unknown or one-shot
// states fall back to the aim clip rather than failing.
func ClipForState(s State) string {
	switch s {
	case StateIdle:
		return ClipAim
	case StateWalking:
		return ClipWalk
	case StateCrouching, StateCrouchWalking:
		return ClipCrouch
	case StateFiring:
		return ClipFire
	case StateCrouchFiring:
		return ClipCrouchFire
	case StateReloading:
		return ClipReload
	default:
		return ClipAim
	}
}

// Resume cursor sentinels for the animation process. Any other value is
// an implementation-defined resume point inside the process.
const (
	CursorStart = 0  // process not started for the current state
	CursorDone  = -1 // process finished, or parked on a looping clip
)

// ActorState tracks the behavior state machine plus the resume cursor of
// the per-entity animation process. The cursor is a plain integer so the
// value stays meaningful when the process code is hot-swapped; nothing
// code-relative is ever persisted here.
type ActorState struct {
	Current    State
	Previous   State // the value Current held at the end of the prior tick
	StateTimer float64
	Cursor     int
}

// Transition switches Current and zeroes StateTimer and Cursor in the
// same step. Both the behavior machine and the animation process change
// state only through here, which keeps the timer-reset and cursor-reset
// invariants tied to the state write itself.
func (a *ActorState) Transition(to State) {
	a.Current = to
	a.StateTimer = 0
	a.Cursor = CursorStart
}

var ActorStateComponent = NewComponent[ActorState]()
