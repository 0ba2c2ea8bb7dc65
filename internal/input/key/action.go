package key

import "fmt"

// Action is the key transition reported by the windowing layer.
// Values match GLFW's action constants.
type Action int

const (
	// ActionRelease indicates the key was released.
	ActionRelease Action = iota

	// ActionPress indicates the key was pressed.
	ActionPress

	// ActionRepeat indicates the key was held until it repeated.
	ActionRepeat
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionRelease:
		return "release"
	case ActionPress:
		return "press"
	case ActionRepeat:
		return "repeat"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// IsDown returns true for press and repeat transitions.
func (a Action) IsDown() bool {
	return a == ActionPress || a == ActionRepeat
}

// ParseAction parses "press", "release" or "repeat" (case-sensitive, lowercase).
func ParseAction(s string) (Action, error) {
	switch s {
	case "release":
		return ActionRelease, nil
	case "press":
		return ActionPress, nil
	case "repeat":
		return ActionRepeat, nil
	default:
		return 0, fmt.Errorf("unknown key action %q", s)
	}
}
