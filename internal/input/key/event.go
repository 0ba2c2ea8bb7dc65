package key

import "time"

// Event represents a single key transition.
type Event struct {
	// Code identifies the key.
	Code Code

	// Scancode is the platform-specific scancode, passed through untouched.
	Scancode int

	// Action is the transition kind.
	Action Action

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(code Code, action Action, mods Modifier) Event {
	return Event{
		Code:      code,
		Action:    action,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// FromRaw builds an event from the integers a native key callback receives.
func FromRaw(code, scancode, action, mods int) Event {
	return Event{
		Code:      Code(code),
		Scancode:  scancode,
		Action:    Action(action),
		Modifiers: Modifier(mods),
		Timestamp: time.Now(),
	}
}

// IsPress returns true if the key went down.
func (e Event) IsPress() bool {
	return e.Action == ActionPress
}

// IsRelease returns true if the key went up.
func (e Event) IsRelease() bool {
	return e.Action == ActionRelease
}

// IsRepeat returns true if this is an auto-repeat.
func (e Event) IsRepeat() bool {
	return e.Action == ActionRepeat
}

// String returns a representation like "Ctrl+W press".
func (e Event) String() string {
	name := e.Code.String()
	if mods := e.Modifiers.String(); mods != "" {
		name = mods + "+" + name
	}
	return name + " " + e.Action.String()
}
