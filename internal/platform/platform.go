package platform

import (
	"context"
	"errors"
)

// ErrClosed is returned by PollEvents after the source was closed or the
// user asked the window to close.
var ErrClosed = errors.New("platform: source closed")

// Window is the part of a native window the input core talks to.
type Window interface {
	// Size returns the client-area size.
	Size() (width, height int)

	// SetCursorPos moves the native pointer to window coordinates (x, y).
	SetCursorPos(x, y float64)
}

// Callbacks receives raw input from a Source. Nil fields are skipped.
type Callbacks struct {
	// Key is called once per key transition.
	Key func(code, scancode, action, mods int)

	// CursorPos is called with the absolute pointer position.
	CursorPos func(x, y float64)

	// Scroll is called with the scroll delta of one wheel event.
	Scroll func(dx, dy float64)

	// Resize is called when the client area changes size.
	Resize func(width, height int)
}

// Source is a Window that delivers input callbacks.
type Source interface {
	Window

	// SetCallbacks replaces the callbacks invoked by PollEvents.
	SetCallbacks(cb Callbacks)

	// PollEvents delivers every pending event and returns without blocking.
	PollEvents(ctx context.Context) error

	// Close releases the source. Later PollEvents calls return ErrClosed.
	Close() error
}
