package pointer

import (
	"fmt"
	"sync"
)

// Cursor moves the native pointer. Windowing backends implement it.
type Cursor interface {
	SetCursorPos(x, y float64)
}

// CursorFunc adapts a function to the Cursor interface.
type CursorFunc func(x, y float64)

// SetCursorPos calls f(x, y).
func (f CursorFunc) SetCursorPos(x, y float64) {
	f(x, y)
}

// Offset is a two-dimensional value, either a pointer offset from the window
// center or a scroll delta.
type Offset struct {
	X float64
	Y float64
}

// IsZero returns true if both components are zero.
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}

// String returns "(x, y)".
func (o Offset) String() string {
	return fmt.Sprintf("(%g, %g)", o.X, o.Y)
}

// Center returns the offset of (absX, absY) from the center of a window of
// the given size.
func Center(absX, absY float64, width, height int) Offset {
	return Offset{
		X: absX - float64(width)/2.0,
		Y: absY - float64(height)/2.0,
	}
}

// Move describes the result of a pointer move.
type Move struct {
	// Offset is the new pointer offset from the window center.
	Offset Offset

	// Recentered is true if the native pointer was sent back to the center.
	Recentered bool

	// Target is the recenter position in window coordinates. It is only
	// meaningful when Recentered is true.
	Target Offset
}

// Snapshot is a copy of the state at one instant.
type Snapshot struct {
	Pointer  Offset
	Scroll   Offset
	Recenter bool
}

// Option configures a State.
type Option func(*State)

// WithRecenter sets the initial recenter mode.
func WithRecenter(on bool) Option {
	return func(s *State) {
		s.recenter = on
	}
}

// WithCursor sets the target for recenter warps.
func WithCursor(c Cursor) Option {
	return func(s *State) {
		s.cursor = c
	}
}

// State holds the transient pointer values for the current frame.
type State struct {
	mu sync.Mutex

	offsetX, offsetY float64
	scrollX, scrollY float64

	recenter bool
	cursor   Cursor
}

// New creates a State with zero offsets.
func New(opts ...Option) *State {
	s := &State{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnPointerMove records the pointer position relative to the window center.
// In recenter mode it also moves the native pointer back to the center, once,
// before returning.
func (s *State) OnPointerMove(absX, absY float64, width, height int) Move {
	off := Center(absX, absY, width, height)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.offsetX, s.offsetY = off.X, off.Y

	move := Move{Offset: off}
	if s.recenter {
		move.Recentered = true
		move.Target = Offset{X: float64(width) / 2.0, Y: float64(height) / 2.0}
		if s.cursor != nil {
			s.cursor.SetCursorPos(move.Target.X, move.Target.Y)
		}
	}
	return move
}

// OnScroll records the latest scroll delta, replacing any earlier one.
func (s *State) OnScroll(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scrollX, s.scrollY = dx, dy
}

// ResetOffsets zeroes the scroll delta. The pointer offset is kept.
func (s *State) ResetOffsets() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scrollX, s.scrollY = 0, 0
}

// Offset returns the last pointer offset from the window center.
func (s *State) Offset() Offset {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Offset{X: s.offsetX, Y: s.offsetY}
}

// Scroll returns the latest scroll delta since the last reset.
func (s *State) Scroll() Offset {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Offset{X: s.scrollX, Y: s.scrollY}
}

// SetRecenter enables or disables recenter mode.
func (s *State) SetRecenter(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recenter = on
}

// Recenter reports whether recenter mode is enabled.
func (s *State) Recenter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.recenter
}

// SetCursor replaces the recenter warp target. A nil cursor disables warps;
// OnPointerMove still reports them through Move.
func (s *State) SetCursor(c Cursor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor = c
}

// Snapshot returns all values under a single lock.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Pointer:  Offset{X: s.offsetX, Y: s.offsetY},
		Scroll:   Offset{X: s.scrollX, Y: s.scrollY},
		Recenter: s.recenter,
	}
}
