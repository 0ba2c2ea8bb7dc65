// Package pointer tracks per-frame pointer and scroll state.
//
// State converts absolute pointer coordinates reported by the windowing layer
// into offsets from the window center, and keeps the most recent scroll delta
// until the frame loop resets it:
//
//	state := pointer.New(pointer.WithRecenter(true), pointer.WithCursor(window))
//	state.OnPointerMove(x, y, width, height) // window callback
//	state.OnScroll(dx, dy)                   // window callback
//	...
//	look := state.Offset()                   // gameplay, once per frame
//	zoom := state.Scroll()
//	state.ResetOffsets()                     // frame loop, end of frame
//
// # Recenter Mode
//
// With recenter enabled, every pointer move warps the native pointer back to
// the window center before OnPointerMove returns. The offset then measures
// motion since the previous event, which gives unbounded relative look-around
// for first-person cameras without the pointer hitting screen edges.
//
// # Reset Semantics
//
// Scroll values are latest-wins: two scroll events in the same frame leave
// only the second visible. ResetOffsets zeroes the scroll delta but keeps the
// pointer offset, so "last known pointer offset" stays valid across frames
// without motion.
//
// # Thread Safety
//
// State is safe for concurrent use. The recenter warp happens while the state
// lock is held, so no reader observes an offset without its matching warp.
package pointer
