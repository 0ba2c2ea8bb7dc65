// Package platform defines the boundary with windowing libraries.
//
// A Source produces raw input: it owns the native window, reports its size,
// moves the native pointer, and delivers key, cursor, scroll and resize
// callbacks while PollEvents runs. Callbacks always fire on the goroutine
// that called PollEvents.
//
// Implementations:
//
//   - NullWindow: in-memory source with injectable events, for tests and
//     headless runs
//   - Terminal: tcell screen; key presses, mouse motion and wheel in cells
//   - GLFW: native window via go-gl/glfw (build with -tags glfw)
//
// Key callbacks carry GLFW-numbered key codes, actions and modifier bits so
// that every backend speaks the same integers as internal/input/key.
package platform
