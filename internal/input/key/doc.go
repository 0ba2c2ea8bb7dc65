// Package key provides key identifiers and key event types for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Code: A bounded key identifier in the range [0, MaxKeys)
//   - Action: The transition that produced an event (press, release, repeat)
//   - Modifier: Modifier keys held during the event (Shift, Ctrl, Alt, Super)
//   - Event: A single key transition with scancode, modifiers and timestamp
//
// # Key Codes
//
// Codes follow the GLFW key numbering so that windowing backends can forward
// their raw values without translation. Printable keys use their ASCII value
// ('A' is 65, Space is 32), special keys start at 256 (Escape) and the last
// defined key is Menu (348). Code values outside [0, MaxKeys) are never valid
// identifiers; Unknown (-1) is what backends report for unmapped keys.
//
// # Key Names
//
// Codes can be looked up by name for configuration files and scripts:
//
//   - Single characters: "a", "W", "1", "/"
//   - Special keys: "Escape", "Enter", "Space", "F5", "KP0", "LeftShift"
//   - Aliases: "Esc", "CR", "Return", "BS", "PgUp"
//
// Name lookups are case-insensitive.
package key
