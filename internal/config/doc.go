// Package config loads inputmux settings.
//
// Settings come from a TOML or YAML file, then INPUTMUX_* environment
// variables, then command-line flags applied by the caller. A Watcher
// reloads the file when it changes on disk.
//
// Example configuration:
//
//	[logging]
//	level = "debug"
//
//	[pointer]
//	recenter = true
//
//	[dispatch]
//	isolate = true
//
//	[loop]
//	tick_rate = 120
//
//	[[bindings]]
//	key = "Ctrl+S"
//	log = "save pressed"
package config
