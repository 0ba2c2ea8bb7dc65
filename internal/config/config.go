package config

import (
	"strconv"
	"strings"

	"github.com/dshills/inputmux/internal/input/key"
)

// Frame loop rates in Hz.
const (
	DefaultTickRate = 60
	MaxTickRate     = 1000
)

// Config holds all inputmux settings.
type Config struct {
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Pointer  PointerConfig  `toml:"pointer" yaml:"pointer"`
	Dispatch DispatchConfig `toml:"dispatch" yaml:"dispatch"`
	Loop     LoopConfig     `toml:"loop" yaml:"loop"`
	Script   ScriptConfig   `toml:"script" yaml:"script"`
	Bindings []Binding      `toml:"bindings" yaml:"bindings"`
}

// LoggingConfig configures the application logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
}

// PointerConfig configures pointer tracking.
type PointerConfig struct {
	// Recenter warps the pointer back to the window center after every move.
	Recenter bool `toml:"recenter" yaml:"recenter"`
}

// DispatchConfig configures key dispatch.
type DispatchConfig struct {
	// Isolate runs every subscriber even if an earlier one fails or panics.
	Isolate bool `toml:"isolate" yaml:"isolate"`
	// StopOnError ends the frame loop on the first dispatch failure.
	StopOnError bool `toml:"stop_on_error" yaml:"stop_on_error"`
}

// LoopConfig configures the frame loop.
type LoopConfig struct {
	// TickRate is the frame rate in Hz.
	TickRate int `toml:"tick_rate" yaml:"tick_rate"`
}

// ScriptConfig configures the Lua binding script.
type ScriptConfig struct {
	// Path is the script file. Empty disables scripting.
	Path string `toml:"path" yaml:"path"`
}

// Binding logs a message whenever a key chord is pressed.
type Binding struct {
	// Key is a chord such as "Ctrl+S" or "F5".
	Key string `toml:"key" yaml:"key"`
	// Log is the message written at info level.
	Log string `toml:"log" yaml:"log"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Loop:    LoopConfig{TickRate: DefaultTickRate},
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Bindings = append([]Binding(nil), c.Bindings...)
	return &clone
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !validLogLevel(c.Logging.Level) {
		return &ValidationError{Path: "logging.level", Message: "unknown log level", Value: c.Logging.Level}
	}
	if c.Loop.TickRate <= 0 {
		return &ValidationError{Path: "loop.tick_rate", Message: "must be positive", Value: c.Loop.TickRate}
	}
	if c.Loop.TickRate > MaxTickRate {
		return &ValidationError{
			Path:    "loop.tick_rate",
			Message: "must be at most " + strconv.Itoa(MaxTickRate),
			Value:   c.Loop.TickRate,
		}
	}
	for i, b := range c.Bindings {
		code, _, err := key.ParseChord(b.Key)
		if err != nil || !code.Valid() {
			return &ValidationError{
				Path:    "bindings[" + strconv.Itoa(i) + "].key",
				Message: "unknown key",
				Value:   b.Key,
			}
		}
	}
	return nil
}

func validLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
