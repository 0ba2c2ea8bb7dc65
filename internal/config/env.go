package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "INPUTMUX_"

// envSetter applies one environment value to a config.
type envSetter func(c *Config, val string) error

// envMapping maps variable names (without prefix) to setters.
var envMapping = map[string]envSetter{
	"LOG_LEVEL": func(c *Config, val string) error {
		c.Logging.Level = strings.ToLower(val)
		return nil
	},
	"RECENTER": func(c *Config, val string) error {
		return parseBool(&c.Pointer.Recenter, val)
	},
	"ISOLATE": func(c *Config, val string) error {
		return parseBool(&c.Dispatch.Isolate, val)
	},
	"STOP_ON_ERROR": func(c *Config, val string) error {
		return parseBool(&c.Dispatch.StopOnError, val)
	},
	"TICK_RATE": func(c *Config, val string) error {
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return err
		}
		c.Loop.TickRate = n
		return nil
	},
	"SCRIPT": func(c *Config, val string) error {
		c.Script.Path = val
		return nil
	},
}

// ApplyEnv overrides settings from environment variables named prefix plus
// LOG_LEVEL, RECENTER, ISOLATE, STOP_ON_ERROR, TICK_RATE or SCRIPT.
// Empty values are treated as set.
func (c *Config) ApplyEnv(prefix string) error {
	if prefix == "" {
		prefix = EnvPrefix
	}
	for name, set := range envMapping {
		val, ok := os.LookupEnv(prefix + name)
		if !ok {
			continue
		}
		if err := set(c, val); err != nil {
			return &ValidationError{
				Path:    prefix + name,
				Message: "invalid environment value",
				Value:   val,
			}
		}
	}
	return nil
}

func parseBool(dst *bool, val string) error {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "yes", "on":
		*dst = true
		return nil
	case "no", "off":
		*dst = false
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
