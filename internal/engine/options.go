package engine

import (
	"time"

	"github.com/dshills/inputmux/internal/input/dispatch"
	"github.com/dshills/inputmux/internal/input/pointer"
)

// Loop frequency limits in frames per second.
const (
	DefaultTickRate = 60
	MaxTickRate     = 1000
)

// Option configures a Context during creation.
type Option func(*Context)

// WithRegistry uses an existing registry instead of a new one.
func WithRegistry(r *dispatch.Registry) Option {
	return func(c *Context) {
		c.registry = r
	}
}

// WithPointer uses an existing pointer state instead of a new one.
func WithPointer(p *pointer.State) Option {
	return func(c *Context) {
		c.pointer = p
	}
}

// WithErrorHandler sets the handler for dispatch failures.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *Context) {
		c.onError = h
	}
}

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(c *Context) {
		c.logger = l
	}
}

// WithMetrics sets the metrics tracker.
func WithMetrics(m *Metrics) Option {
	return func(c *Context) {
		c.metrics = m
	}
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithTickRate sets the frame rate. Non-positive values are ignored and
// rates above MaxTickRate are clamped.
func WithTickRate(hz int) LoopOption {
	return func(l *Loop) {
		if hz <= 0 {
			return
		}
		hz = min(hz, MaxTickRate)
		l.interval = time.Second / time.Duration(hz)
	}
}

// WithStopOnError makes Step return the first dispatch failure of the frame.
func WithStopOnError(on bool) LoopOption {
	return func(l *Loop) {
		l.stopOnError.Store(on)
	}
}
