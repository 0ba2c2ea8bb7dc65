package engine

import (
	"sync"

	"github.com/dshills/inputmux/internal/input/dispatch"
	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/pointer"
	"github.com/dshills/inputmux/internal/platform"
)

// Logger is the subset of the application logger used by the engine.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// ErrorHandler receives dispatch failures raised inside key callbacks, which
// have no return path to the windowing layer.
type ErrorHandler func(ev key.Event, err error)

// Context owns the input core for one window.
type Context struct {
	registry *dispatch.Registry
	pointer  *pointer.State
	metrics  *Metrics
	logger   Logger
	onError  ErrorHandler

	mu      sync.Mutex
	window  platform.Window
	pending error
}

// New creates a context with a fresh registry and pointer state unless
// options supply them.
func New(opts ...Option) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = dispatch.NewRegistry()
	}
	if c.pointer == nil {
		c.pointer = pointer.New()
	}
	if c.metrics == nil {
		c.metrics = NewMetrics()
	}
	return c
}

// Registry returns the key dispatch registry.
func (c *Context) Registry() *dispatch.Registry {
	return c.registry
}

// Pointer returns the pointer state.
func (c *Context) Pointer() *pointer.State {
	return c.pointer
}

// Metrics returns the metrics tracker.
func (c *Context) Metrics() *Metrics {
	return c.metrics
}

// Window returns the attached window, or nil.
func (c *Context) Window() platform.Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window
}

// SetWindow sets the window queried for its size on pointer moves and used
// as the recenter target.
func (c *Context) SetWindow(w platform.Window) {
	c.mu.Lock()
	c.window = w
	c.mu.Unlock()

	if w == nil {
		c.pointer.SetCursor(nil)
		return
	}
	c.pointer.SetCursor(w)
}

// Attach makes src the context's window and installs the trampolines.
func (c *Context) Attach(src platform.Source) {
	c.SetWindow(src)
	src.SetCallbacks(c.Callbacks())
}

// Callbacks returns the trampolines as platform callbacks.
func (c *Context) Callbacks() platform.Callbacks {
	return platform.Callbacks{
		Key:       c.KeyCallback,
		CursorPos: c.CursorPosCallback,
		Scroll:    c.ScrollCallback,
		Resize:    c.ResizeCallback,
	}
}

// KeyCallback forwards a raw key transition to the registry.
func (c *Context) KeyCallback(code, scancode, action, mods int) {
	c.metrics.RecordKey()

	ev := key.FromRaw(code, scancode, action, mods)
	if err := c.registry.Dispatch(ev); err != nil {
		c.reportError(ev, err)
	}
}

// CursorPosCallback forwards an absolute pointer position to the pointer
// state, measured against the current window size.
func (c *Context) CursorPosCallback(x, y float64) {
	c.metrics.RecordPointer()

	var width, height int
	if w := c.Window(); w != nil {
		width, height = w.Size()
	}
	c.pointer.OnPointerMove(x, y, width, height)
}

// ScrollCallback forwards a scroll delta to the pointer state.
func (c *Context) ScrollCallback(dx, dy float64) {
	c.metrics.RecordScroll()
	c.pointer.OnScroll(dx, dy)
}

// ResizeCallback records a window resize. Sizes are queried on demand, so
// there is nothing else to update.
func (c *Context) ResizeCallback(width, height int) {
	if c.logger != nil {
		c.logger.Debug("window resized to %dx%d", width, height)
	}
}

// TakeError returns the first dispatch failure since the previous call and
// clears it.
func (c *Context) TakeError() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.pending
	c.pending = nil
	return err
}

func (c *Context) reportError(ev key.Event, err error) {
	c.metrics.RecordDispatchError()

	c.mu.Lock()
	if c.pending == nil {
		c.pending = err
	}
	c.mu.Unlock()

	if c.onError != nil {
		c.onError(ev, err)
		return
	}
	if c.logger != nil {
		c.logger.Warn("key %s: %v", ev, err)
	}
}
