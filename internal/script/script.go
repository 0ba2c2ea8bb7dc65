package script

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inputmux/internal/input/dispatch"
	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/pointer"
)

// DefaultTimeout bounds a single script load or callback.
const DefaultTimeout = 5 * time.Second

// Logger receives print output and callback failures.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Option configures a Script.
type Option func(*Script)

// WithLogger routes Lua print output to l.
func WithLogger(l Logger) Option {
	return func(s *Script) {
		s.logger = l
	}
}

// WithTimeout sets the time budget for each load or callback.
// Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(s *Script) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// Script is a Lua state bound to a registry and pointer state.
//
// gopher-lua states are not goroutine-safe. Every entry into the state,
// including key callbacks, holds mu.
type Script struct {
	L *lua.LState

	mu       sync.Mutex
	registry *dispatch.Registry
	pointer  *pointer.State
	logger   Logger
	timeout  time.Duration

	handles map[string]dispatch.Handle
	closed  bool
}

// New creates a sandboxed script state with the input module installed.
func New(reg *dispatch.Registry, ptr *pointer.State, opts ...Option) *Script {
	s := &Script{
		registry: reg,
		pointer:  ptr,
		timeout:  DefaultTimeout,
		handles:  make(map[string]dispatch.Handle),
	}
	for _, opt := range opts {
		opt(s)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	s.L = L
	s.installPrint()
	s.installModule()

	return s
}

// openSafeLibraries opens the base, table, string and math libraries and
// strips the base functions that read files or compile code.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoFile executes a Lua file.
func (s *Script) DoFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	return s.run(func() error {
		return s.L.DoFile(path)
	})
}

// DoString executes a Lua chunk.
func (s *Script) DoString(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	return s.run(func() error {
		return s.L.DoString(code)
	})
}

// Len returns the number of live bindings created by the script.
func (s *Script) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// Handles returns the live bindings created by the script.
func (s *Script) Handles() []dispatch.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]dispatch.Handle, 0, len(s.handles))
	for _, h := range s.handles {
		out = append(out, h)
	}
	return out
}

// Close unregisters every binding the script created and closes the state.
// Closing twice is a no-op.
func (s *Script) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for name, h := range s.handles {
		if err := s.registry.Unregister(h); err != nil && !errors.Is(err, dispatch.ErrHandleNotFound) {
			errs = append(errs, err)
		}
		delete(s.handles, name)
	}
	s.L.Close()
	return errors.Join(errs...)
}

// run executes fn with the time budget applied and panics recovered.
// Callers hold mu.
func (s *Script) run(fn func() error) (err error) {
	if s.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.L.SetContext(ctx)
		defer func() {
			s.L.RemoveContext()
			if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				err = fmt.Errorf("%w: %v", ErrTimeout, err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// subscriber wraps a Lua function as a key subscriber. When mods is not
// empty the callback only fires if all of mods are held.
func (s *Script) subscriber(name string, fn *lua.LFunction, mods key.Modifier) dispatch.Subscriber {
	return func(ev key.Event) error {
		if !mods.IsEmpty() && ev.Modifiers&mods != mods {
			return nil
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.closed {
			return ErrClosed
		}
		err := s.run(func() error {
			return s.L.CallByParam(lua.P{
				Fn:      fn,
				NRet:    0,
				Protect: true,
			}, lua.LNumber(ev.Action), lua.LNumber(ev.Modifiers))
		})
		if err != nil {
			return &CallbackError{Key: name, Err: err}
		}
		return nil
	}
}

func (s *Script) installPrint() {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, 0, top)
		for i := 1; i <= top; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		if s.logger != nil {
			s.logger.Info("lua: %s", strings.Join(parts, "\t"))
		}
		return 0
	}))
}
