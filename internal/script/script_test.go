package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inputmux/internal/input/dispatch"
	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/pointer"
)

type captureLogger struct {
	mu    sync.Mutex
	infos []string
}

func (l *captureLogger) Info(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(msg, args...))
}

func (l *captureLogger) Warn(msg string, args ...any) {}

func newTestScript(t *testing.T, opts ...Option) (*Script, *dispatch.Registry, *pointer.State) {
	t.Helper()
	reg := dispatch.NewRegistry()
	ptr := pointer.New()
	s := New(reg, ptr, opts...)
	t.Cleanup(func() { _ = s.Close() })
	return s, reg, ptr
}

func TestBindFiresOnDispatch(t *testing.T) {
	s, reg, _ := newTestScript(t)

	err := s.DoString(`
		events = {}
		handle = input.bind("Space", function(action, mods)
			table.insert(events, action .. ":" .. mods)
		end)
	`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	if n := reg.Count(key.Space); n != 1 {
		t.Fatalf("Count(Space) = %d, want 1", n)
	}
	if err := reg.Dispatch(key.NewEvent(key.Space, key.ActionPress, key.ModShift)); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if err := reg.DispatchKey(key.Space, key.ActionRelease); err != nil {
		t.Fatalf("DispatchKey() error = %v", err)
	}

	if err := s.DoString(`result = table.concat(events, ",")`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if got := s.L.GetGlobal("result").String(); got != "1:1,0:0" {
		t.Errorf("events = %q, want %q", got, "1:1,0:0")
	}
}

func TestBindChordRequiresModifiers(t *testing.T) {
	s, reg, _ := newTestScript(t)

	if err := s.DoString(`
		count = 0
		input.bind("Ctrl+S", function() count = count + 1 end)
	`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	_ = reg.Dispatch(key.NewEvent(key.S, key.ActionPress, key.ModNone))
	_ = reg.Dispatch(key.NewEvent(key.S, key.ActionPress, key.ModCtrl|key.ModShift))
	_ = reg.Dispatch(key.NewEvent(key.S, key.ActionPress, key.ModShift))

	if got := lua.LVAsNumber(s.L.GetGlobal("count")); got != 1 {
		t.Errorf("count = %v, want 1", got)
	}
}

func TestBindErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"unknown key", `input.bind("NoSuchKey", function() end)`, "unknown key"},
		{"missing function", `input.bind("A")`, "function expected"},
		{"non-string key", `input.bind({}, function() end)`, "string expected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, reg, _ := newTestScript(t)

			err := s.DoString(tt.code)
			if err == nil {
				t.Fatal("DoString() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("DoString() error = %v, want containing %q", err, tt.want)
			}
			if reg.Len() != 0 {
				t.Errorf("registry has %d subscriptions, want 0", reg.Len())
			}
		})
	}
}

func TestUnbind(t *testing.T) {
	s, reg, _ := newTestScript(t)

	if err := s.DoString(`
		h = input.bind("A", function() end)
		first = input.unbind(h)
		second = input.unbind(h)
		bogus = input.unbind("nope")
	`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	for name, want := range map[string]lua.LValue{"first": lua.LTrue, "second": lua.LFalse, "bogus": lua.LFalse} {
		if got := s.L.GetGlobal(name); got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	if reg.Count(key.A) != 0 {
		t.Errorf("Count(A) = %d, want 0", reg.Count(key.A))
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestUnbindForeignHandle(t *testing.T) {
	s, reg, _ := newTestScript(t)

	h, err := reg.Register(key.B, dispatch.Func(func() {}))
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	s.L.SetGlobal("foreign", lua.LString(h.String()))
	if err := s.DoString(`ok = input.unbind(foreign)`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if s.L.GetGlobal("ok") != lua.LFalse {
		t.Error("unbind removed a handle the script did not create")
	}
	if !reg.Has(h) {
		t.Error("foreign handle was unregistered")
	}
}

func TestCallbackErrorPropagates(t *testing.T) {
	s, reg, _ := newTestScript(t)

	if err := s.DoString(`input.bind("F2", function() error("kaboom") end)`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	err := reg.DispatchKey(key.F2, key.ActionPress)
	if err == nil {
		t.Fatal("DispatchKey() error = nil, want callback error")
	}
	var cbErr *CallbackError
	if !errors.As(err, &cbErr) {
		t.Fatalf("DispatchKey() error = %T, want *CallbackError in chain", err)
	}
	if cbErr.Key != "F2" {
		t.Errorf("CallbackError.Key = %q, want F2", cbErr.Key)
	}
	if !strings.Contains(err.Error(), "kaboom") {
		t.Errorf("error %q does not mention the Lua message", err)
	}
	var subErr *dispatch.SubscriberError
	if !errors.As(err, &subErr) {
		t.Errorf("DispatchKey() error = %T, want *dispatch.SubscriberError", err)
	}
}

func TestPointerAndScroll(t *testing.T) {
	s, _, ptr := newTestScript(t)

	ptr.OnPointerMove(612, 334, 1024, 768)
	ptr.OnScroll(0, -2)

	if err := s.DoString(`
		px, py = input.pointer()
		sx, sy = input.scroll()
	`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	want := map[string]float64{"px": 100, "py": -50, "sx": 0, "sy": -2}
	for name, w := range want {
		if got := float64(lua.LVAsNumber(s.L.GetGlobal(name))); got != w {
			t.Errorf("%s = %v, want %v", name, got, w)
		}
	}
}

func TestRecenter(t *testing.T) {
	s, _, ptr := newTestScript(t)

	if err := s.DoString(`
		before = input.recenter()
		after = input.recenter(true)
	`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	if s.L.GetGlobal("before") != lua.LFalse {
		t.Errorf("before = %v, want false", s.L.GetGlobal("before"))
	}
	if s.L.GetGlobal("after") != lua.LTrue {
		t.Errorf("after = %v, want true", s.L.GetGlobal("after"))
	}
	if !ptr.Recenter() {
		t.Error("pointer recenter mode not enabled")
	}
}

func TestConstants(t *testing.T) {
	s, _, _ := newTestScript(t)

	if err := s.DoString(`ok = input.PRESS == 1 and input.RELEASE == 0 and input.REPEAT == 2 and input.CTRL == 2`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if s.L.GetGlobal("ok") != lua.LTrue {
		t.Error("input constants do not match key actions and modifiers")
	}
}

func TestSandbox(t *testing.T) {
	s, _, _ := newTestScript(t)

	for _, name := range []string{"io", "os", "debug", "dofile", "loadfile", "load", "loadstring", "require"} {
		if v := s.L.GetGlobal(name); v != lua.LNil {
			t.Errorf("global %s = %v, want nil", name, v)
		}
	}
	if err := s.DoString(`assert(string.upper("a") == "A" and math.floor(1.5) == 1)`); err != nil {
		t.Errorf("safe libraries unavailable: %v", err)
	}
}

func TestPrintUsesLogger(t *testing.T) {
	log := &captureLogger{}
	s, _, _ := newTestScript(t, WithLogger(log))

	if err := s.DoString(`print("hello", 42)`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if len(log.infos) != 1 || log.infos[0] != "lua: hello\t42" {
		t.Errorf("logged %q", log.infos)
	}
}

func TestTimeout(t *testing.T) {
	s, _, _ := newTestScript(t, WithTimeout(50*time.Millisecond))

	err := s.DoString(`while true do end`)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("DoString() error = %v, want ErrTimeout", err)
	}

	if err := s.DoString(`x = 1`); err != nil {
		t.Errorf("DoString() after timeout error = %v", err)
	}
}

func TestDoFile(t *testing.T) {
	s, reg, _ := newTestScript(t)

	path := filepath.Join(t.TempDir(), "keys.lua")
	if err := os.WriteFile(path, []byte(`input.bind("Escape", function() end)`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := s.DoFile(path); err != nil {
		t.Fatalf("DoFile() error = %v", err)
	}
	if reg.Count(key.Escape) != 1 {
		t.Errorf("Count(Escape) = %d, want 1", reg.Count(key.Escape))
	}
	if err := s.DoFile(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("DoFile(missing) error = nil, want error")
	}
}

func TestCloseRemovesBindings(t *testing.T) {
	reg := dispatch.NewRegistry()
	keep, err := reg.Register(key.A, dispatch.Func(func() {}))
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	s := New(reg, pointer.New())
	if err := s.DoString(`
		input.bind("A", function() end)
		input.bind("B", function() end)
		input.bind("Ctrl+B", function() end)
	`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if s.Len() != 3 || len(s.Handles()) != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if reg.Len() != 1 || !reg.Has(keep) {
		t.Errorf("registry Len() = %d, want only the foreign subscription left", reg.Len())
	}
	if err := s.DoString(`x = 1`); !errors.Is(err, ErrClosed) {
		t.Errorf("DoString() after Close error = %v, want ErrClosed", err)
	}
	if err := s.DoFile("x.lua"); !errors.Is(err, ErrClosed) {
		t.Errorf("DoFile() after Close error = %v, want ErrClosed", err)
	}
}
