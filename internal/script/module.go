package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inputmux/internal/input/key"
)

// installModule registers the global input table.
func (s *Script) installModule() {
	L := s.L
	mod := L.NewTable()

	L.SetField(mod, "bind", L.NewFunction(s.bind))
	L.SetField(mod, "unbind", L.NewFunction(s.unbind))
	L.SetField(mod, "pointer", L.NewFunction(s.pointerOffset))
	L.SetField(mod, "scroll", L.NewFunction(s.scroll))
	L.SetField(mod, "recenter", L.NewFunction(s.recenter))

	L.SetField(mod, "RELEASE", lua.LNumber(key.ActionRelease))
	L.SetField(mod, "PRESS", lua.LNumber(key.ActionPress))
	L.SetField(mod, "REPEAT", lua.LNumber(key.ActionRepeat))

	L.SetField(mod, "SHIFT", lua.LNumber(key.ModShift))
	L.SetField(mod, "CTRL", lua.LNumber(key.ModCtrl))
	L.SetField(mod, "ALT", lua.LNumber(key.ModAlt))
	L.SetField(mod, "SUPER", lua.LNumber(key.ModSuper))

	L.SetGlobal("input", mod)
}

// bind(chord, fn) -> handle
// Subscribes fn to the key named by chord. fn receives (action, mods).
func (s *Script) bind(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)

	code, mods, err := key.ParseChord(name)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}

	h, err := s.registry.Register(code, s.subscriber(name, fn, mods))
	if err != nil {
		L.RaiseError("bind: %v", err)
		return 0
	}

	id := h.String()
	s.handles[id] = h
	L.Push(lua.LString(id))
	return 1
}

// unbind(handle) -> bool
// Removes a binding created by this script. Returns false if the handle is
// unknown or already removed.
func (s *Script) unbind(L *lua.LState) int {
	id := L.CheckString(1)

	h, ok := s.handles[id]
	if !ok {
		L.Push(lua.LFalse)
		return 1
	}
	delete(s.handles, id)

	if err := s.registry.Unregister(h); err != nil {
		L.Push(lua.LFalse)
		return 1
	}
	L.Push(lua.LTrue)
	return 1
}

// pointer() -> x, y
func (s *Script) pointerOffset(L *lua.LState) int {
	off := s.pointer.Offset()
	L.Push(lua.LNumber(off.X))
	L.Push(lua.LNumber(off.Y))
	return 2
}

// scroll() -> dx, dy
func (s *Script) scroll(L *lua.LState) int {
	off := s.pointer.Scroll()
	L.Push(lua.LNumber(off.X))
	L.Push(lua.LNumber(off.Y))
	return 2
}

// recenter([on]) -> bool
// Sets recenter mode when called with an argument and returns the mode.
func (s *Script) recenter(L *lua.LState) int {
	if L.GetTop() >= 1 {
		s.pointer.SetRecenter(L.CheckBool(1))
	}
	L.Push(lua.LBool(s.pointer.Recenter()))
	return 1
}
