package platform

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputmux/internal/input/key"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantCode key.Code
		wantMods key.Modifier
	}{
		{"lower rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), key.W, key.ModNone},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), key.W, key.ModShift},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), key.Num3, key.ModNone},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), key.Space, key.ModNone},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), key.X, key.ModAlt},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.Escape, key.ModNone},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.Enter, key.ModNone},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), key.Up, key.ModNone},
		{"function", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.F5, key.ModNone},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), key.Tab, key.ModShift},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), key.S, key.ModCtrl},
		{"unmapped rune", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), key.Unknown, key.ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, mods := convertKey(tt.ev)
			if code != tt.wantCode {
				t.Errorf("convertKey() code = %v, want %v", code, tt.wantCode)
			}
			if code != key.Unknown && mods != tt.wantMods {
				t.Errorf("convertKey() mods = %v, want %v", mods, tt.wantMods)
			}
		})
	}
}

func TestWheelDelta(t *testing.T) {
	tests := []struct {
		name   string
		button tcell.ButtonMask
		dx, dy float64
	}{
		{"none", tcell.ButtonNone, 0, 0},
		{"up", tcell.WheelUp, 0, 1},
		{"down", tcell.WheelDown, 0, -1},
		{"left", tcell.WheelLeft, -1, 0},
		{"right", tcell.WheelRight, 1, 0},
		{"button", tcell.Button1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := wheelDelta(tt.button)
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("wheelDelta() = (%v, %v), want (%v, %v)", dx, dy, tt.dx, tt.dy)
			}
		})
	}
}

func TestTerminalHandleEvent(t *testing.T) {
	term := NewTerminalWithScreen(tcell.NewSimulationScreen(""))

	type keyCall struct{ code, scancode, action, mods int }
	var keys []keyCall
	var cursor [][2]float64
	var scroll [][2]float64
	var resized [][2]int

	term.SetCallbacks(Callbacks{
		Key: func(code, scancode, action, mods int) {
			keys = append(keys, keyCall{code, scancode, action, mods})
		},
		CursorPos: func(x, y float64) { cursor = append(cursor, [2]float64{x, y}) },
		Scroll:    func(dx, dy float64) { scroll = append(scroll, [2]float64{dx, dy}) },
		Resize:    func(w, h int) { resized = append(resized, [2]int{w, h}) },
	})

	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'ß', tcell.ModNone))
	term.handleEvent(tcell.NewEventMouse(12, 7, tcell.ButtonNone, tcell.ModNone))
	term.handleEvent(tcell.NewEventMouse(12, 7, tcell.WheelDown, tcell.ModNone))
	term.handleEvent(tcell.NewEventResize(100, 40))

	if len(keys) != 1 {
		t.Fatalf("key callbacks = %d, want 1 (unmapped rune dropped)", len(keys))
	}
	if keys[0] != (keyCall{int(key.Q), 0, int(key.ActionPress), 0}) {
		t.Errorf("key callback = %+v", keys[0])
	}
	if len(cursor) != 1 || cursor[0] != [2]float64{12, 7} {
		t.Errorf("cursor callbacks = %v, want [[12 7]]", cursor)
	}
	if len(scroll) != 1 || scroll[0] != [2]float64{0, -1} {
		t.Errorf("scroll callbacks = %v, want [[0 -1]]", scroll)
	}
	if len(resized) != 1 || resized[0] != [2]int{100, 40} {
		t.Errorf("resize callbacks = %v, want [[100 40]]", resized)
	}
}
