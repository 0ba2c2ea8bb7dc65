package platform

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputmux/internal/input/key"
)

// Terminal implements Source on a tcell screen.
//
// Terminals report key presses only, so every key callback carries
// key.ActionPress. Pointer coordinates are in cells. A terminal cannot warp
// the OS pointer; SetCursorPos moves the text cursor instead.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	cb     Callbacks
	closed bool
}

// NewTerminal creates a terminal source on the default tcell screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing, not yet initialized screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the screen and enables mouse motion reporting.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.HideCursor()
	return nil
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// SetCursorPos moves the text cursor to cell (x, y).
func (t *Terminal) SetCursorPos(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.ShowCursor(int(x), int(y))
}

// SetCallbacks replaces the callbacks invoked by PollEvents.
func (t *Terminal) SetCallbacks(cb Callbacks) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cb = cb
}

// PollEvents delivers every event tcell has queued.
func (t *Terminal) PollEvents(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		t.mu.Lock()
		if t.closed {
			t.mu.Unlock()
			return ErrClosed
		}
		pending := t.screen.HasPendingEvent()
		t.mu.Unlock()

		if !pending {
			return nil
		}

		ev := t.screen.PollEvent()
		if ev == nil {
			return ErrClosed
		}
		t.handleEvent(ev)
	}
}

// DrawText writes text starting at cell (x, y) and flushes the screen.
func (t *Terminal) DrawText(x, y int, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, _ := t.screen.Size()
	for i := x; i < width; i++ {
		t.screen.SetContent(i, y, ' ', nil, tcell.StyleDefault)
	}
	col := x
	for _, r := range text {
		if col >= width {
			break
		}
		t.screen.SetContent(col, y, r, nil, tcell.StyleDefault)
		col++
	}
	t.screen.Show()
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	t.screen.Fini()
	return nil
}

// handleEvent converts a tcell event and invokes the matching callback.
func (t *Terminal) handleEvent(ev tcell.Event) {
	t.mu.Lock()
	cb := t.cb
	t.mu.Unlock()

	switch e := ev.(type) {
	case *tcell.EventKey:
		if cb.Key == nil {
			return
		}
		code, mods := convertKey(e)
		if code == key.Unknown {
			return
		}
		cb.Key(int(code), 0, int(key.ActionPress), int(mods))

	case *tcell.EventMouse:
		x, y := e.Position()
		if dx, dy := wheelDelta(e.Buttons()); dx != 0 || dy != 0 {
			if cb.Scroll != nil {
				cb.Scroll(dx, dy)
			}
			return
		}
		if cb.CursorPos != nil {
			cb.CursorPos(float64(x), float64(y))
		}

	case *tcell.EventResize:
		if cb.Resize != nil {
			w, h := e.Size()
			cb.Resize(w, h)
		}
	}
}

// specialKeys maps tcell special keys to key codes.
var specialKeys = map[tcell.Key]key.Code{
	tcell.KeyEnter:      key.Enter,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBacktab:    key.Tab,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyEscape:     key.Escape,
	tcell.KeyDelete:     key.Delete,
	tcell.KeyInsert:     key.Insert,
	tcell.KeyHome:       key.Home,
	tcell.KeyEnd:        key.End,
	tcell.KeyPgUp:       key.PageUp,
	tcell.KeyPgDn:       key.PageDown,
	tcell.KeyUp:         key.Up,
	tcell.KeyDown:       key.Down,
	tcell.KeyLeft:       key.Left,
	tcell.KeyRight:      key.Right,
	tcell.KeyPrint:      key.PrintScreen,
	tcell.KeyPause:      key.Pause,
	tcell.KeyF1:         key.F1,
	tcell.KeyF2:         key.F2,
	tcell.KeyF3:         key.F3,
	tcell.KeyF4:         key.F4,
	tcell.KeyF5:         key.F5,
	tcell.KeyF6:         key.F6,
	tcell.KeyF7:         key.F7,
	tcell.KeyF8:         key.F8,
	tcell.KeyF9:         key.F9,
	tcell.KeyF10:        key.F10,
	tcell.KeyF11:        key.F11,
	tcell.KeyF12:        key.F12,
}

// convertKey converts a tcell key event to a key code and modifiers.
func convertKey(e *tcell.EventKey) (key.Code, key.Modifier) {
	mods := convertMod(e.Modifiers())

	if e.Key() == tcell.KeyRune {
		r := e.Rune()
		if r >= 'A' && r <= 'Z' {
			mods = mods.With(key.ModShift)
		}
		return key.FromRune(r), mods
	}

	if code, ok := specialKeys[e.Key()]; ok {
		if e.Key() == tcell.KeyBacktab {
			mods = mods.With(key.ModShift)
		}
		return code, mods
	}

	// Control characters arrive as their own key values.
	if e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ {
		return key.A + key.Code(e.Key()-tcell.KeyCtrlA), mods.With(key.ModCtrl)
	}

	return key.Unknown, mods
}

// convertMod converts tcell modifiers to key modifiers.
func convertMod(m tcell.ModMask) key.Modifier {
	mods := key.ModNone
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModSuper)
	}
	return mods
}

// wheelDelta converts wheel buttons to a scroll delta of one step.
// Up and right are positive, matching GLFW.
func wheelDelta(b tcell.ButtonMask) (dx, dy float64) {
	if b&tcell.WheelUp != 0 {
		dy++
	}
	if b&tcell.WheelDown != 0 {
		dy--
	}
	if b&tcell.WheelRight != 0 {
		dx++
	}
	if b&tcell.WheelLeft != 0 {
		dx--
	}
	return dx, dy
}
