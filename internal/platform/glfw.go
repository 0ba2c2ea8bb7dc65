//go:build glfw

package platform

import (
	"context"
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW event processing must happen on the main thread.
	runtime.LockOSThread()
}

// GLFW implements Source on a native GLFW window.
// All methods must be called from the main goroutine.
type GLFW struct {
	mu     sync.Mutex
	win    *glfw.Window
	owned  bool
	closed bool
}

// NewGLFW wraps a window created by the caller. Close only marks the window
// as closing; destroying it stays the caller's job.
func NewGLFW(win *glfw.Window) *GLFW {
	return &GLFW{win: win}
}

// OpenGLFW initializes GLFW and creates a window of the given size.
// With capture set the pointer is hidden and locked to the window, which
// suits recenter mode.
func OpenGLFW(title string, width, height int, capture bool) (*GLFW, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	if capture {
		win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}
	return &GLFW{win: win, owned: true}, nil
}

// Size returns the client-area size in screen coordinates.
func (g *GLFW) Size() (int, int) {
	return g.win.GetSize()
}

// SetCursorPos warps the native pointer.
func (g *GLFW) SetCursorPos(x, y float64) {
	g.win.SetCursorPos(x, y)
}

// SetCallbacks installs trampolines for each non-nil callback. The window
// handle GLFW passes is dropped; callbacks close over their own context.
func (g *GLFW) SetCallbacks(cb Callbacks) {
	if cb.Key != nil {
		g.win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
			cb.Key(int(k), scancode, int(action), int(mods))
		})
	} else {
		g.win.SetKeyCallback(nil)
	}

	if cb.CursorPos != nil {
		g.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
			cb.CursorPos(x, y)
		})
	} else {
		g.win.SetCursorPosCallback(nil)
	}

	if cb.Scroll != nil {
		g.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
			cb.Scroll(dx, dy)
		})
	} else {
		g.win.SetScrollCallback(nil)
	}

	if cb.Resize != nil {
		g.win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
			cb.Resize(width, height)
		})
	} else {
		g.win.SetSizeCallback(nil)
	}
}

// PollEvents processes pending native events. Callbacks run inside this call.
func (g *GLFW) PollEvents(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	closed := g.closed
	g.mu.Unlock()
	if closed || g.win.ShouldClose() {
		return ErrClosed
	}

	glfw.PollEvents()
	return nil
}

// Close requests the window to close and, for windows created by OpenGLFW,
// destroys it and terminates GLFW.
func (g *GLFW) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}
	g.closed = true
	g.win.SetShouldClose(true)
	if g.owned {
		g.win.Destroy()
		glfw.Terminate()
	}
	return nil
}
