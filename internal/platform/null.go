package platform

import (
	"context"
	"sync"
)

// NullWindow is an in-memory Source for testing and headless runs.
// Injected events queue up until the next PollEvents call.
type NullWindow struct {
	mu sync.Mutex

	width, height int
	cursorX       float64
	cursorY       float64
	warps         int

	cb     Callbacks
	queue  []func(Callbacks)
	closed bool
}

// NewNullWindow creates a null window with the given client size.
func NewNullWindow(width, height int) *NullWindow {
	return &NullWindow{width: width, height: height}
}

// Size returns the client-area size.
func (w *NullWindow) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// SetCursorPos records a pointer warp.
func (w *NullWindow) SetCursorPos(x, y float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cursorX, w.cursorY = x, y
	w.warps++
}

// SetCallbacks replaces the callbacks invoked by PollEvents.
func (w *NullWindow) SetCallbacks(cb Callbacks) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cb = cb
}

// PollEvents delivers all queued events in injection order.
func (w *NullWindow) PollEvents(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	queue := w.queue
	w.queue = nil
	cb := w.cb
	w.mu.Unlock()

	for _, deliver := range queue {
		if err := ctx.Err(); err != nil {
			return err
		}
		deliver(cb)
	}
	return nil
}

// Close marks the window closed.
func (w *NullWindow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.queue = nil
	return nil
}

// InjectKey queues a key transition.
func (w *NullWindow) InjectKey(code, scancode, action, mods int) {
	w.push(func(cb Callbacks) {
		if cb.Key != nil {
			cb.Key(code, scancode, action, mods)
		}
	})
}

// InjectCursorPos queues a pointer move to absolute position (x, y).
func (w *NullWindow) InjectCursorPos(x, y float64) {
	w.push(func(cb Callbacks) {
		if cb.CursorPos != nil {
			cb.CursorPos(x, y)
		}
	})
}

// InjectScroll queues a scroll event.
func (w *NullWindow) InjectScroll(dx, dy float64) {
	w.push(func(cb Callbacks) {
		if cb.Scroll != nil {
			cb.Scroll(dx, dy)
		}
	})
}

// Resize changes the client size and queues a resize event.
func (w *NullWindow) Resize(width, height int) {
	w.mu.Lock()
	w.width, w.height = width, height
	w.mu.Unlock()

	w.push(func(cb Callbacks) {
		if cb.Resize != nil {
			cb.Resize(width, height)
		}
	})
}

// Pending returns the number of queued events.
func (w *NullWindow) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.queue)
}

// CursorPosition returns the last warp target and the number of warps.
func (w *NullWindow) CursorPosition() (x, y float64, warps int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursorX, w.cursorY, w.warps
}

func (w *NullWindow) push(fn func(Callbacks)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.queue = append(w.queue, fn)
}
