package platform

import (
	"context"
	"errors"
	"testing"
)

func TestNullWindowDeliversInOrder(t *testing.T) {
	w := NewNullWindow(800, 600)

	var got []string
	w.SetCallbacks(Callbacks{
		Key:       func(code, scancode, action, mods int) { got = append(got, "key") },
		CursorPos: func(x, y float64) { got = append(got, "cursor") },
		Scroll:    func(dx, dy float64) { got = append(got, "scroll") },
		Resize:    func(width, height int) { got = append(got, "resize") },
	})

	w.InjectKey(87, 17, 1, 0)
	w.InjectCursorPos(10, 20)
	w.InjectScroll(0, 1)
	w.Resize(1024, 768)

	if w.Pending() != 4 {
		t.Fatalf("Pending() = %d, want 4", w.Pending())
	}
	if err := w.PollEvents(context.Background()); err != nil {
		t.Fatalf("PollEvents() error = %v", err)
	}

	want := []string{"key", "cursor", "scroll", "resize"}
	if len(got) != len(want) {
		t.Fatalf("delivered %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivered[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if w.Pending() != 0 {
		t.Errorf("Pending() after poll = %d, want 0", w.Pending())
	}
	if width, height := w.Size(); width != 1024 || height != 768 {
		t.Errorf("Size() = %dx%d, want 1024x768", width, height)
	}
}

func TestNullWindowNilCallbacks(t *testing.T) {
	w := NewNullWindow(10, 10)
	w.InjectKey(65, 0, 1, 0)
	w.InjectScroll(1, 1)

	if err := w.PollEvents(context.Background()); err != nil {
		t.Errorf("PollEvents() error = %v", err)
	}
}

func TestNullWindowCursorWarps(t *testing.T) {
	w := NewNullWindow(10, 10)
	w.SetCursorPos(5, 5)
	w.SetCursorPos(1, 2)

	x, y, warps := w.CursorPosition()
	if x != 1 || y != 2 || warps != 2 {
		t.Errorf("CursorPosition() = (%v, %v, %d), want (1, 2, 2)", x, y, warps)
	}
}

func TestNullWindowClose(t *testing.T) {
	w := NewNullWindow(10, 10)
	w.InjectKey(65, 0, 1, 0)
	_ = w.Close()

	if err := w.PollEvents(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("PollEvents() after Close error = %v, want ErrClosed", err)
	}
	w.InjectKey(65, 0, 1, 0)
	if w.Pending() != 0 {
		t.Error("events queued after Close")
	}
}

func TestNullWindowCancelledContext(t *testing.T) {
	w := NewNullWindow(10, 10)
	calls := 0
	w.SetCallbacks(Callbacks{Scroll: func(dx, dy float64) { calls++ }})
	w.InjectScroll(1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.PollEvents(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("PollEvents() error = %v, want context.Canceled", err)
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}
