package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/dshills/inputmux/internal/input/pointer"
	"github.com/dshills/inputmux/internal/platform"
)

// Frame is the input snapshot handed to the frame function.
type Frame struct {
	// Number counts frames from 1.
	Number uint64

	// Time is when the frame started.
	Time time.Time

	// Delta is the time since the previous frame started.
	Delta time.Duration

	// Pointer is the last pointer offset from the window center.
	Pointer pointer.Offset

	// Scroll is the latest scroll delta received during this frame.
	Scroll pointer.Offset

	// Recenter reports whether recenter mode was on.
	Recenter bool
}

// FrameFunc runs once per frame after events were polled.
type FrameFunc func(f Frame) error

// Loop runs the poll, frame, reset cycle.
type Loop struct {
	ctx      *Context
	src      platform.Source
	interval time.Duration

	stopOnError atomic.Bool
	running     atomic.Bool

	frame uint64
	last  time.Time
}

// NewLoop attaches src to c and returns a loop driving it.
func NewLoop(c *Context, src platform.Source, opts ...LoopOption) *Loop {
	l := &Loop{
		ctx:      c,
		src:      src,
		interval: time.Second / DefaultTickRate,
	}
	for _, opt := range opts {
		opt(l)
	}
	c.Attach(src)
	return l
}

// Interval returns the time between frames.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// SetStopOnError changes whether dispatch failures end the loop.
func (l *Loop) SetStopOnError(on bool) {
	l.stopOnError.Store(on)
}

// Step runs one frame: poll events, call fn with the frame snapshot, then
// reset the scroll delta. The reset happens even if fn fails.
func (l *Loop) Step(ctx context.Context, fn FrameFunc) error {
	start := time.Now()
	defer func() {
		l.ctx.metrics.RecordFrame(time.Since(start))
	}()

	if err := l.src.PollEvents(ctx); err != nil {
		return err
	}

	dispatchErr := l.ctx.TakeError()
	if dispatchErr != nil && l.stopOnError.Load() {
		l.ctx.pointer.ResetOffsets()
		return dispatchErr
	}

	l.frame++
	var delta time.Duration
	if !l.last.IsZero() {
		delta = start.Sub(l.last)
	}
	l.last = start

	snap := l.ctx.pointer.Snapshot()
	frame := Frame{
		Number:   l.frame,
		Time:     start,
		Delta:    delta,
		Pointer:  snap.Pointer,
		Scroll:   snap.Scroll,
		Recenter: snap.Recenter,
	}

	var err error
	if fn != nil {
		err = fn(frame)
	}
	l.ctx.pointer.ResetOffsets()
	return err
}

// Run steps the loop at the configured rate until ctx is done, fn returns
// ErrStop, or a step fails. Cancellation and ErrStop return nil.
func (l *Loop) Run(ctx context.Context, fn FrameFunc) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			return nil
		}

		if err := l.Step(ctx, fn); err != nil {
			if errors.Is(err, ErrStop) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}
