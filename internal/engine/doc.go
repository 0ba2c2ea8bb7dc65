// Package engine wires windowing callbacks to the input core and runs the
// per-frame input cycle.
//
// A Context owns one key dispatch registry and one pointer state. Its
// callback methods are the trampolines a windowing backend invokes; they only
// convert raw integers and delegate:
//
//	ctx := engine.New()
//	ctx.Attach(window)              // installs KeyCallback, CursorPosCallback, ...
//	ctx.Registry().Register(key.Escape, quit)
//
// A Loop drives a Source at a fixed tick rate. Each Step polls pending events,
// hands a Frame snapshot to the frame function, then resets the per-frame
// scroll delta:
//
//	loop := engine.NewLoop(ctx, window, engine.WithTickRate(60))
//	err := loop.Run(runCtx, func(f engine.Frame) error {
//	    camera.Rotate(f.Pointer.X, f.Pointer.Y)
//	    camera.Zoom(f.Scroll.Y)
//	    return nil
//	})
//
// Everything runs on the goroutine that calls Step or Run, which is also
// where backend callbacks fire.
package engine
