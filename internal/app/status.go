package app

import (
	"github.com/tidwall/sjson"
)

// Status returns a JSON snapshot of the input state:
//
//	{
//	  "running": true,
//	  "frame": {"number": 42, "delta_ms": 16.6},
//	  "pointer": {"x": 10, "y": -4, "recenter": false},
//	  "scroll": {"x": 0, "y": 1},
//	  "dispatch": {"subscriptions": 3, "isolate": false, "script_bindings": 1},
//	  "metrics": {...}
//	}
func (app *Application) Status() string {
	ptr := app.engine.Pointer().Snapshot()
	reg := app.engine.Registry()
	stats := reg.Stats()
	m := app.engine.Metrics().Snapshot()

	scriptBindings := 0
	if app.script != nil {
		scriptBindings = app.script.Len()
	}

	json := "{}"
	set := func(path string, value any) {
		json, _ = sjson.Set(json, path, value)
	}

	set("running", app.IsRunning())
	if f, ok := app.LastFrame(); ok {
		set("frame.number", f.Number)
		set("frame.delta_ms", float64(f.Delta.Microseconds())/1000)
	} else {
		set("frame.number", 0)
	}

	set("pointer.x", ptr.Pointer.X)
	set("pointer.y", ptr.Pointer.Y)
	set("pointer.recenter", ptr.Recenter)
	set("scroll.x", ptr.Scroll.X)
	set("scroll.y", ptr.Scroll.Y)

	set("dispatch.subscriptions", reg.Len())
	set("dispatch.isolate", reg.Isolation())
	set("dispatch.script_bindings", scriptBindings)
	set("dispatch.dispatched", stats.Dispatched)
	set("dispatch.failed", stats.Failed)
	set("dispatch.panicked", stats.Panicked)

	set("metrics.uptime_ms", m.Uptime.Milliseconds())
	set("metrics.frames", m.FrameCount)
	set("metrics.fps", m.FPS())
	set("metrics.avg_frame_us", m.AvgFrameTime().Microseconds())
	set("metrics.key_events", m.KeyEvents)
	set("metrics.pointer_events", m.PointerEvents)
	set("metrics.scroll_events", m.ScrollEvents)
	set("metrics.dispatch_errors", m.DispatchErrors)

	return json
}
