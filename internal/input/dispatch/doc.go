// Package dispatch provides the key dispatch registry.
//
// A Registry maps key codes to ordered lists of subscribers. The windowing
// layer's key callback hands every key transition to Dispatch, which invokes
// the subscribers registered for that key in registration order:
//
//	reg := dispatch.NewRegistry()
//	h, err := reg.Register(key.W, func(ev key.Event) error {
//	    if ev.IsPress() {
//	        player.MoveForward()
//	    }
//	    return nil
//	})
//	...
//	reg.Unregister(h)
//
// # Delivery Semantics
//
// Subscribers fire for every transition kind, including release and repeat.
// The action is part of the event so subscribers filter for themselves.
// Duplicate registrations are allowed and each fires once per dispatch.
//
// By default the first subscriber that returns an error stops delivery for
// that event and the error is returned to the caller. Panics are not
// recovered. WithIsolation changes this: every subscriber runs, panics are
// recovered and all failures are returned together.
//
// # Thread Safety
//
// Registry is safe for concurrent use. Dispatch works on a snapshot of the
// subscriber list, so subscribers may register or unregister during delivery;
// such changes take effect from the next dispatch.
package dispatch
