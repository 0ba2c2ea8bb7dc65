package dispatch

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/inputmux/internal/input/key"
)

// Logger is the subset of the application logger used by the registry.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Option configures a Registry.
type Option func(*Registry)

// WithIsolation makes Dispatch run every subscriber even when earlier ones
// fail, recovering panics into PanicError values.
func WithIsolation() Option {
	return func(r *Registry) {
		r.isolate.Store(true)
	}
}

// WithLogger sets the logger used for subscriber failures.
func WithLogger(l Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// Stats holds registry counters.
type Stats struct {
	Registered uint64
	Dispatched uint64
	Invoked    uint64
	Failed     uint64
	Panicked   uint64
}

// Registry maps key codes to ordered subscriber lists.
// It is thread-safe for concurrent access.
type Registry struct {
	mu sync.RWMutex

	// subs holds one list per key code. Lists are replaced, never modified
	// in place, so a dispatch snapshot stays stable.
	subs [key.MaxKeys][]entry
	byID map[uuid.UUID]key.Code

	isolate atomic.Bool
	logger  Logger

	registered atomic.Uint64
	dispatched atomic.Uint64
	invoked    atomic.Uint64
	failed     atomic.Uint64
	panicked   atomic.Uint64
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byID: make(map[uuid.UUID]key.Code),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetIsolation switches between abort-on-first-failure (false) and
// isolate-and-continue (true) delivery.
func (r *Registry) SetIsolation(on bool) {
	r.isolate.Store(on)
}

// Isolation reports whether isolate-and-continue delivery is enabled.
func (r *Registry) Isolation() bool {
	return r.isolate.Load()
}

// Register appends sub to the list for code and returns its handle.
// Registering the same subscriber twice is allowed; both registrations fire.
func (r *Registry) Register(code key.Code, sub Subscriber) (Handle, error) {
	if !code.Valid() {
		return Handle{}, &RangeError{Code: code}
	}
	if sub == nil {
		return Handle{}, ErrNilSubscriber
	}

	h := Handle{code: code, id: uuid.New()}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.subs[code]
	list := make([]entry, len(old), len(old)+1)
	copy(list, old)
	r.subs[code] = append(list, entry{handle: h, sub: sub})
	r.byID[h.id] = code

	r.registered.Add(1)
	return h, nil
}

// Unregister removes the subscription identified by h.
// The relative order of the remaining subscribers is preserved.
func (r *Registry) Unregister(h Handle) error {
	if h.IsZero() {
		return ErrHandleNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	code, ok := r.byID[h.id]
	if !ok {
		return ErrHandleNotFound
	}

	old := r.subs[code]
	list := make([]entry, 0, len(old))
	for _, e := range old {
		if e.handle.id != h.id {
			list = append(list, e)
		}
	}
	if len(list) == 0 {
		list = nil
	}
	r.subs[code] = list
	delete(r.byID, h.id)
	return nil
}

// Clear removes every subscription for code and returns how many were removed.
func (r *Registry) Clear(code key.Code) int {
	if !code.Valid() {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.subs[code]
	for _, e := range old {
		delete(r.byID, e.handle.id)
	}
	r.subs[code] = nil
	return len(old)
}

// Count returns the number of subscribers registered for code.
func (r *Registry) Count(code key.Code) int {
	if !code.Valid() {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[code])
}

// Len returns the total number of live subscriptions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Has returns true if h refers to a live subscription.
func (r *Registry) Has(h Handle) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[h.id]
	return ok
}

// Stats returns a snapshot of the registry counters.
func (r *Registry) Stats() Stats {
	return Stats{
		Registered: r.registered.Load(),
		Dispatched: r.dispatched.Load(),
		Invoked:    r.invoked.Load(),
		Failed:     r.failed.Load(),
		Panicked:   r.panicked.Load(),
	}
}

// DispatchKey dispatches a transition of code stamped with the current time.
func (r *Registry) DispatchKey(code key.Code, action key.Action) error {
	return r.Dispatch(key.Event{Code: code, Action: action, Timestamp: time.Now()})
}

// Dispatch invokes, in registration order, every subscriber registered for
// ev.Code. Keys without subscribers and codes outside the valid range are a
// no-op.
func (r *Registry) Dispatch(ev key.Event) error {
	if !ev.Code.Valid() {
		return nil
	}

	r.mu.RLock()
	list := r.subs[ev.Code]
	r.mu.RUnlock()

	if len(list) == 0 {
		return nil
	}
	r.dispatched.Add(1)

	if r.isolate.Load() {
		return r.dispatchIsolated(ev, list)
	}

	for _, e := range list {
		r.invoked.Add(1)
		if err := e.sub(ev); err != nil {
			r.failed.Add(1)
			r.logFailure(e.handle, ev, err)
			return &SubscriberError{Handle: e.handle, Code: ev.Code, Err: err}
		}
	}
	return nil
}

// dispatchIsolated runs every subscriber and joins their failures.
func (r *Registry) dispatchIsolated(ev key.Event, list []entry) error {
	var errs []error
	for _, e := range list {
		r.invoked.Add(1)
		if err := r.invokeRecover(e, ev); err != nil {
			r.failed.Add(1)
			r.logFailure(e.handle, ev, err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// invokeRecover calls a subscriber, converting a panic into a PanicError.
func (r *Registry) invokeRecover(e entry, ev key.Event) (err error) {
	defer func() {
		if v := recover(); v != nil {
			r.panicked.Add(1)
			err = &PanicError{
				Handle: e.handle,
				Code:   ev.Code,
				Value:  v,
				Stack:  string(debug.Stack()),
			}
		}
	}()

	if serr := e.sub(ev); serr != nil {
		return &SubscriberError{Handle: e.handle, Code: ev.Code, Err: serr}
	}
	return nil
}

func (r *Registry) logFailure(h Handle, ev key.Event, err error) {
	if r.logger == nil {
		return
	}
	r.logger.Warn("dispatch %s: %v", ev, err)
	r.logger.Debug("failed subscription %s", h)
}

// String returns a short description for debugging.
func (r *Registry) String() string {
	return fmt.Sprintf("Registry{subscriptions: %d, isolate: %v}", r.Len(), r.Isolation())
}
