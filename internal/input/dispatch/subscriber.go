package dispatch

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/dshills/inputmux/internal/input/key"
)

// Subscriber receives key events for the key it was registered against.
type Subscriber func(ev key.Event) error

// Func adapts a zero-argument callback into a Subscriber.
// The callback runs on every transition and never fails.
func Func(fn func()) Subscriber {
	if fn == nil {
		return nil
	}
	return func(key.Event) error {
		fn()
		return nil
	}
}

// OnPress adapts a callback that should only run when the key goes down.
func OnPress(fn func(ev key.Event) error) Subscriber {
	if fn == nil {
		return nil
	}
	return func(ev key.Event) error {
		if !ev.IsPress() {
			return nil
		}
		return fn(ev)
	}
}

// Handle identifies a single registration.
// The zero Handle never refers to a live subscription.
type Handle struct {
	code key.Code
	id   uuid.UUID
}

// Code returns the key the subscription was registered against.
func (h Handle) Code() key.Code {
	return h.code
}

// IsZero returns true for the zero Handle.
func (h Handle) IsZero() bool {
	return h.id == uuid.Nil
}

// String returns "<code>/<id>".
func (h Handle) String() string {
	if h.IsZero() {
		return "none"
	}
	return strconv.Itoa(int(h.code)) + "/" + h.id.String()
}

// ParseHandle parses the output of Handle.String.
func ParseHandle(s string) (Handle, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != '/' {
			continue
		}
		code, err := strconv.Atoi(s[:i])
		if err != nil {
			return Handle{}, ErrHandleNotFound
		}
		id, err := uuid.Parse(s[i+1:])
		if err != nil {
			return Handle{}, ErrHandleNotFound
		}
		return Handle{code: key.Code(code), id: id}, nil
	}
	return Handle{}, ErrHandleNotFound
}

// entry pairs a subscriber with its handle.
type entry struct {
	handle Handle
	sub    Subscriber
}
