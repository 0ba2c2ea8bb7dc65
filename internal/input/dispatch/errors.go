package dispatch

import (
	"errors"
	"fmt"

	"github.com/dshills/inputmux/internal/input/key"
)

// Sentinel errors for the registry.
var (
	// ErrOutOfRange is returned when a key code is outside [0, key.MaxKeys).
	ErrOutOfRange = errors.New("key code out of range")

	// ErrNilSubscriber is returned when a nil subscriber is registered.
	ErrNilSubscriber = errors.New("subscriber cannot be nil")

	// ErrHandleNotFound is returned when unregistering an unknown handle.
	ErrHandleNotFound = errors.New("subscription handle not found")

	// ErrSubscriberPanic is matched by errors from recovered subscriber panics.
	ErrSubscriberPanic = errors.New("subscriber panicked")
)

// RangeError reports a key code outside the valid range.
type RangeError struct {
	Code key.Code
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("key code %d out of range [0, %d)", int(e.Code), key.MaxKeys)
}

// Is allows errors.Is to match RangeError with ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// SubscriberError wraps an error returned by a subscriber.
type SubscriberError struct {
	// Handle identifies the subscription whose callback failed.
	Handle Handle

	// Code is the key being dispatched.
	Code key.Code

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *SubscriberError) Error() string {
	return "subscriber " + e.Handle.String() + " for key " + e.Code.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *SubscriberError) Unwrap() error {
	return e.Err
}

// PanicError wraps a recovered subscriber panic.
type PanicError struct {
	// Handle identifies the subscription whose callback panicked.
	Handle Handle

	// Code is the key being dispatched.
	Code key.Code

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("subscriber %s for key %s panicked: %v", e.Handle, e.Code, e.Value)
}

// Is allows errors.Is to match PanicError with ErrSubscriberPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrSubscriberPanic
}
