package script

import (
	"errors"
	"fmt"
)

// Errors for script operations.
var (
	// ErrClosed is returned when operating on a closed script.
	ErrClosed = errors.New("script is closed")

	// ErrTimeout is returned when Lua execution exceeds its time budget.
	ErrTimeout = errors.New("lua execution timeout")
)

// CallbackError reports a Lua error raised by a key callback.
type CallbackError struct {
	// Key is the chord the callback was bound to.
	Key string
	// Err is the Lua error.
	Err error
}

// Error implements the error interface.
func (e *CallbackError) Error() string {
	return fmt.Sprintf("lua callback for %s: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *CallbackError) Unwrap() error {
	return e.Err
}
