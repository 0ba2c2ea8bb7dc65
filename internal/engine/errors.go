package engine

import "errors"

// Errors returned by the frame loop.
var (
	// ErrStop is returned by a FrameFunc to end Run without error.
	ErrStop = errors.New("stop requested")

	// ErrLoopRunning indicates Run was called on a loop that is already running.
	ErrLoopRunning = errors.New("loop already running")
)
