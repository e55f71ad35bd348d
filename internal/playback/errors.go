package playback

import "errors"

// Engine errors. ErrBusy is an expected rejection, not an exceptional
// condition; ErrExhausted is an internal invariant violation that correct
// state-machine guards make unreachable.
var (
	// ErrExhausted indicates an advance past the end of the step queue.
	ErrExhausted = errors.New("playback: advance past end of step queue")

	// ErrBusy indicates another animated operation holds the gate.
	ErrBusy = errors.New("playback: another animated operation is in progress")

	// ErrWrongState indicates a control call invalid in the current state.
	ErrWrongState = errors.New("playback: operation not valid in current state")
)
