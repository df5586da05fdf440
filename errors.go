package termctl

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable reports that the selected backend's required
	// facility (tty stream, console handle) cannot be obtained.
	ErrBackendUnavailable = errors.New("termctl: backend unavailable")

	// ErrAlreadyAlternate reports an attempt to enter the alternate screen
	// on an output that is already showing it.
	ErrAlreadyAlternate = errors.New("termctl: already in alternate screen")
)

// ApplyError reports a failed mode transition. The terminal state is
// unchanged from before the call.
type ApplyError struct {
	Op  string
	Err error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("termctl: apply %s: %v", e.Op, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }

// RevertError reports a failed restoration. The terminal may still be in
// the mode the failed revert was meant to undo.
type RevertError struct {
	Op  string
	Err error
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("termctl: revert %s: %v", e.Op, e.Err)
}

func (e *RevertError) Unwrap() error { return e.Err }
