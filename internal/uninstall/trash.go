// Package uninstall implements the safe uninstall subsystem: a
// confirmation-gated, recoverable-by-preference removal of the
// application's own installation directory.
package uninstall

import (
	"errors"

	"github.com/violentpy/showcase/internal/safety"
)

// ErrUnavailable is returned by a Dispatcher whose prerequisite (shell
// automation, utility binary, API) is absent on this system. It is the
// expected trigger for the rename fallback and is not surfaced to the
// user as an error. Anything else a Dispatcher returns is unexpected
// and must be surfaced distinctly.
var ErrUnavailable = errors.New("trash mechanism unavailable")

// Dispatcher attempts a recoverable move to the OS trash or recycle
// bin. Exactly one implementation is selected per platform at startup;
// availability is probed at construction, never at call time, so the
// call is idempotent per run.
type Dispatcher interface {
	// Mechanism identifies this dispatcher's strategy.
	Mechanism() Mechanism

	// MoveToTrash moves the folder to the OS trash. Returns nil on
	// success, ErrUnavailable when the mechanism cannot be used on this
	// system, or another error on unexpected failure.
	MoveToTrash(root *safety.ProjectRoot) error
}

// NewDispatcher returns the trash dispatcher for the running platform.
func NewDispatcher() Dispatcher {
	return newPlatformDispatcher()
}

// OpError wraps an error with the operation and path that produced it.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

func newOpError(op, path string, err error) error {
	return &OpError{Op: op, Path: path, Err: err}
}
