package check

import (
	"errors"
	"fmt"
)

var (
	// ErrBoundsViolation means a measured value fell outside its expected range.
	ErrBoundsViolation = errors.New("bounds violation")
	// ErrMissingCapability means a sensor or OS facility reported nothing.
	ErrMissingCapability = errors.New("missing capability")
	// ErrConnectivityFailure means the outbound probe could not connect.
	ErrConnectivityFailure = errors.New("connectivity failure")
)

// Error carries a human readable diagnostic and unwraps to one of the
// sentinel kinds above.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
