// Package apperr defines the error type shared by chime packages. Sentinel
// errors are declared once as *Error values and specialised with Fmt or Wrap
// at the call site while still matching the sentinel with errors.Is.
package apperr

import "fmt"

// Error is an application error with a user facing message.
type Error struct {
	Cause    error
	sentinel *Error
	Message  string
}

func (e *Error) root() *Error {
	if e.sentinel != nil {
		return e.sentinel
	}

	return e
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Unwrap exposes the underlying cause (if any).
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the same sentinel that e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

// Fmt formats the message with the provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		sentinel: e.root(),
	}
}

// Wrap attaches err as the cause of the error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    err,
		sentinel: e.root(),
	}
}
