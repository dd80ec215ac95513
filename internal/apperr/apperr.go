// Package apperr provides templated error values that can be formatted and
// wrapped while still matching their sentinel with errors.Is
package apperr

import "fmt"

// Error is an application error. Message may contain fmt verbs which are
// filled in by Fmt.
type Error struct {
	Cause   error
	Message string
	Context []any
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) > 0 {
		msg = fmt.Sprintf(e.Message, e.Context...)
	}

	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

// Fmt returns a copy of the error with its message arguments set.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: e.Message,
		Context: args,
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Context: e.Context,
		Cause:   err,
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error created from the same template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Message == e.Message
}
