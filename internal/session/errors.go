package session

import "github.com/ayoisaiah/clockout/internal/apperr"

var (
	// ErrStoreUnavailable is returned when a store read or write fails. The
	// engine state is left as it was before the operation.
	ErrStoreUnavailable = &apperr.Error{
		Message: "the data store is unavailable",
	}

	// ErrInvalidTransition is returned when an action is not permitted in
	// the current state.
	ErrInvalidTransition = &apperr.Error{
		Message: "cannot %s while %s",
	}

	// ErrMalformedValue reports a stored value that could not be parsed. The
	// slot is treated as absent.
	ErrMalformedValue = &apperr.Error{
		Message: "stored %s value is malformed and was ignored",
	}

	// ErrClockSkew is returned when the clock reports a time that would put
	// a break out of order, such as a break ending before it started.
	ErrClockSkew = &apperr.Error{
		Message: "the device clock moved backwards: %s is not after %s",
	}

	ErrClosed = &apperr.Error{
		Message: "the session engine is closed",
	}
)
