package apperr

import "errors"

var (
	// ErrInvalid is returned when the input fails validation.
	ErrInvalid = errors.New("invalid input")
	// ErrNotFound indicates that the requested resource does not exist
	// or is not in a state the operation accepts.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness or state conflict.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable wraps unexpected data store failures (network, timeout).
	ErrUnavailable = errors.New("store unavailable")
	// ErrSideEffect marks failures that happen after the primary write has
	// been persisted. They are logged and never returned to callers.
	ErrSideEffect = errors.New("side effect failed")
)
