package tileutil

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrInvalidTable = errors.New("invalid table description")
)

// DisplayInitError reports that the connection to the display server could
// not be initialized. The root cause is an external resource this program
// does not control, so the error message carries a fixed annotation saying
// so; callers should surface it rather than retry.
type DisplayInitError struct {
	Cause error
}

func (e *DisplayInitError) Error() string {
	return e.Cause.Error() + "\n\t(the cause of this error lies outside of this program)"
}

// Unwrap exposes the underlying cause to [errors.Is] and [errors.As].
func (e *DisplayInitError) Unwrap() error { return e.Cause }
