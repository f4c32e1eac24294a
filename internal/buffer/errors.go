package buffer

import "errors"

// Validation errors are detected before any mutation; batch operations are
// all-or-nothing.
var (
	// ErrInvalidPriority is returned when a priority value is negative.
	ErrInvalidPriority = errors.New("buffer: priority must be non-negative")

	// ErrLengthMismatch is returned when paired array arguments differ in
	// length, or a field slice is shorter than count * dimension.
	ErrLengthMismatch = errors.New("buffer: mismatched argument lengths")

	// ErrEmptyBuffer is returned when sampling from a buffer with no stored
	// transitions.
	ErrEmptyBuffer = errors.New("buffer: no transitions stored")

	// ErrDegenerateDistribution is returned when sampling while the total
	// priority mass is zero.
	ErrDegenerateDistribution = errors.New("buffer: total priority mass is zero")

	// ErrCapacityExceeded is returned when a single store call requests more
	// steps than the buffer can hold.
	ErrCapacityExceeded = errors.New("buffer: request exceeds capacity")
)
