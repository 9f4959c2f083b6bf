package enumerable

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by enumerable operations.
//
// Use [errors.Is] for comparisons:
//
//	v, err := enumerable.ElementAt(seq, 3, enumerable.IndexNone)
//	if errors.Is(err, enumerable.ErrIndexOutOfRange) {
//	    // index was outside [0, length)
//	}
var (
	// ErrInvalidArgument is returned when a required input is nil or a
	// numeric parameter violates its non-negativity constraint.
	ErrInvalidArgument = errors.New("enumerable: invalid argument")

	// ErrEmptySequence is returned when an operation that needs at least one
	// element receives a sequence with none.
	ErrEmptySequence = errors.New("enumerable: sequence contains no elements")

	// ErrIndexOutOfRange is returned by [ElementAt] when no indexing strategy
	// is requested and the index falls outside the sequence.
	ErrIndexOutOfRange = errors.New("enumerable: index out of range")
)

func nilArgument(name string) error {
	return fmt.Errorf("%w: %s must not be nil", ErrInvalidArgument, name)
}

func negativeArgument(name string, value int) error {
	return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidArgument, name, value)
}
