package collections

import (
	"errors"

	"github.com/hasbyte1/go-enumerable/enumerable"
)

// Sentinel errors returned by Collection operations.
//
// The first three are the enumerable sentinels under collection-flavoured
// names, so errors.Is matches either spelling.
var (
	// ErrInvalidArgument is returned when a count is negative or a required
	// function argument is nil.
	ErrInvalidArgument = enumerable.ErrInvalidArgument

	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = enumerable.ErrEmptySequence

	// ErrIndexOutOfRange is returned by [Collection.ElementAt] with
	// [enumerable.IndexNone] when the index is outside [0, Count()-1].
	ErrIndexOutOfRange = enumerable.ErrIndexOutOfRange

	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")
)
