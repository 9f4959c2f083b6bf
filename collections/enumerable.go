package collections

import (
	"iter"

	"github.com/hasbyte1/go-enumerable/enumerable"
)

// Enumerable is the interface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions so that callers can substitute
// alternative implementations without depending on the concrete
// *Collection type.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Values returns a sequence over the items.
	Values() iter.Seq[T]

	// Count returns the number of items.
	Count() int

	// ElementAt returns the item at index resolved with strategy.
	ElementAt(index int, strategy enumerable.IndexingStrategy) (T, error)

	// First returns the first item, optionally matching fns[0].
	// Returns the zero value and false when the collection is empty or
	// no item matches.
	First(fns ...func(T) bool) (T, bool)

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// Last returns the last item, optionally matching fns[0].
	Last(fns ...func(T) bool) (T, bool)

	// None reports whether no item satisfies fn.
	None(fn func(T) bool) (bool, error)

	// Random returns one uniformly chosen item.
	Random() (T, error)

	// RotateLeft returns a new collection rotated n positions to the left.
	RotateLeft(n int) *Collection[T]

	// RotateRight returns a new collection rotated n positions to the right.
	RotateRight(n int) *Collection[T]
}

var _ Enumerable[int] = (*Collection[int])(nil)
