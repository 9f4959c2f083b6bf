package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/hasbyte1/go-enumerable/arr"
	"github.com/hasbyte1/go-enumerable/enumerable"
)

// Collection is a generic, immutable-by-default wrapper around a slice of T.
//
// Every method that reorders or filters the collection returns a *new*
// Collection, leaving the original unchanged. This makes a Collection safe
// for concurrent reads and avoids aliasing bugs in pipelines.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Collect(seq)
//	c := collections.Empty[int]()
//
// # Method chaining
//
//	last, _ := collections.New(1, 2, 3, 4, 5).
//	    RotateLeft(2).
//	    WhereNotNull().
//	    ElementAt(-1, enumerable.IndexCyclic) // → 2
//
// Operations that need an extra type parameter (a comparable element, an
// ordered key, a pair result) are package-level functions: [Without],
// [IndexOf], [MinBy], [MaxBy] and [WithIndex].
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Collect drains seq into a new Collection. A nil seq yields an empty one.
func Collect[T any](seq iter.Seq[T]) *Collection[T] {
	if seq == nil {
		return Empty[T]()
	}
	return wrap(slices.Collect(seq))
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// wrap takes ownership of items without copying.
func wrap[T any](items []T) *Collection[T] {
	if items == nil {
		items = []T{}
	}
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Values returns a sequence over the items. Pass it to any function of
// package enumerable.
func (c *Collection[T]) Values() iter.Seq[T] { return slices.Values(c.items) }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Counting
// ─────────────────────────────────────────────────────────────────────────────

// CountsExactly reports whether the collection holds exactly n items, or
// exactly n items matching fns[0] when given. A negative n wraps
// [ErrInvalidArgument].
func (c *Collection[T]) CountsExactly(n int, fns ...func(T) bool) (bool, error) {
	if len(fns) > 0 {
		return arr.CountsExactlyFunc(c.items, n, fns[0])
	}
	return arr.CountsExactly(c.items, n)
}

// CountsMax reports whether at most n items (matching fns[0] when given)
// are present. A negative n wraps [ErrInvalidArgument].
func (c *Collection[T]) CountsMax(n int, fns ...func(T) bool) (bool, error) {
	if len(fns) > 0 {
		return arr.CountsMaxFunc(c.items, n, fns[0])
	}
	return arr.CountsMax(c.items, n)
}

// CountsMin reports whether at least n items (matching fns[0] when given)
// are present. A negative n is accepted.
func (c *Collection[T]) CountsMin(n int, fns ...func(T) bool) (bool, error) {
	if len(fns) > 0 {
		return arr.CountsMinFunc(c.items, n, fns[0])
	}
	return arr.CountsMin(c.items, n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// ElementAt returns the item at index resolved with strategy.
//
//	c := collections.New("a", "b", "c")
//	c.ElementAt(-1, enumerable.IndexCyclic) // → "c"
//	c.ElementAt(7, enumerable.IndexClamp)   // → "c"
func (c *Collection[T]) ElementAt(index int, strategy enumerable.IndexingStrategy) (T, error) {
	return arr.ElementAt(c.items, index, strategy)
}

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	return arr.First(c.items, fns...)
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := c.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Last returns the last item, optionally matching fns[0].
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	return arr.Last(c.items, fns...)
}

// LastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) LastOrFail(fn func(T) bool) (T, error) {
	item, ok := c.Last(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// FindIndex returns the index of the first item for which fn returns true,
// or -1. A nil fn wraps [ErrInvalidArgument].
func (c *Collection[T]) FindIndex(fn func(T) bool) (int, error) {
	return arr.FindIndex(c.items, fn)
}

// None reports whether no item satisfies fn.
// A nil fn wraps [ErrInvalidArgument].
func (c *Collection[T]) None(fn func(T) bool) (bool, error) {
	return arr.None(c.items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reordering
// ─────────────────────────────────────────────────────────────────────────────

// Rotate returns a new collection with the first n items moved to the end.
// n is not reduced modulo Count(); a negative n wraps [ErrInvalidArgument].
func (c *Collection[T]) Rotate(n int) (*Collection[T], error) {
	out, err := arr.Rotate(c.items, n)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// RotateLeft returns a new collection rotated n positions to the left.
// A negative n rotates right.
func (c *Collection[T]) RotateLeft(n int) *Collection[T] {
	return wrap(arr.RotateLeft(c.items, n))
}

// RotateRight returns a new collection rotated n positions to the right.
// A negative n rotates left.
func (c *Collection[T]) RotateRight(n int) *Collection[T] {
	return wrap(arr.RotateRight(c.items, n))
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// WithoutFunc returns a new collection without the items equal to value
// under equal. For comparable element types see the package-level [Without].
// A nil equal wraps [ErrInvalidArgument].
func (c *Collection[T]) WithoutFunc(value T, equal func(a, b T) bool) (*Collection[T], error) {
	out, err := arr.WithoutFunc(c.items, value, equal)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// WhereNotNull returns a new collection without nil items.
func (c *Collection[T]) WhereNotNull() *Collection[T] {
	return wrap(arr.WhereNotNull(c.items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Random returns one uniformly chosen item, or [ErrEmptyCollection].
func (c *Collection[T]) Random() (T, error) {
	return arr.Random(c.items)
}

// Sample returns a new collection of n items chosen without replacement
// using s (nil for the process-wide generator). If n >= Count(), every item
// is returned in unspecified order.
func (c *Collection[T]) Sample(s *enumerable.Sampler, n int) (*Collection[T], error) {
	out, err := arr.Sample(s, c.items, n)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}
