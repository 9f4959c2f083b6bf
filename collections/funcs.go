package collections

import (
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-enumerable/arr"
)

// This file contains package-level generic functions for operations that
// need a type parameter a method cannot declare: a comparable element type,
// an ordered key type, or a different result element type.

// Without returns a new collection with every occurrence of values removed.
//
//	collections.Without(collections.New(1, 2, 1, 3), 1) // → [2, 3]
func Without[T comparable](c *Collection[T], values ...T) *Collection[T] {
	return wrap(arr.Without(c.items, values...))
}

// IndexOf returns the index of the first item equal to value, or -1.
func IndexOf[T comparable](c *Collection[T], value T) int {
	return arr.IndexOf(c.items, value)
}

// MinBy returns the item with the smallest key; ties keep the earliest.
// Returns [ErrEmptyCollection] for an empty collection.
//
//	youngest, _ := collections.MinBy(people, func(p Person) int { return p.Age })
func MinBy[T any, K constraints.Ordered](c *Collection[T], key func(T) K) (T, error) {
	return arr.MinBy(c.items, key)
}

// MaxBy returns the item with the largest key; ties keep the earliest.
func MaxBy[T any, K constraints.Ordered](c *Collection[T], key func(T) K) (T, error) {
	return arr.MaxBy(c.items, key)
}

// WithIndex pairs every item with its zero-based position.
//
//	collections.WithIndex(collections.New("a", "b")) // → [(a, 0), (b, 1)]
func WithIndex[T any](c *Collection[T]) *Collection[Pair[T, int]] {
	out := make([]Pair[T, int], 0, len(c.items))
	for _, p := range arr.WithIndex(c.items) {
		out = append(out, Pair[T, int]{First: p.Value, Second: p.Index})
	}
	return wrap(out)
}
