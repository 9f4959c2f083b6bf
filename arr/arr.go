package arr

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-enumerable/enumerable"
)

// ─────────────────────────────────────────────────────────────────────────────
// Counting
// ─────────────────────────────────────────────────────────────────────────────

// CountsExactly reports whether len(items) == expected.
// A negative expected wraps [enumerable.ErrInvalidArgument].
func CountsExactly[T any](items []T, expected int) (bool, error) {
	if expected < 0 {
		return false, negative("expected", expected)
	}
	return len(items) == expected, nil
}

// CountsExactlyFunc reports whether exactly expected elements satisfy fn.
func CountsExactlyFunc[T any](items []T, expected int, fn func(T) bool) (bool, error) {
	return enumerable.CountsExactlyFunc(slices.Values(items), expected, fn)
}

// CountsMax reports whether len(items) <= expectedMax.
func CountsMax[T any](items []T, expectedMax int) (bool, error) {
	if expectedMax < 0 {
		return false, negative("expectedMax", expectedMax)
	}
	return len(items) <= expectedMax, nil
}

// CountsMaxFunc reports whether at most expectedMax elements satisfy fn.
func CountsMaxFunc[T any](items []T, expectedMax int, fn func(T) bool) (bool, error) {
	return enumerable.CountsMaxFunc(slices.Values(items), expectedMax, fn)
}

// CountsMin reports whether len(items) >= expectedMin. Negative values are
// accepted, so the error is always nil; it is returned for symmetry with the
// rest of the family.
func CountsMin[T any](items []T, expectedMin int) (bool, error) {
	return len(items) >= expectedMin, nil
}

// CountsMinFunc reports whether at least expectedMin elements satisfy fn.
func CountsMinFunc[T any](items []T, expectedMin int, fn func(T) bool) (bool, error) {
	return enumerable.CountsMinFunc(slices.Values(items), expectedMin, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexing & rotation
// ─────────────────────────────────────────────────────────────────────────────

// ElementAt returns items[index] after resolving index with strategy.
// An empty slice fails with [enumerable.ErrEmptySequence].
func ElementAt[T any](items []T, index int, strategy enumerable.IndexingStrategy) (T, error) {
	var zero T
	i, err := enumerable.ResolveIndex(strategy, index, len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// Rotate moves the first count elements to the end without reducing count
// modulo the length. A negative count wraps [enumerable.ErrInvalidArgument].
func Rotate[T any](items []T, count int) ([]T, error) {
	seq, err := enumerable.Rotate(slices.Values(items), count)
	if err != nil {
		return nil, err
	}
	return collect(seq), nil
}

// RotateLeft returns a copy of items rotated count positions to the left.
// A negative count rotates right; an empty slice stays empty.
func RotateLeft[T any](items []T, count int) []T {
	seq, _ := enumerable.RotateLeft(slices.Values(items), count)
	return collect(seq)
}

// RotateRight returns a copy of items rotated count positions to the right.
// A negative count rotates left.
func RotateRight[T any](items []T, count int) []T {
	seq, _ := enumerable.RotateRight(slices.Values(items), count)
	return collect(seq)
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	if len(fns) > 0 {
		return enumerable.TryGetFirstFunc(slices.Values(items), fns[0])
	}
	return enumerable.TryGetFirst(slices.Values(items))
}

// Last returns the last element, optionally matching fns[0]. The slice is
// scanned from the end.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	match := func(T) bool { return true }
	if len(fns) > 0 {
		if fns[0] == nil {
			return zero, false
		}
		match = fns[0]
	}
	for _, item := range slices.Backward(items) {
		if match(item) {
			return item, true
		}
	}
	return zero, false
}

// IndexOf returns the index of the first occurrence of value, or -1.
// Elements holding non-comparable values never match; see [enumerable.Equal].
func IndexOf[T comparable](items []T, value T) int {
	_, i, _ := lo.FindIndexOf(items, func(item T) bool { return enumerable.Equal(item, value) })
	return i
}

// FindIndex returns the index of the first element satisfying fn, or -1.
// A nil fn wraps [enumerable.ErrInvalidArgument].
func FindIndex[T any](items []T, fn func(T) bool) (int, error) {
	return enumerable.FindIndex(slices.Values(items), fn)
}

// None reports whether no element satisfies fn.
// A nil fn wraps [enumerable.ErrInvalidArgument].
func None[T any](items []T, fn func(T) bool) (bool, error) {
	return enumerable.None(slices.Values(items), fn)
}

// MinBy returns the element with the smallest key; ties keep the earliest.
// An empty slice wraps [enumerable.ErrEmptySequence].
func MinBy[T any, K constraints.Ordered](items []T, key func(T) K) (T, error) {
	return enumerable.MinBy(slices.Values(items), key)
}

// MaxBy returns the element with the largest key; ties keep the earliest.
func MaxBy[T any, K constraints.Ordered](items []T, key func(T) K) (T, error) {
	return enumerable.MaxBy(slices.Values(items), key)
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Without returns a copy of items with every occurrence of the given values
// removed, preserving order. Equality is [enumerable.Equal], so elements
// holding non-comparable values are kept.
func Without[T comparable](items []T, values ...T) []T {
	return lo.Filter(items, func(item T, _ int) bool {
		return !lo.ContainsBy(values, func(v T) bool { return enumerable.Equal(item, v) })
	})
}

// WithoutFunc returns a copy of items with every element equal to value
// under equal removed. equal is never called with a nil element.
func WithoutFunc[T any](items []T, value T, equal func(a, b T) bool) ([]T, error) {
	seq, err := enumerable.WithoutFunc(slices.Values(items), value, equal)
	if err != nil {
		return nil, err
	}
	return collect(seq), nil
}

// WhereNotNull returns a copy of items without nil elements.
func WhereNotNull[T any](items []T) []T {
	return lo.Filter(items, func(item T, _ int) bool { return !lo.IsNil(item) })
}

// Indexed is an element paired with its position, as produced by
// [WithIndex].
type Indexed[T any] struct {
	Value T
	Index int
}

// WithIndex pairs every element with its zero-based index.
func WithIndex[T any](items []T) []Indexed[T] {
	out := make([]Indexed[T], len(items))
	for i, item := range items {
		out[i] = Indexed[T]{Value: item, Index: i}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Random returns one uniformly chosen element.
// An empty slice wraps [enumerable.ErrEmptySequence].
func Random[T any](items []T) (T, error) {
	return enumerable.Random(slices.Values(items))
}

// Sample returns n elements chosen without replacement using s (nil for the
// process-wide generator). If n >= len(items) every element is returned.
func Sample[T any](s *enumerable.Sampler, items []T, n int) ([]T, error) {
	return enumerable.PickN(s, slices.Values(items), n)
}

// ─────────────────────────────────────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────────────────────────────────────

func negative(name string, value int) error {
	return fmt.Errorf("%w: %s must not be negative, got %d", enumerable.ErrInvalidArgument, name, value)
}

func collect[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}
