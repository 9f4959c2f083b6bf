package enumerable

import (
	"iter"
	"slices"
)

// Rotate moves the first count elements of seq to its end.
//
// count is used as a split point without modular reduction: a negative count
// fails with [ErrInvalidArgument], and a count at or beyond the length yields
// the elements in their original order. Prefer [RotateLeft] when count may
// exceed the length.
func Rotate[T any](seq iter.Seq[T], count int) (iter.Seq[T], error) {
	if seq == nil {
		return nil, nilArgument("source")
	}
	if count < 0 {
		return nil, negativeArgument("count", count)
	}
	items := slices.Collect(seq)
	return rotated(items, min(count, len(items))), nil
}

// RotateLeft rotates seq count positions to the left:
//
//	RotateLeft([1 2 3 4 5], 1)  → [2 3 4 5 1]
//	RotateLeft([1 2 3 4 5], 11) → [2 3 4 5 1]
//	RotateLeft([1 2 3 4 5], -1) → [5 1 2 3 4]
//
// A negative count rotates right by its magnitude, so RotateLeft(s, k) and
// RotateRight(s, -k) always agree. Rotating an empty sequence yields an empty
// sequence for any count.
func RotateLeft[T any](seq iter.Seq[T], count int) (iter.Seq[T], error) {
	if seq == nil {
		return nil, nilArgument("source")
	}
	items := slices.Collect(seq)
	if len(items) == 0 {
		return rotated(items, 0), nil
	}
	return rotated(items, mod(count, len(items))), nil
}

// RotateRight rotates seq count positions to the right:
//
//	RotateRight([1 2 3 4 5], 1)  → [5 1 2 3 4]
//	RotateRight([1 2 3 4 5], -1) → [2 3 4 5 1]
//
// A negative count rotates left by its magnitude. A zero count, or any
// multiple of the length, yields the original order.
func RotateRight[T any](seq iter.Seq[T], count int) (iter.Seq[T], error) {
	if seq == nil {
		return nil, nilArgument("source")
	}
	items := slices.Collect(seq)
	if len(items) == 0 {
		return rotated(items, 0), nil
	}
	// Reduce before negating so math.MinInt cannot overflow.
	return rotated(items, mod(-(count%len(items)), len(items))), nil
}

// rotated yields items[split:] followed by items[:split]. The view can be
// ranged over any number of times.
func rotated[T any](items []T, split int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range items[split:] {
			if !yield(v) {
				return
			}
		}
		for _, v := range items[:split] {
			if !yield(v) {
				return
			}
		}
	}
}

// mod returns the non-negative remainder of a divided by n (n > 0).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
