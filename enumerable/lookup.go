package enumerable

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// IsEmpty reports whether seq yields no elements.
func IsEmpty[T any](seq iter.Seq[T]) (bool, error) {
	if seq == nil {
		return false, nilArgument("source")
	}
	for range seq {
		return false, nil
	}
	return true, nil
}

// IsNullOrEmpty reports whether seq is nil or yields no elements.
func IsNullOrEmpty[T any](seq iter.Seq[T]) bool {
	if seq == nil {
		return true
	}
	empty, _ := IsEmpty(seq)
	return empty
}

// None reports whether no element of seq satisfies predicate.
func None[T any](seq iter.Seq[T], predicate func(T) bool) (bool, error) {
	i, err := FindIndex(seq, predicate)
	if err != nil {
		return false, err
	}
	return i < 0, nil
}

// FindIndex returns the zero-based position of the first element of seq that
// satisfies predicate, or -1 if there is none.
func FindIndex[T any](seq iter.Seq[T], predicate func(T) bool) (int, error) {
	if seq == nil {
		return -1, nilArgument("source")
	}
	if predicate == nil {
		return -1, nilArgument("predicate")
	}
	i := 0
	for v := range seq {
		if predicate(v) {
			return i, nil
		}
		i++
	}
	return -1, nil
}

// IndexOf returns the zero-based position of the first element of seq equal
// to item under [Equal], or -1 if there is none.
func IndexOf[T comparable](seq iter.Seq[T], item T) (int, error) {
	return FindIndex(seq, equalTo(item))
}

// MinBy returns the element of seq with the smallest key. When several
// elements share the smallest key the earliest one wins.
func MinBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (T, error) {
	return MinByFunc(seq, key, compareOrdered[K])
}

// MinByFunc is like [MinBy] but orders keys with cmp, which returns a
// negative number when a < b, zero when equal and a positive number when
// a > b.
func MinByFunc[T, K any](seq iter.Seq[T], key func(T) K, cmp func(a, b K) int) (T, error) {
	return extremeBy(seq, key, cmp, func(c int) bool { return c < 0 })
}

// MaxBy returns the element of seq with the largest key. When several
// elements share the largest key the earliest one wins.
func MaxBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (T, error) {
	return MaxByFunc(seq, key, compareOrdered[K])
}

// MaxByFunc is like [MaxBy] but orders keys with cmp.
func MaxByFunc[T, K any](seq iter.Seq[T], key func(T) K, cmp func(a, b K) int) (T, error) {
	return extremeBy(seq, key, cmp, func(c int) bool { return c > 0 })
}

// extremeBy keeps the current candidate unless better reports that a later
// key compares strictly ahead of it.
func extremeBy[T, K any](seq iter.Seq[T], key func(T) K, cmp func(a, b K) int, better func(int) bool) (T, error) {
	var best T
	if seq == nil {
		return best, nilArgument("source")
	}
	if key == nil {
		return best, nilArgument("key")
	}
	if cmp == nil {
		return best, nilArgument("cmp")
	}
	var bestKey K
	found := false
	for v := range seq {
		k := key(v)
		if !found || better(cmp(k, bestKey)) {
			best, bestKey, found = v, k, true
		}
	}
	if !found {
		return best, ErrEmptySequence
	}
	return best, nil
}

func compareOrdered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// TryGetFirst returns the first element of seq. The flag is false when seq
// is nil or empty.
func TryGetFirst[T any](seq iter.Seq[T]) (T, bool) {
	return TryGetFirstFunc(seq, always[T])
}

// TryGetFirstFunc returns the first element of seq satisfying predicate. The
// flag is false when nothing matches; a nil seq or predicate never matches.
func TryGetFirstFunc[T any](seq iter.Seq[T], predicate func(T) bool) (T, bool) {
	var zero T
	if seq == nil || predicate == nil {
		return zero, false
	}
	for v := range seq {
		if predicate(v) {
			return v, true
		}
	}
	return zero, false
}

// TryGetLast returns the last element of seq. The flag is false when seq is
// nil or empty.
func TryGetLast[T any](seq iter.Seq[T]) (T, bool) {
	return TryGetLastFunc(seq, always[T])
}

// TryGetLastFunc returns the last element of seq satisfying predicate. The
// source is collected and scanned from the end.
func TryGetLastFunc[T any](seq iter.Seq[T], predicate func(T) bool) (T, bool) {
	var zero T
	if seq == nil || predicate == nil {
		return zero, false
	}
	items := slices.Collect(seq)
	for i := len(items) - 1; i >= 0; i-- {
		if predicate(items[i]) {
			return items[i], true
		}
	}
	return zero, false
}
