package enumerable

import (
	"iter"

	"github.com/samber/lo"
)

// Without returns a view of seq with every element equal to item removed.
// The relative order of the remaining elements is preserved.
//
// Equality is [Equal], so a nil element is equal to a nil item and to
// nothing else, and an element holding a non-comparable value is kept.
func Without[T comparable](seq iter.Seq[T], item T) (iter.Seq[T], error) {
	if seq == nil {
		return nil, nilArgument("source")
	}
	matches := equalTo(item)
	return filtered(seq, func(v T) bool { return !matches(v) }), nil
}

// WithoutFunc is like [Without] but compares elements with equal.
//
// equal is never called with a nil element. A nil element is dropped only
// when item is nil too.
func WithoutFunc[T any](seq iter.Seq[T], item T, equal func(a, b T) bool) (iter.Seq[T], error) {
	if seq == nil {
		return nil, nilArgument("source")
	}
	if equal == nil {
		return nil, nilArgument("equal")
	}
	itemIsNil := lo.IsNil(item)
	return filtered(seq, func(v T) bool {
		if lo.IsNil(v) {
			return !itemIsNil
		}
		return !equal(v, item)
	}), nil
}

// WhereNotNull returns a view of seq without nil elements: nil pointers,
// interfaces, maps, slices, channels and funcs.
func WhereNotNull[T any](seq iter.Seq[T]) (iter.Seq[T], error) {
	if seq == nil {
		return nil, nilArgument("source")
	}
	return filtered(seq, func(v T) bool { return !lo.IsNil(v) }), nil
}

// WithIndex pairs each element of seq with its zero-based position.
//
//	for v, i := range seq {
//	    ...
//	}
func WithIndex[T any](seq iter.Seq[T]) (iter.Seq2[T, int], error) {
	if seq == nil {
		return nil, nilArgument("source")
	}
	return func(yield func(T, int) bool) {
		i := 0
		for v := range seq {
			if !yield(v, i) {
				return
			}
			i++
		}
	}, nil
}

func filtered[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}
