package enumerable

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"
)

// IndexingStrategy controls how [ElementAt] maps an index that falls outside
// [0, length) back into range.
type IndexingStrategy uint8

const (
	// IndexNone uses the index as given; out-of-range indices fail with
	// [ErrIndexOutOfRange].
	IndexNone IndexingStrategy = iota
	// IndexCyclic wraps the index modulo the length in both directions, so
	// -1 selects the last element and length selects the first.
	IndexCyclic
	// IndexClamp saturates the index at the nearest boundary.
	IndexClamp
)

// String returns the strategy name.
func (s IndexingStrategy) String() string {
	switch s {
	case IndexNone:
		return "none"
	case IndexCyclic:
		return "cyclic"
	case IndexClamp:
		return "clamp"
	}
	return fmt.Sprintf("IndexingStrategy(%d)", uint8(s))
}

// ResolveIndex maps index into [0, length) according to strategy.
//
// length must be positive; a non-positive length reports [ErrEmptySequence]
// since no index can ever be resolved.
func ResolveIndex(strategy IndexingStrategy, index, length int) (int, error) {
	if length <= 0 {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, ErrEmptySequence)
	}
	switch strategy {
	case IndexCyclic:
		return ((index % length) + length) % length, nil
	case IndexClamp:
		return lo.Clamp(index, 0, length-1), nil
	case IndexNone:
		if index < 0 || index >= length {
			return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
		}
		return index, nil
	}
	return 0, fmt.Errorf("%w: unknown indexing strategy %v", ErrInvalidArgument, strategy)
}

// ElementAt returns the element of seq at index, resolved with strategy.
//
// The source is collected once. An empty source fails with an error that
// matches both [ErrInvalidArgument] and [ErrEmptySequence].
func ElementAt[T any](seq iter.Seq[T], index int, strategy IndexingStrategy) (T, error) {
	var zero T
	if seq == nil {
		return zero, nilArgument("source")
	}
	items := slices.Collect(seq)
	i, err := ResolveIndex(strategy, index, len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}
