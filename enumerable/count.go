package enumerable

import (
	"iter"
	"math"
)

// CountsExactly reports whether seq contains exactly expected elements.
// A negative expected is rejected with [ErrInvalidArgument].
func CountsExactly[T any](seq iter.Seq[T], expected int) (bool, error) {
	return CountsExactlyFunc(seq, expected, always[T])
}

// CountsExactlyFunc reports whether exactly expected elements of seq satisfy
// predicate.
func CountsExactlyFunc[T any](seq iter.Seq[T], expected int, predicate func(T) bool) (bool, error) {
	if err := checkCount(seq, predicate, "expected", expected); err != nil {
		return false, err
	}
	return countUpTo(seq, predicate, nextLimit(expected)) == expected, nil
}

// CountsMax reports whether seq contains at most expectedMax elements.
// A negative expectedMax is rejected with [ErrInvalidArgument].
func CountsMax[T any](seq iter.Seq[T], expectedMax int) (bool, error) {
	return CountsMaxFunc(seq, expectedMax, always[T])
}

// CountsMaxFunc reports whether at most expectedMax elements of seq satisfy
// predicate.
func CountsMaxFunc[T any](seq iter.Seq[T], expectedMax int, predicate func(T) bool) (bool, error) {
	if err := checkCount(seq, predicate, "expectedMax", expectedMax); err != nil {
		return false, err
	}
	return countUpTo(seq, predicate, nextLimit(expectedMax)) <= expectedMax, nil
}

// CountsMin reports whether seq contains at least expectedMin elements.
//
// Unlike [CountsExactly] and [CountsMax], a negative expectedMin is accepted
// and is trivially satisfied.
func CountsMin[T any](seq iter.Seq[T], expectedMin int) (bool, error) {
	return CountsMinFunc(seq, expectedMin, always[T])
}

// CountsMinFunc reports whether at least expectedMin elements of seq satisfy
// predicate. A negative expectedMin is accepted.
func CountsMinFunc[T any](seq iter.Seq[T], expectedMin int, predicate func(T) bool) (bool, error) {
	if seq == nil {
		return false, nilArgument("source")
	}
	if predicate == nil {
		return false, nilArgument("predicate")
	}
	if expectedMin <= 0 {
		return true, nil
	}
	return countUpTo(seq, predicate, expectedMin) >= expectedMin, nil
}

func checkCount[T any](seq iter.Seq[T], predicate func(T) bool, name string, n int) error {
	if seq == nil {
		return nilArgument("source")
	}
	if n < 0 {
		return negativeArgument(name, n)
	}
	if predicate == nil {
		return nilArgument("predicate")
	}
	return nil
}

// countUpTo counts matching elements, stopping once limit is reached.
func countUpTo[T any](seq iter.Seq[T], predicate func(T) bool, limit int) int {
	n := 0
	for v := range seq {
		if n >= limit {
			break
		}
		if predicate(v) {
			n++
		}
	}
	return n
}

// nextLimit is the smallest count that decides an "exactly n" or "at most n"
// question.
func nextLimit(n int) int {
	if n == math.MaxInt {
		return n
	}
	return n + 1
}

func always[T any](T) bool { return true }
