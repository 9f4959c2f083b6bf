package enumerable_test

import (
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-enumerable/enumerable"
)

func collect[T any](t *testing.T, seq iter.Seq[T], err error) []T {
	t.Helper()
	require.NoError(t, err)
	return slices.Collect(seq)
}

func TestRotateLeft(t *testing.T) {
	numbers := slices.Values([]int{1, 2, 3, 4, 5})
	for count, want := range map[int][]int{
		0:  {1, 2, 3, 4, 5},
		1:  {2, 3, 4, 5, 1},
		2:  {3, 4, 5, 1, 2},
		4:  {5, 1, 2, 3, 4},
		5:  {1, 2, 3, 4, 5},
		6:  {2, 3, 4, 5, 1},
		11: {2, 3, 4, 5, 1},
		15: {1, 2, 3, 4, 5},
		-1: {5, 1, 2, 3, 4},
		-2: {4, 5, 1, 2, 3},
		-4: {2, 3, 4, 5, 1},
		-5: {1, 2, 3, 4, 5},
	} {
		got, err := enumerable.RotateLeft(numbers, count)
		assert.Equal(t, want, collect(t, got, err), "RotateLeft(%d)", count)
	}
}

func TestRotateRight(t *testing.T) {
	numbers := slices.Values([]int{1, 2, 3, 4, 5})
	for count, want := range map[int][]int{
		0:  {1, 2, 3, 4, 5},
		1:  {5, 1, 2, 3, 4},
		2:  {4, 5, 1, 2, 3},
		4:  {2, 3, 4, 5, 1},
		5:  {1, 2, 3, 4, 5},
		6:  {5, 1, 2, 3, 4},
		14: {2, 3, 4, 5, 1},
		-1: {2, 3, 4, 5, 1},
		-3: {4, 5, 1, 2, 3},
		-5: {1, 2, 3, 4, 5},
	} {
		got, err := enumerable.RotateRight(numbers, count)
		assert.Equal(t, want, collect(t, got, err), "RotateRight(%d)", count)
	}
}

func TestRotateLeftMatchesRotateRightNegated(t *testing.T) {
	numbers := slices.Values([]int{1, 2, 3, 4, 5, 6, 7})
	for k := -20; k <= 20; k++ {
		left, err := enumerable.RotateLeft(numbers, k)
		l := collect(t, left, err)
		right, err := enumerable.RotateRight(numbers, -k)
		r := collect(t, right, err)
		assert.Equal(t, l, r, "k=%d", k)

		reduced, err := enumerable.RotateLeft(numbers, ((k%7)+7)%7)
		assert.Equal(t, l, collect(t, reduced, err), "k=%d", k)
	}
}

func TestRotateExtremeCounts(t *testing.T) {
	numbers := slices.Values([]int{1, 2, 3})
	// math.MinInt % 3 == -2, so a left rotation by MinInt is a right rotation by 2.
	left, err := enumerable.RotateLeft(numbers, math.MinInt)
	assert.Equal(t, []int{2, 3, 1}, collect(t, left, err))

	right, err := enumerable.RotateRight(numbers, math.MinInt)
	assert.Equal(t, []int{3, 1, 2}, collect(t, right, err))
}

func TestRotateEmpty(t *testing.T) {
	empty := slices.Values([]int{})
	for _, count := range []int{-3, 0, 3} {
		left, err := enumerable.RotateLeft(empty, count)
		assert.Empty(t, collect(t, left, err))
		right, err := enumerable.RotateRight(empty, count)
		assert.Empty(t, collect(t, right, err))
		if count >= 0 {
			plain, err := enumerable.Rotate(empty, count)
			assert.Empty(t, collect(t, plain, err))
		}
	}
}

func TestRotate(t *testing.T) {
	numbers := slices.Values([]int{1, 2, 3, 4, 5})

	got, err := enumerable.Rotate(numbers, 2)
	assert.Equal(t, []int{3, 4, 5, 1, 2}, collect(t, got, err))

	// No modular reduction: past the end everything is skipped then taken.
	got, err = enumerable.Rotate(numbers, 7)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(t, got, err))

	_, err = enumerable.Rotate(numbers, -1)
	assert.ErrorIs(t, err, enumerable.ErrInvalidArgument)
}

func TestRotateNilSource(t *testing.T) {
	_, err := enumerable.Rotate[int](nil, 1)
	assert.ErrorIs(t, err, enumerable.ErrInvalidArgument)
	_, err = enumerable.RotateLeft[int](nil, 1)
	assert.ErrorIs(t, err, enumerable.ErrInvalidArgument)
	_, err = enumerable.RotateRight[int](nil, 1)
	assert.ErrorIs(t, err, enumerable.ErrInvalidArgument)
}

func TestRotateIsRestartableSnapshot(t *testing.T) {
	source := []int{1, 2, 3}
	rotated, err := enumerable.RotateLeft(slices.Values(source), 1)
	require.NoError(t, err)

	source[0] = 100
	assert.Equal(t, []int{2, 3, 1}, slices.Collect(rotated))
	assert.Equal(t, []int{2, 3, 1}, slices.Collect(rotated))

	var firstTwo []int
	for v := range rotated {
		firstTwo = append(firstTwo, v)
		if len(firstTwo) == 2 {
			break
		}
	}
	assert.Equal(t, []int{2, 3}, firstTwo)
}
