package enumerable_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-enumerable/enumerable"
)

func TestResolveIndex(t *testing.T) {
	for name, tc := range map[string]struct {
		strategy enumerable.IndexingStrategy
		index    int
		want     int
	}{
		"cyclic in range":     {enumerable.IndexCyclic, 2, 2},
		"cyclic minus one":    {enumerable.IndexCyclic, -1, 4},
		"cyclic length":       {enumerable.IndexCyclic, 5, 0},
		"cyclic far negative": {enumerable.IndexCyclic, -11, 4},
		"cyclic far positive": {enumerable.IndexCyclic, 13, 3},
		"clamp in range":      {enumerable.IndexClamp, 3, 3},
		"clamp below":         {enumerable.IndexClamp, -5, 0},
		"clamp at length":     {enumerable.IndexClamp, 5, 4},
		"clamp above":         {enumerable.IndexClamp, 10, 4},
		"none first":          {enumerable.IndexNone, 0, 0},
		"none last":           {enumerable.IndexNone, 4, 4},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := enumerable.ResolveIndex(tc.strategy, tc.index, 5)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveIndexErrors(t *testing.T) {
	_, err := enumerable.ResolveIndex(enumerable.IndexNone, 5, 5)
	assert.ErrorIs(t, err, enumerable.ErrIndexOutOfRange)

	_, err = enumerable.ResolveIndex(enumerable.IndexNone, -1, 5)
	assert.ErrorIs(t, err, enumerable.ErrIndexOutOfRange)

	_, err = enumerable.ResolveIndex(enumerable.IndexingStrategy(42), 0, 5)
	assert.ErrorIs(t, err, enumerable.ErrInvalidArgument)

	_, err = enumerable.ResolveIndex(enumerable.IndexCyclic, 0, 0)
	assert.ErrorIs(t, err, enumerable.ErrEmptySequence)
}

func TestElementAt(t *testing.T) {
	s := slices.Values([]string{"a", "b", "c", "d", "e"})

	for _, tc := range []struct {
		index    int
		strategy enumerable.IndexingStrategy
		want     string
	}{
		{-1, enumerable.IndexCyclic, "e"},
		{4, enumerable.IndexCyclic, "e"},
		{5, enumerable.IndexCyclic, "a"},
		{-5, enumerable.IndexClamp, "a"},
		{10, enumerable.IndexClamp, "e"},
		{2, enumerable.IndexNone, "c"},
	} {
		got, err := enumerable.ElementAt(s, tc.index, tc.strategy)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "ElementAt(%d, %v)", tc.index, tc.strategy)
	}
}

func TestElementAtErrors(t *testing.T) {
	_, err := enumerable.ElementAt[int](nil, 0, enumerable.IndexCyclic)
	assert.ErrorIs(t, err, enumerable.ErrInvalidArgument)

	_, err = enumerable.ElementAt(slices.Values([]int{}), 0, enumerable.IndexCyclic)
	assert.ErrorIs(t, err, enumerable.ErrEmptySequence)
	assert.ErrorIs(t, err, enumerable.ErrInvalidArgument)

	_, err = enumerable.ElementAt(slices.Values([]int{1, 2}), 2, enumerable.IndexNone)
	assert.ErrorIs(t, err, enumerable.ErrIndexOutOfRange)
}

func TestElementAtSinglePass(t *testing.T) {
	passes := 0
	seq := func(yield func(int) bool) {
		passes++
		for _, v := range []int{7, 8, 9} {
			if !yield(v) {
				return
			}
		}
	}
	got, err := enumerable.ElementAt(seq, -1, enumerable.IndexCyclic)
	require.NoError(t, err)
	assert.Equal(t, 9, got)
	assert.Equal(t, 1, passes)
}

func TestIndexingStrategyString(t *testing.T) {
	assert.Equal(t, "none", enumerable.IndexNone.String())
	assert.Equal(t, "cyclic", enumerable.IndexCyclic.String())
	assert.Equal(t, "clamp", enumerable.IndexClamp.String())
	assert.Equal(t, "IndexingStrategy(9)", enumerable.IndexingStrategy(9).String())
}
