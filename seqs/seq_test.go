package seqs_test

import (
	"slices"
	"testing"

	"lazyseq/cursor"
	"lazyseq/seqs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](c cursor.Cursor[T]) []T {
	var out []T
	for ; !c.Done(); c.Next() {
		out = append(out, c.Value())
	}
	return out
}

func TestCursor(t *testing.T) {
	pulled := 0
	seq := func(yield func(int) bool) {
		for i := 1; i <= 4; i++ {
			pulled++
			if !yield(i * 10) {
				return
			}
		}
	}

	c := seqs.Cursor(seq)
	require.Equal(t, cursor.SinglePass, cursor.TagOf(c))
	assert.Equal(t, 1, pulled, "first value is pulled eagerly")
	assert.Equal(t, 10, c.Value())
	assert.Equal(t, 10, c.Value(), "Value is idempotent")

	t.Run("clones replay independently", func(t *testing.T) {
		a := c.Clone()
		a.Next()
		b := a.Clone()
		assert.Equal(t, []int{20, 30, 40}, drain(a))
		assert.Equal(t, []int{20, 30, 40}, drain(b))
		assert.Equal(t, 10, c.Value())
		assert.Equal(t, 4, pulled, "values are pulled once")
	})

	t.Run("equality by position", func(t *testing.T) {
		a, b := c.Clone(), c.Clone()
		assert.True(t, a.Equal(b))
		a.Next()
		assert.False(t, a.Equal(b))
		b.Next()
		assert.True(t, a.Equal(b))
	})
}

func TestCursor_Empty(t *testing.T) {
	c := seqs.Cursor(slices.Values([]string(nil)))
	assert.True(t, c.Done())
	assert.True(t, cursor.SentinelEnd[string]().Reached(c))
}

func TestReducers(t *testing.T) {
	input := slices.Values([]int{3, 1, 4, 1, 5})

	assert.Equal(t, 14, seqs.Sum(input))
	mean, ok := seqs.Mean(input)
	assert.True(t, ok)
	assert.InDelta(t, 2.8, mean, 1e-9)

	mn, _ := seqs.Min(input)
	mx, _ := seqs.Max(input)
	assert.Equal(t, 1, mn)
	assert.Equal(t, 5, mx)

	_, ok = seqs.Min(slices.Values([]int{}))
	assert.False(t, ok)

	first, _ := seqs.First(input)
	last, _ := seqs.Last(input)
	assert.Equal(t, 3, first)
	assert.Equal(t, 5, last)

	assert.Equal(t, 5, seqs.Count(input))
	assert.True(t, seqs.Contains(input, 4))
	assert.Equal(t, 2, seqs.IndexFunc(input, func(v int) bool { return v > 3 }))
	assert.Equal(t, -1, seqs.IndexFunc(input, func(v int) bool { return v > 9 }))
	found, ok := seqs.Find(input, func(v int) bool { return v%2 == 0 })
	assert.True(t, ok)
	assert.Equal(t, 4, found)
	assert.True(t, seqs.Any(input, func(v int) bool { return v == 5 }))
	assert.False(t, seqs.All(input, func(v int) bool { return v > 1 }))
	assert.Equal(t, "31415", seqs.Reduce(input, "", func(acc string, v int) string {
		return acc + string(rune('0'+v))
	}))
}

func TestEqualFunc(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	assert.True(t, seqs.EqualFunc(slices.Values([]int{1, 2}), slices.Values([]int{1, 2}), eq))
	assert.False(t, seqs.EqualFunc(slices.Values([]int{1, 2}), slices.Values([]int{1, 2, 3}), eq))
	assert.False(t, seqs.EqualFunc(slices.Values([]int{1, 2, 3}), slices.Values([]int{1, 2}), eq))
	assert.False(t, seqs.EqualFunc(slices.Values([]int{1, 3}), slices.Values([]int{1, 2}), eq))
}
