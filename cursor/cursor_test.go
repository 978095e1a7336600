package cursor_test

import (
	"testing"

	"lazyseq/cursor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countdown is a forward-only core used to check capability gating.
type countdown struct{ n int }

func (c *countdown) Value() int { return c.n }
func (c *countdown) Next() { c.n-- }
func (c *countdown) Done() bool { return c.n <= 0 }
func (c *countdown) Equal(o cursor.Core[int]) bool { return c.n == o.(*countdown).n }

func (c *countdown) Clone() cursor.Core[int] {
	cp := *c
	return &cp
}

func collect[T any](c cursor.Cursor[T], end cursor.End[T]) []T {
	var out []T
	for c = c.Clone(); !end.Reached(c); c.Next() {
		out = append(out, c.Value())
	}
	return out
}

func TestTag(t *testing.T) {
	assert.Equal(t, cursor.SinglePass, cursor.Min(cursor.RandomAccess, cursor.SinglePass, cursor.Bidirectional))
	assert.Equal(t, cursor.Bidirectional, cursor.Min(cursor.RandomAccess, cursor.Bidirectional))
	assert.Equal(t, cursor.RandomAccess, cursor.Min())
	assert.Equal(t, "bidirectional", cursor.Bidirectional.String())
	assert.True(t, cursor.SinglePass < cursor.Bidirectional && cursor.Bidirectional < cursor.RandomAccess)
}

func TestSynthesize_Gating(t *testing.T) {
	c := cursor.Synthesize[int](&countdown{n: 3}, cursor.RandomAccess)
	assert.Equal(t, cursor.SinglePass, cursor.TagOf(c), "core without Prev cannot be promoted")
	_, ok := c.(cursor.Bidi[int])
	assert.False(t, ok)

	s := cursor.Synthesize[int](cursor.CoreOf[int](cursor.Slice([]int{1, 2})), cursor.Bidirectional)
	assert.Equal(t, cursor.Bidirectional, cursor.TagOf(s))
	_, ok = s.(cursor.Random[int])
	assert.False(t, ok, "a bidirectional gate must not expose Jump")

	assert.Equal(t, []int{3, 2, 1}, collect(c, cursor.SentinelEnd[int]()))
}

func TestSlice(t *testing.T) {
	data := []int{10, 20, 30, 40}
	begin, end := cursor.SliceRange(data)

	require.Equal(t, cursor.RandomAccess, cursor.TagOf[int](begin))
	assert.Equal(t, data, collect[int](begin, end))
	assert.Equal(t, 4, cursor.Distance[int](begin, mustCursor(t, end)))

	c := cursor.Add(begin, 2)
	assert.Equal(t, 30, c.Value())
	assert.Equal(t, 10, begin.Value(), "Add must not move its operand")
	assert.True(t, cursor.Less(begin, c))
	assert.True(t, cursor.Greater(c, begin))
	assert.True(t, cursor.LessEqual(c, c))
	assert.True(t, cursor.GreaterEqual(c, begin))
	assert.Equal(t, -1, cursor.Compare(begin, c))
	assert.Equal(t, 0, cursor.Compare(c, cursor.Sub(cursor.Add(c, 1), 1)))

	old := cursor.PostPrev[int](c)
	assert.Equal(t, 30, old.Value())
	assert.Equal(t, 20, c.Value())
	old2 := cursor.PostNext[int](c)
	assert.Equal(t, 20, old2.Value())
	assert.Equal(t, 30, c.Value())
}

func TestClone_Independent(t *testing.T) {
	a := cursor.Slice([]string{"x", "y", "z"})
	b := a.Clone()
	b.Next()
	b.Next()
	assert.Equal(t, "x", a.Value())
	assert.Equal(t, "z", b.Value())
	assert.False(t, a.Equal(b))
}

func TestEnd(t *testing.T) {
	begin, end := cursor.SliceRange([]int{1, 2, 3})
	assert.False(t, end.IsSentinel())
	s := cursor.SentinelEnd[int]()
	assert.True(t, s.IsSentinel())
	assert.Equal(t, []int{1, 2, 3}, collect[int](begin, s))

	c := begin.Clone()
	cursor.Advance(c, 3)
	assert.True(t, end.Reached(c))
	assert.True(t, cursor.AtSentinel(c, cursor.Sentinel{}))
	assert.True(t, cursor.SentinelAt(cursor.Sentinel{}, c))

	_, ok := s.Cursor()
	assert.False(t, ok)
}

func TestRangeTag(t *testing.T) {
	begin, end := cursor.SliceRange([]int{1})
	assert.Equal(t, cursor.RandomAccess, cursor.RangeTag[int](begin, end))
	assert.Equal(t, cursor.Bidirectional, cursor.RangeTag[int](begin, cursor.SentinelEnd[int]()))
	assert.Equal(t, cursor.SinglePass, cursor.ClosedTag[int](begin, cursor.SentinelEnd[int]()))
}

func TestAdvanceBounded(t *testing.T) {
	begin, end := cursor.SliceRange([]int{1, 2, 3, 4, 5})
	c := begin.Clone()
	assert.Equal(t, 3, cursor.AdvanceBounded(c, 3, end))
	assert.Equal(t, 2, cursor.AdvanceBounded(c, 10, end))
	assert.True(t, end.Reached(c))

	f := cursor.Synthesize[int](&countdown{n: 4}, cursor.SinglePass)
	assert.Equal(t, 4, cursor.AdvanceBounded(f, 9, cursor.SentinelEnd[int]()))
	assert.True(t, f.Done())
}

func TestCount(t *testing.T) {
	f := cursor.Synthesize[int](&countdown{n: 5}, cursor.SinglePass)
	assert.Equal(t, 5, cursor.Count(f, cursor.SentinelEnd[int]()))
	assert.Equal(t, 5, f.Value(), "Count walks a copy")
}

func TestIota(t *testing.T) {
	begin, end := cursor.Iota(1, 3, cursor.Steps(1, 10, 3))
	assert.Equal(t, []int{1, 4, 7}, collect[int](begin, end))

	fb, fe := cursor.Iota(1.0, -0.5, cursor.Steps(1.0, -0.1, -0.5))
	assert.Equal(t, []float64{1, 0.5, 0}, collect[float64](fb, fe))

	assert.Equal(t, 0, cursor.Steps(5, 1, 1))
	assert.Equal(t, 0, cursor.Steps(1, 5, 0))
	assert.Equal(t, 4, cursor.Steps(10, 2, -2))
}

func TestRepeat(t *testing.T) {
	begin, end := cursor.Repeat("a", 3)
	assert.Equal(t, []string{"a", "a", "a"}, collect[string](begin, end))
	assert.Equal(t, 3, cursor.Distance[string](begin, mustCursor(t, end)))
}

func TestErase(t *testing.T) {
	begin, end := cursor.SliceRange([]int{7, 8})
	eb, ee := cursor.Erase[int](begin), cursor.EraseEnd(end)
	assert.Equal(t, cursor.RandomAccess, cursor.TagOf(eb))
	assert.Equal(t, []any{7, 8}, collect(eb, ee))

	fwd := cursor.Erase(cursor.Synthesize[int](&countdown{n: 1}, cursor.SinglePass))
	assert.Equal(t, cursor.SinglePass, cursor.TagOf(fwd))
}

func TestLogicError(t *testing.T) {
	if !cursor.AssertionsEnabled() {
		t.Skip("assertions compiled out")
	}
	c := cursor.Slice([]int{1})
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*cursor.LogicError)
		require.True(t, ok)
		assert.Equal(t, "slice", err.Op)
		assert.Contains(t, err.Error(), "lazyseq: slice")
	}()
	c.Prev()
}

func TestMustRandom(t *testing.T) {
	f := cursor.Synthesize[int](&countdown{n: 1}, cursor.SinglePass)
	assert.Panics(t, func() { cursor.MustRandom(f) })
	assert.Panics(t, func() { cursor.Advance(f, -1) })
	_, ok := cursor.AsBidi(f)
	assert.False(t, ok)
}

func mustCursor[T any](t *testing.T, e cursor.End[T]) cursor.Cursor[T] {
	t.Helper()
	c, ok := e.Cursor()
	require.True(t, ok)
	return c
}
