package views_test

import (
	"bytes"
	"iter"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyseq/cursor"
	"lazyseq/lists"
	"lazyseq/views"
)

func TestView_Shape(t *testing.T) {
	v := views.Of(1, 2, 3, 4)

	assert.Equal(t, cursor.RandomAccess, v.Tag())
	assert.True(t, v.Closed())
	assert.Equal(t, 4, v.Len())
	assert.False(t, v.Empty())
	assert.Equal(t, []int{4, 3, 2, 1}, backward(v))

	x, ok := v.At(2)
	assert.True(t, ok)
	assert.Equal(t, 3, x)
	_, ok = v.At(4)
	assert.False(t, ok)

	front, _ := v.Front()
	back, _ := v.Back()
	assert.Equal(t, 1, front)
	assert.Equal(t, 4, back)
	assert.Equal(t, "[1, 2, 3, 4]", v.String())

	for i, x := range v.Indexed() {
		assert.Equal(t, i+1, x)
	}
}

func TestView_EmptyShape(t *testing.T) {
	v := views.Empty[string]()
	assert.True(t, v.Empty())
	assert.Equal(t, 0, v.Len())
	_, ok := v.Front()
	assert.False(t, ok)
	_, ok = v.Back()
	assert.False(t, ok)
	assert.Equal(t, "[]", v.String())
}

func TestView_SinglePassSource(t *testing.T) {
	v := views.FromSeq(slices.Values([]string{"a", "b", "c"}))

	assert.Equal(t, cursor.SinglePass, v.Tag())
	assert.False(t, v.Closed())
	assert.Equal(t, 3, v.Len())

	x, ok := v.At(1)
	require.True(t, ok)
	assert.Equal(t, "b", x)
	back, _ := v.Back()
	assert.Equal(t, "c", back)

	// every traversal starts from a clone of the stored begin cursor
	assert.Equal(t, views.ToSlice(v), views.ToSlice(v))
}

func TestView_Idempotent(t *testing.T) {
	calls := 0
	odd := func(x int) bool { return x%2 == 1 }
	v := views.Map(views.Filter(views.Range(0, 10, 1), odd), func(x int) int {
		calls++
		return x * x
	})

	first := views.ToSlice(v)
	assert.Equal(t, []int{1, 9, 25, 49, 81}, first)
	assert.Equal(t, first, views.ToSlice(v))
	assert.Equal(t, 10, calls)

	c := v.Begin()
	d := c.Clone()
	d.Next()
	d.Next()
	assert.Equal(t, 1, c.Value())
	assert.Equal(t, 25, d.Value())
}

func TestGenerators(t *testing.T) {
	checkSlice(t, []int{0, 3, 6, 9}, views.Range(0, 10, 3))
	checkSlice(t, []int{5, 3, 1}, views.Range(5, 0, -2))
	checkSlice(t, []float64{0, 0.25, 0.5, 0.75}, views.Range(0.0, 1.0, 0.25))
	checkSlice(t, []string{"x", "x"}, views.Repeat("x", 2))
	checkSlice(t, []int{0, 1, 4, 9}, views.Generate(func(i int) int { return i * i }, 4))
	assert.True(t, views.Range(3, 3, 1).Empty())

	r := views.Random(10, 20, 50)
	assert.Equal(t, 50, r.Len())
	assert.True(t, views.Every(r, func(x int) bool { return x >= 10 && x < 20 }))
	assert.Equal(t, views.ToSlice(r), views.ToSlice(r))
}

func TestFrom_Lists(t *testing.T) {
	al := lists.NewArrayList[int](3)
	al.Add(1, 2, 3)
	av := views.From[int](al)
	assert.Equal(t, cursor.RandomAccess, av.Tag())
	assert.Equal(t, 6, views.Sum(av))

	ll := lists.NewLinkedList[string]()
	ll.Add("x", "y", "z")
	lv := views.From[string](ll)
	assert.Equal(t, cursor.Bidirectional, lv.Tag())
	assert.Equal(t, []string{"z", "y", "x"}, backward(lv))
	assert.Equal(t, 3, lv.Len())
}

func TestMaterialize(t *testing.T) {
	v := views.Of(3, 1, 2)

	al := views.ToArrayList(v)
	assert.Equal(t, []int{3, 1, 2}, al.ToSlice())
	assert.GreaterOrEqual(t, al.Cap(), 3)

	ll := views.ToLinkedList(v)
	assert.Equal(t, 3, ll.Size())
	assert.Equal(t, "[3 1 2]", ll.String())

	words := views.Of("apple", "avocado", "banana")
	m := views.ToMap(words, func(s string) string { return s }, func(s string) int { return len(s) })
	assert.Equal(t, map[string]int{"apple": 5, "avocado": 7, "banana": 6}, m)

	g := views.GroupToMap(words, func(s string) byte { return s[0] })
	assert.Equal(t, map[byte][]string{'a': {"apple", "avocado"}, 'b': {"banana"}}, g)

	dst := views.Into(views.Of(4, 5), lists.NewLinkedList[int]())
	assert.Equal(t, []int{4, 5}, dst.ToSlice())
}

func TestFormat(t *testing.T) {
	v := views.Of(1, 2)
	got := views.Format(v, views.WithSeparator("; "), views.WithPattern("<%d>"), views.WithBrackets("{", "}"))
	assert.Equal(t, "{<1>; <2>}", got)
	assert.Equal(t, "[[1, 2], [3]]", views.Chunks(views.Of(1, 2, 3), 2).String())
}

func TestReducers(t *testing.T) {
	v := views.Of(4, 1, 3, 2)

	assert.Equal(t, 10, views.Sum(v))
	mean, ok := views.Mean(v)
	assert.True(t, ok)
	assert.InDelta(t, 2.5, mean, 1e-9)
	lo, _ := views.Min(v)
	hi, _ := views.Max(v)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 4, hi)

	assert.Equal(t, 4, views.Count(v))
	assert.Equal(t, 2, views.CountFunc(v, func(x int) bool { return x%2 == 0 }))
	assert.True(t, views.Any(v, func(x int) bool { return x > 3 }))
	assert.False(t, views.Every(v, func(x int) bool { return x > 1 }))
	assert.True(t, views.Contains(v, 3))

	x, ok := views.Find(v, func(x int) bool { return x < 3 })
	assert.True(t, ok)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, views.IndexOf(v, func(x int) bool { return x == 3 }))
	assert.Equal(t, -1, views.IndexOf(v, func(x int) bool { return x == 9 }))

	assert.Equal(t, "4132", views.Reduce(v, "", func(acc string, x int) string {
		return acc + string(rune('0'+x))
	}))
	assert.True(t, views.EqualViews(v, views.Of(4, 1, 3, 2)))
	assert.False(t, views.EqualViews(v, views.Of(4, 1, 3)))

	first, _ := views.First(v)
	last, _ := views.Last(v)
	assert.Equal(t, 4, first)
	assert.Equal(t, 2, last)

	var seen []int
	views.ForEach(v, func(x int) { seen = append(seen, x) })
	assert.Equal(t, []int{4, 1, 3, 2}, seen)

	_, ok = views.Mean(views.Empty[float64]())
	assert.False(t, ok)
}

func TestTap(t *testing.T) {
	var seen []int
	v := views.Tap(views.Of(1, 2, 3), func(x int) { seen = append(seen, x) })

	views.ToSlice(v)
	views.ToSlice(v)
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, seen)

	seen = nil
	c := v.Begin()
	c.Value()
	c.Value()
	assert.Empty(t, seen, "Value has no side effects")
	c.Next()
	c.Next()
	assert.Equal(t, []int{1, 2}, seen)

	seen = nil
	assert.Equal(t, []int{3, 2, 1}, backward(v))
	assert.Equal(t, []int{3, 2, 1}, seen)
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	got := views.ToSlice(views.Trace(views.Of("a", "b"), logger, "visit"))
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Contains(t, buf.String(), "msg=visit index=0 value=a")
	assert.Contains(t, buf.String(), "index=1 value=b")
}

func TestCapabilityPropagation(t *testing.T) {
	slice := views.Of(1, 2, 3)
	stream := views.FromSeq(iter.Seq[int](slices.Values([]int{1, 2, 3})))
	even := func(x int) bool { return x%2 == 0 }

	tests := []struct {
		name string
		tag  cursor.Tag
		want cursor.Tag
	}{
		{"map over slice", views.Map(slice, even).Tag(), cursor.RandomAccess},
		{"filter", views.Filter(slice, even).Tag(), cursor.Bidirectional},
		{"map over stream", views.Map(stream, even).Tag(), cursor.SinglePass},
		{"chunk if", views.ChunkIf(slice, even).Tag(), cursor.SinglePass},
		{"zip with filter", views.Zip(slice, views.Filter(slice, even)).Tag(), cursor.Bidirectional},
		{"product", views.Product(slice, slice).Tag(), cursor.RandomAccess},
		{"loop", views.Loop(slice).Tag(), cursor.Bidirectional},
		{"scan", views.InclusiveScan(slice, 0, func(a, b int) int { return a + b }).Tag(), cursor.SinglePass},
		{"concat with stream", views.Concat(slice, stream).Tag(), cursor.SinglePass},
		{"flat map over slices", views.FlatMap(slice, func(x int) views.View[int] { return views.Of(x, x) }).Tag(), cursor.Bidirectional},
		{"flat map over streams", views.FlatMap(slice, func(x int) views.View[int] { return views.FromSeq(slices.Values([]int{x, x})) }).Tag(), cursor.SinglePass},
		{"flatten of empties", views.FlattenSlices(views.Of([]int{}, []int{})).Tag(), cursor.SinglePass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tag)
		})
	}

	_, ok := cursor.AsBidi(views.ChunkIf(slice, even).Begin())
	assert.False(t, ok, "a single-pass adaptor must not expose Prev")
}
