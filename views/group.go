package views

import "lazyseq/cursor"

type groupCore[T, K any] struct {
	c, sub cursor.Cursor[T]
	first  cursor.Cursor[T]
	end    cursor.End[T]
	key    func(T) K
	eq     func(a, b K) bool
}

// GroupBy groups consecutive elements with equal keys. The input is not
// sorted, so equal keys that are not adjacent form separate groups.
func GroupBy[T any, K comparable](v View[T], key func(T) K) View[Group[K, T]] {
	return GroupByFunc(v, key, func(a, b K) bool { return a == b })
}

// GroupByFunc is GroupBy with a custom key equality.
func GroupByFunc[T, K any](v View[T], key func(T) K, eq func(a, b K) bool) View[Group[K, T]] {
	tag := min(v.Tag(), cursor.Bidirectional)
	begin := &groupCore[T, K]{c: v.Begin(), first: v.begin, end: v.end, key: key, eq: eq}
	begin.measure()
	if last, ok := v.end.Cursor(); ok {
		end := &groupCore[T, K]{c: last, sub: last.Clone(), first: v.begin, end: v.end, key: key, eq: eq}
		return bounded[Group[K, T]](begin, end, tag)
	}
	return unbounded[Group[K, T]](begin, tag)
}

func (g *groupCore[T, K]) measure() {
	g.sub = g.c.Clone()
	if g.end.Reached(g.sub) {
		return
	}
	k := g.key(g.sub.Value())
	g.sub.Next()
	for !g.end.Reached(g.sub) && g.eq(g.key(g.sub.Value()), k) {
		g.sub.Next()
	}
}

func (g *groupCore[T, K]) Value() Group[K, T] {
	cursor.Assert(!g.Done(), "group by", "dereference past end")
	return Group[K, T]{
		Key:    g.key(g.c.Value()),
		Values: View[T]{begin: g.c.Clone(), end: cursor.At(g.sub.Clone())},
	}
}

func (g *groupCore[T, K]) Next() {
	cursor.Assert(!g.Done(), "group by", "advance past end")
	g.c = g.sub
	g.measure()
}

func (g *groupCore[T, K]) Prev() {
	b := cursor.MustBidi(g.c)
	cursor.Assert(!b.Equal(g.first), "group by", "retreat before begin")
	g.sub = b.Clone()
	b.Prev()
	k := g.key(b.Value())
	for !b.Equal(g.first) {
		p := cursor.Prev(b)
		if !g.eq(g.key(p.Value()), k) {
			break
		}
		b.Prev()
	}
}

func (g *groupCore[T, K]) Done() bool { return g.end.Reached(g.c) }

func (g *groupCore[T, K]) Equal(other cursor.Core[Group[K, T]]) bool {
	return g.c.Equal(peer[*groupCore[T, K]]("group by", other).c)
}

func (g *groupCore[T, K]) Clone() cursor.Core[Group[K, T]] {
	cp := *g
	cp.c, cp.sub = g.c.Clone(), g.sub.Clone()
	return &cp
}
