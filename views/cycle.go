package views

import "lazyseq/cursor"

type rotateCore[T any] struct {
	c     cursor.Cursor[T]
	first cursor.Cursor[T]
	end   cursor.End[T]
	i     int
	n     int
	shift int
}

// Rotate returns v starting at element n mod Len(v) and wrapping around
// once. Negative n rotates to the right. v must be finite.
func Rotate[T any](v View[T], n int) View[T] {
	l := v.Len()
	if l == 0 {
		return v
	}
	shift := (n%l + l) % l
	tag := cursor.ClosedTag(v.begin, v.end)
	begin := &rotateCore[T]{c: v.Begin(), first: v.begin, end: v.end, n: l, shift: shift}
	cursor.Advance(begin.c, shift)
	end := begin.Clone().(*rotateCore[T])
	end.i = l
	return bounded[T](begin, end, tag)
}

func (r *rotateCore[T]) Value() T {
	cursor.Assert(r.i < r.n, "rotate", "dereference past end")
	return r.c.Value()
}

func (r *rotateCore[T]) Next() {
	cursor.Assert(r.i < r.n, "rotate", "advance past end")
	r.i++
	r.c.Next()
	if r.end.Reached(r.c) {
		r.c = r.first.Clone()
	}
}

func (r *rotateCore[T]) Prev() {
	cursor.Assert(r.i > 0, "rotate", "retreat before begin")
	if r.c.Equal(r.first) {
		last, ok := r.end.Cursor()
		cursor.Assert(ok, "rotate", "input has no concrete end")
		r.c = last
	}
	cursor.MustBidi(r.c).Prev()
	r.i--
}

func (r *rotateCore[T]) Jump(n int) {
	t := r.i + n
	cursor.Assertf(t >= 0 && t <= r.n, "rotate", "jump to %d leaves [0, %d]", t, r.n)
	r.c = r.first.Clone()
	cursor.MustRandom(r.c).Jump((r.shift + t) % r.n)
	r.i = t
}

func (r *rotateCore[T]) Difference(other cursor.Core[T]) int {
	return r.i - peer[*rotateCore[T]]("rotate", other).i
}

func (r *rotateCore[T]) Equal(other cursor.Core[T]) bool {
	return r.i == peer[*rotateCore[T]]("rotate", other).i
}

func (r *rotateCore[T]) Done() bool { return r.i >= r.n }

func (r *rotateCore[T]) Clone() cursor.Core[T] {
	cp := *r
	cp.c = r.c.Clone()
	return &cp
}

// loopCore repeats its input. laps < 0 repeats forever; n is the input
// length and is only known for a bounded number of laps.
type loopCore[T any] struct {
	c     cursor.Cursor[T]
	first cursor.Cursor[T]
	end   cursor.End[T]
	lap   int
	laps  int
	i     int
	n     int
	empty bool
}

// Loop repeats v forever. The result has no end unless v is empty.
func Loop[T any](v View[T]) View[T] {
	tag := min(cursor.ClosedTag(v.begin, v.end), cursor.Bidirectional)
	return unbounded[T](&loopCore[T]{c: v.Begin(), first: v.begin, end: v.end, laps: -1, empty: v.Empty()}, tag)
}

// LoopN repeats v count times. v must be finite.
func LoopN[T any](v View[T], count int) View[T] {
	cursor.Assertf(count >= 0, "loop", "negative count %d", count)
	n := v.Len()
	if n == 0 || count == 0 {
		return Empty[T]()
	}
	tag := cursor.ClosedTag(v.begin, v.end)
	begin := &loopCore[T]{c: v.Begin(), first: v.begin, end: v.end, laps: count, n: n}
	end := &loopCore[T]{c: v.Begin(), first: v.begin, end: v.end, lap: count, laps: count, i: n * count, n: n}
	return bounded[T](begin, end, tag)
}

func (l *loopCore[T]) Value() T {
	cursor.Assert(!l.Done(), "loop", "dereference past end")
	return l.c.Value()
}

func (l *loopCore[T]) Next() {
	cursor.Assert(!l.Done(), "loop", "advance past end")
	l.c.Next()
	l.i++
	if l.end.Reached(l.c) {
		l.c = l.first.Clone()
		l.lap++
	}
}

func (l *loopCore[T]) Prev() {
	if l.c.Equal(l.first) {
		cursor.Assert(l.lap > 0, "loop", "retreat before begin")
		last, ok := l.end.Cursor()
		cursor.Assert(ok, "loop", "input has no concrete end")
		l.c = last
		l.lap--
	}
	cursor.MustBidi(l.c).Prev()
	l.i--
}

func (l *loopCore[T]) Jump(n int) {
	t := l.i + n
	cursor.Assertf(t >= 0 && t <= l.n*l.laps, "loop", "jump to %d leaves [0, %d]", t, l.n*l.laps)
	l.lap = t / l.n
	l.c = l.first.Clone()
	cursor.MustRandom(l.c).Jump(t % l.n)
	l.i = t
}

func (l *loopCore[T]) Difference(other cursor.Core[T]) int {
	return l.i - peer[*loopCore[T]]("loop", other).i
}

func (l *loopCore[T]) Equal(other cursor.Core[T]) bool {
	o := peer[*loopCore[T]]("loop", other)
	return l.lap == o.lap && l.c.Equal(o.c)
}

func (l *loopCore[T]) Done() bool { return l.empty || (l.laps >= 0 && l.lap >= l.laps) }

func (l *loopCore[T]) Clone() cursor.Core[T] {
	cp := *l
	cp.c = l.c.Clone()
	return &cp
}
