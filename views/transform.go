package views

import (
	"log/slog"

	"lazyseq/cursor"
)

type mapCore[T, U any] struct {
	c   cursor.Cursor[T]
	end cursor.End[T]
	fn  func(T) U
}

// Map returns a view applying fn to every element of v.
// fn runs on every dereference; its results are not cached.
func Map[T, U any](v View[T], fn func(T) U) View[U] {
	begin := &mapCore[T, U]{c: v.Begin(), end: v.end, fn: fn}
	if last, ok := v.end.Cursor(); ok {
		return bounded[U](begin, &mapCore[T, U]{c: last, end: v.end, fn: fn}, v.Tag())
	}
	return unbounded[U](begin, v.Tag())
}

func (m *mapCore[T, U]) Value() U { return m.fn(m.c.Value()) }
func (m *mapCore[T, U]) Next() { m.c.Next() }
func (m *mapCore[T, U]) Prev() { cursor.MustBidi(m.c).Prev() }
func (m *mapCore[T, U]) Jump(n int) { cursor.MustRandom(m.c).Jump(n) }
func (m *mapCore[T, U]) Done() bool { return m.end.Reached(m.c) }

func (m *mapCore[T, U]) Difference(other cursor.Core[U]) int {
	return cursor.MustRandom(m.c).Difference(peer[*mapCore[T, U]]("map", other).c)
}

func (m *mapCore[T, U]) Equal(other cursor.Core[U]) bool {
	return m.c.Equal(peer[*mapCore[T, U]]("map", other).c)
}

func (m *mapCore[T, U]) Clone() cursor.Core[U] {
	return &mapCore[T, U]{c: m.c.Clone(), end: m.end, fn: m.fn}
}

type enumCore[T any] struct {
	c   cursor.Cursor[T]
	end cursor.End[T]
	i   int
}

// Enumerate pairs every element of v with its index, counting from start.
func Enumerate[T any](v View[T], start int) View[Indexed[T]] {
	begin := &enumCore[T]{c: v.Begin(), end: v.end, i: start}
	if last, ok := v.end.Cursor(); ok {
		end := &enumCore[T]{c: last, end: v.end, i: start + v.Len()}
		return bounded[Indexed[T]](begin, end, v.Tag())
	}
	return unbounded[Indexed[T]](begin, v.Tag())
}

func (e *enumCore[T]) Value() Indexed[T] { return Indexed[T]{Index: e.i, Value: e.c.Value()} }
func (e *enumCore[T]) Done() bool { return e.end.Reached(e.c) }

func (e *enumCore[T]) Next() {
	e.c.Next()
	e.i++
}

func (e *enumCore[T]) Prev() {
	cursor.MustBidi(e.c).Prev()
	e.i--
}

func (e *enumCore[T]) Jump(n int) {
	cursor.MustRandom(e.c).Jump(n)
	e.i += n
}

func (e *enumCore[T]) Difference(other cursor.Core[Indexed[T]]) int {
	return e.i - peer[*enumCore[T]]("enumerate", other).i
}

func (e *enumCore[T]) Equal(other cursor.Core[Indexed[T]]) bool {
	return e.c.Equal(peer[*enumCore[T]]("enumerate", other).c)
}

func (e *enumCore[T]) Clone() cursor.Core[Indexed[T]] {
	return &enumCore[T]{c: e.c.Clone(), end: e.end, i: e.i}
}

// tapCore reports an element when a forward step leaves it or a backward
// step arrives at it. Value has no side effects.
type tapCore[T any] struct {
	c   cursor.Cursor[T]
	end cursor.End[T]
	fn  func(int, T)
	i   int
}

// Tap calls fn for every element a traversal of the result moves past.
// Forward traversals report an element as they step off it, backward ones
// as they step onto it. Jumps report nothing.
func Tap[T any](v View[T], fn func(T)) View[T] {
	return tap(v, func(_ int, x T) { fn(x) })
}

// Trace logs every visited element at debug level with its index.
// A nil logger means slog.Default().
func Trace[T any](v View[T], logger *slog.Logger, msg string) View[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return tap(v, func(i int, x T) {
		logger.Debug(msg, slog.Int("index", i), slog.Any("value", x))
	})
}

func tap[T any](v View[T], fn func(int, T)) View[T] {
	begin := &tapCore[T]{c: v.Begin(), end: v.end, fn: fn}
	if last, ok := v.end.Cursor(); ok {
		end := &tapCore[T]{c: last, end: v.end, fn: fn, i: v.Len()}
		return bounded[T](begin, end, v.Tag())
	}
	return unbounded[T](begin, v.Tag())
}

func (t *tapCore[T]) Value() T { return t.c.Value() }

func (t *tapCore[T]) Next() {
	cursor.Assert(!t.end.Reached(t.c), "tap", "advance past end")
	t.fn(t.i, t.c.Value())
	t.c.Next()
	t.i++
}

func (t *tapCore[T]) Prev() {
	cursor.MustBidi(t.c).Prev()
	t.i--
	t.fn(t.i, t.c.Value())
}

func (t *tapCore[T]) Jump(n int) {
	cursor.MustRandom(t.c).Jump(n)
	t.i += n
}

func (t *tapCore[T]) Done() bool { return t.end.Reached(t.c) }

func (t *tapCore[T]) Difference(other cursor.Core[T]) int {
	return cursor.MustRandom(t.c).Difference(peer[*tapCore[T]]("tap", other).c)
}

func (t *tapCore[T]) Equal(other cursor.Core[T]) bool {
	return t.c.Equal(peer[*tapCore[T]]("tap", other).c)
}

func (t *tapCore[T]) Clone() cursor.Core[T] {
	cp := *t
	cp.c = t.c.Clone()
	return &cp
}
