package views

import (
	"iter"

	"lazyseq/cursor"
)

// Sequence is anything that can hand out a begin cursor and an end,
// such as the lists in package lists.
type Sequence[T any] interface {
	Begin() cursor.Cursor[T]
	End() cursor.End[T]
}

// View is an immutable range [begin, end). Copying a View is cheap and
// iterating it never moves the stored cursors.
type View[T any] struct {
	begin cursor.Cursor[T]
	end   cursor.End[T]
}

// New returns the view over [begin, end).
func New[T any](begin cursor.Cursor[T], end cursor.End[T]) View[T] {
	cursor.Assert(begin != nil, "view", "nil begin cursor")
	return View[T]{begin: begin, end: end}
}

// Begin returns a fresh cursor at the first element.
func (v View[T]) Begin() cursor.Cursor[T] { return v.begin.Clone() }

// End returns the end of the view.
func (v View[T]) End() cursor.End[T] { return v.end.Clone() }

// Closed reports whether the view ends at a concrete cursor.
func (v View[T]) Closed() bool { return !v.end.IsSentinel() }

// Tag reports the capability of the view.
func (v View[T]) Tag() cursor.Tag { return cursor.RangeTag(v.begin, v.end) }

// All yields every element from front to back.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := v.Begin(); !v.end.Reached(c); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Indexed yields every element with its zero-based position.
func (v View[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for c := v.Begin(); !v.end.Reached(c); c.Next() {
			if !yield(i, c.Value()) {
				return
			}
			i++
		}
	}
}

// Backward yields every element from back to front.
// The view must be closed and bidirectional.
func (v View[T]) Backward() iter.Seq[T] {
	last, ok := v.end.Cursor()
	cursor.Assert(ok, "backward", "view has no concrete end")
	c := cursor.MustBidi(last)
	return func(yield func(T) bool) {
		c := c.Clone().(cursor.Bidi[T])
		for !c.Equal(v.begin) {
			c.Prev()
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// sized returns the length when it can be computed in O(1).
func (v View[T]) sized() (int, bool) {
	last, ok := v.end.Cursor()
	if !ok {
		return 0, false
	}
	r, ok := last.(cursor.Random[T])
	if !ok {
		return 0, false
	}
	return r.Difference(v.begin), true
}

// Len returns the number of elements. It is O(1) for closed random-access
// views and walks the view otherwise; it never returns for infinite views.
func (v View[T]) Len() int {
	if n, ok := v.sized(); ok {
		return n
	}
	return cursor.Count(v.begin, v.end)
}

// Empty reports whether the view has no elements.
func (v View[T]) Empty() bool { return v.end.Reached(v.begin) }

// Front returns the first element.
func (v View[T]) Front() (T, bool) {
	if v.Empty() {
		var zero T
		return zero, false
	}
	return v.begin.Value(), true
}

// Back returns the last element. Closed bidirectional views step back from
// the end; other views are walked to the end.
func (v View[T]) Back() (T, bool) {
	if v.Empty() {
		var zero T
		return zero, false
	}
	if last, ok := v.end.Cursor(); ok {
		if b, ok := cursor.AsBidi(last); ok {
			b.Prev()
			return b.Value(), true
		}
	}
	var back T
	for c := v.Begin(); !v.end.Reached(c); c.Next() {
		back = c.Value()
	}
	return back, true
}

// At returns the element at index i.
func (v View[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 {
		return zero, false
	}
	c := v.Begin()
	if n, ok := v.sized(); ok {
		if i >= n {
			return zero, false
		}
		cursor.MustRandom(c).Jump(i)
		return c.Value(), true
	}
	if cursor.AdvanceBounded(c, i, v.end) < i || v.end.Reached(c) {
		return zero, false
	}
	return c.Value(), true
}

func (v View[T]) String() string { return Format(v) }
