package views

import "lazyseq/cursor"

type takeCore[T any] struct {
	c   cursor.Cursor[T]
	end cursor.End[T]
	i   int
	n   int
}

// Take returns at most the first n elements of v. Multi-pass inputs get a
// concrete end, so Take also bounds infinite views such as Loop.
func Take[T any](v View[T], n int) View[T] {
	cursor.Assertf(n >= 0, "take", "negative count %d", n)
	begin := &takeCore[T]{c: v.Begin(), end: v.end, n: n}
	if v.Tag() < cursor.Bidirectional {
		return unbounded[T](begin, v.Tag())
	}
	last := v.Begin()
	moved := cursor.AdvanceBounded(last, n, v.end)
	return bounded[T](begin, &takeCore[T]{c: last, end: v.end, i: moved, n: n}, cursor.TagOf(v.begin))
}

func (t *takeCore[T]) Value() T {
	cursor.Assert(!t.Done(), "take", "dereference past end")
	return t.c.Value()
}

func (t *takeCore[T]) Next() {
	cursor.Assert(!t.Done(), "take", "advance past end")
	t.c.Next()
	t.i++
}

func (t *takeCore[T]) Prev() {
	cursor.Assert(t.i > 0, "take", "retreat before begin")
	cursor.MustBidi(t.c).Prev()
	t.i--
}

func (t *takeCore[T]) Jump(n int) {
	cursor.MustRandom(t.c).Jump(n)
	t.i += n
}

func (t *takeCore[T]) Difference(other cursor.Core[T]) int {
	return t.i - peer[*takeCore[T]]("take", other).i
}

func (t *takeCore[T]) Equal(other cursor.Core[T]) bool {
	return t.i == peer[*takeCore[T]]("take", other).i
}

func (t *takeCore[T]) Done() bool { return t.i >= t.n || t.end.Reached(t.c) }

func (t *takeCore[T]) Clone() cursor.Core[T] {
	cp := *t
	cp.c = t.c.Clone()
	return &cp
}

type takeWhileCore[T any] struct {
	c     cursor.Cursor[T]
	first cursor.Cursor[T]
	end   cursor.End[T]
	pred  func(T) bool
}

// TakeWhile returns the leading elements of v satisfying pred.
func TakeWhile[T any](v View[T], pred func(T) bool) View[T] {
	tag := min(v.Tag(), cursor.Bidirectional)
	begin := &takeWhileCore[T]{c: v.Begin(), first: v.begin, end: v.end, pred: pred}
	if tag < cursor.Bidirectional {
		return unbounded[T](begin, tag)
	}
	last := &takeWhileCore[T]{c: v.Begin(), first: v.begin, end: v.end, pred: pred}
	for !last.Done() {
		last.c.Next()
	}
	return bounded[T](begin, last, tag)
}

func (t *takeWhileCore[T]) Value() T {
	cursor.Assert(!t.Done(), "take while", "dereference past end")
	return t.c.Value()
}

func (t *takeWhileCore[T]) Next() {
	cursor.Assert(!t.Done(), "take while", "advance past end")
	t.c.Next()
}

func (t *takeWhileCore[T]) Prev() {
	cursor.Assert(!t.c.Equal(t.first), "take while", "retreat before begin")
	cursor.MustBidi(t.c).Prev()
}

func (t *takeWhileCore[T]) Done() bool { return t.end.Reached(t.c) || !t.pred(t.c.Value()) }

func (t *takeWhileCore[T]) Equal(other cursor.Core[T]) bool {
	return t.c.Equal(peer[*takeWhileCore[T]]("take while", other).c)
}

func (t *takeWhileCore[T]) Clone() cursor.Core[T] {
	cp := *t
	cp.c = t.c.Clone()
	return &cp
}

// Drop skips the first n elements of v. The begin cursor is moved eagerly
// and the result keeps the capability of v.
func Drop[T any](v View[T], n int) View[T] {
	cursor.Assertf(n >= 0, "drop", "negative count %d", n)
	c := v.Begin()
	cursor.AdvanceBounded(c, n, v.end)
	return View[T]{begin: c, end: v.end}
}

// DropWhile skips the leading elements of v satisfying pred.
func DropWhile[T any](v View[T], pred func(T) bool) View[T] {
	c := v.Begin()
	for !v.end.Reached(c) && pred(c.Value()) {
		c.Next()
	}
	return View[T]{begin: c, end: v.end}
}

// Slice returns the elements with indices in [from, to).
func Slice[T any](v View[T], from, to int) View[T] {
	cursor.Assertf(from >= 0 && from <= to, "slice", "invalid bounds [%d, %d)", from, to)
	return Take(Drop(v, from), to-from)
}

// strideCore visits every step-th element. j is the input offset of c.
type strideCore[T any] struct {
	c    cursor.Cursor[T]
	end  cursor.End[T]
	j    int
	step int
}

// TakeEvery returns the elements at offset, offset+step, offset+2*step, ...
func TakeEvery[T any](v View[T], step, offset int) View[T] {
	cursor.Assertf(step > 0, "take every", "step must be positive, got %d", step)
	base := Drop(v, offset)
	begin := &strideCore[T]{c: base.Begin(), end: base.end, step: step}
	if last, ok := base.end.Cursor(); ok {
		end := &strideCore[T]{c: last, end: base.end, j: base.Len(), step: step}
		return bounded[T](begin, end, base.Tag())
	}
	return unbounded[T](begin, base.Tag())
}

func (s *strideCore[T]) ordinal() int { return (s.j + s.step - 1) / s.step }

func (s *strideCore[T]) Value() T {
	cursor.Assert(!s.Done(), "take every", "dereference past end")
	return s.c.Value()
}

func (s *strideCore[T]) Next() {
	cursor.Assert(!s.Done(), "take every", "advance past end")
	s.j += cursor.AdvanceBounded(s.c, s.step, s.end)
}

func (s *strideCore[T]) Prev() {
	cursor.Assert(s.j > 0, "take every", "retreat before begin")
	back := s.j - (s.j-1)/s.step*s.step
	cursor.Retreat(cursor.MustBidi(s.c), back)
	s.j -= back
}

func (s *strideCore[T]) Jump(n int) {
	target := (s.ordinal() + n) * s.step
	cursor.Assert(target >= 0, "take every", "jump before begin")
	if target > s.j {
		s.j += cursor.AdvanceBounded(s.c, target-s.j, s.end)
		return
	}
	cursor.Retreat(cursor.MustBidi(s.c), s.j-target)
	s.j = target
}

func (s *strideCore[T]) Difference(other cursor.Core[T]) int {
	return s.ordinal() - peer[*strideCore[T]]("take every", other).ordinal()
}

func (s *strideCore[T]) Equal(other cursor.Core[T]) bool {
	return s.c.Equal(peer[*strideCore[T]]("take every", other).c)
}

func (s *strideCore[T]) Done() bool { return s.end.Reached(s.c) }

func (s *strideCore[T]) Clone() cursor.Core[T] {
	cp := *s
	cp.c = s.c.Clone()
	return &cp
}
