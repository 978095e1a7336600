package views

import "lazyseq/cursor"

// concatCore walks the parts one after the other. k is the active part and
// c a cursor into it; k == len(parts) with a nil c is the end.
type concatCore[T any] struct {
	parts []View[T]
	offs  []int
	k     int
	c     cursor.Cursor[T]
}

// Concat chains the given views. Walking backward requires every part to be
// closed; random access additionally requires random-access parts.
func Concat[T any](parts ...View[T]) View[T] {
	tags := make([]cursor.Tag, len(parts))
	closed := true
	for i, p := range parts {
		tags[i] = cursor.ClosedTag(p.begin, p.end)
		closed = closed && p.Closed()
	}
	tag := cursor.Min(tags...)
	begin := &concatCore[T]{parts: parts}
	if tag == cursor.RandomAccess {
		begin.offs = make([]int, len(parts)+1)
		for i, p := range parts {
			begin.offs[i+1] = begin.offs[i] + p.Len()
		}
	}
	if len(parts) > 0 {
		begin.c = parts[0].Begin()
		begin.settle()
	}
	if !closed {
		return unbounded[T](begin, tag)
	}
	return bounded[T](begin, &concatCore[T]{parts: parts, offs: begin.offs, k: len(parts)}, tag)
}

// settle skips exhausted parts.
func (s *concatCore[T]) settle() {
	for s.k < len(s.parts) && s.parts[s.k].end.Reached(s.c) {
		s.k++
		s.c = nil
		if s.k < len(s.parts) {
			s.c = s.parts[s.k].Begin()
		}
	}
}

func (s *concatCore[T]) Value() T {
	cursor.Assert(!s.Done(), "concat", "dereference past end")
	return s.c.Value()
}

func (s *concatCore[T]) Next() {
	cursor.Assert(!s.Done(), "concat", "advance past end")
	s.c.Next()
	s.settle()
}

func (s *concatCore[T]) Prev() {
	if s.c != nil && !s.c.Equal(s.parts[s.k].begin) {
		cursor.MustBidi(s.c).Prev()
		return
	}
	for {
		cursor.Assert(s.k > 0, "concat", "retreat before begin")
		s.k--
		if p := s.parts[s.k]; !p.Empty() {
			s.c, _ = p.end.Cursor()
			cursor.MustBidi(s.c).Prev()
			return
		}
	}
}

func (s *concatCore[T]) index() int {
	if s.c == nil {
		return s.offs[s.k]
	}
	return s.offs[s.k] + cursor.MustRandom(s.c).Difference(s.parts[s.k].begin)
}

func (s *concatCore[T]) Jump(n int) {
	t := s.index() + n
	total := s.offs[len(s.parts)]
	cursor.Assertf(t >= 0 && t <= total, "concat", "jump to %d leaves [0, %d]", t, total)
	if t == total {
		s.k, s.c = len(s.parts), nil
		return
	}
	k := 0
	for s.offs[k+1] <= t {
		k++
	}
	s.k = k
	s.c = s.parts[k].Begin()
	cursor.MustRandom(s.c).Jump(t - s.offs[k])
}

func (s *concatCore[T]) Difference(other cursor.Core[T]) int {
	return s.index() - peer[*concatCore[T]]("concat", other).index()
}

func (s *concatCore[T]) Equal(other cursor.Core[T]) bool {
	o := peer[*concatCore[T]]("concat", other)
	if s.k != o.k {
		return false
	}
	return s.c == nil || s.c.Equal(o.c)
}

func (s *concatCore[T]) Done() bool { return s.k >= len(s.parts) }

func (s *concatCore[T]) Clone() cursor.Core[T] {
	cp := *s
	if s.c != nil {
		cp.c = s.c.Clone()
	}
	return &cp
}

// reverseCore sits one past the element it denotes, so the input end maps
// to the first element and the input begin to the end.
type reverseCore[T any] struct {
	c     cursor.Cursor[T]
	first cursor.Cursor[T]
}

// Reverse walks v from back to front. v must be closed and bidirectional.
func Reverse[T any](v View[T]) View[T] {
	last, ok := v.end.Cursor()
	cursor.Assert(ok, "reverse", "view has no concrete end")
	cursor.MustBidi(last)
	begin := &reverseCore[T]{c: last, first: v.begin}
	return bounded[T](begin, &reverseCore[T]{c: v.Begin(), first: v.begin}, v.Tag())
}

func (r *reverseCore[T]) Value() T {
	cursor.Assert(!r.Done(), "reverse", "dereference past end")
	return cursor.Prev(cursor.MustBidi(r.c)).Value()
}

func (r *reverseCore[T]) Next() {
	cursor.Assert(!r.Done(), "reverse", "advance past end")
	cursor.MustBidi(r.c).Prev()
}

func (r *reverseCore[T]) Prev() { r.c.Next() }

func (r *reverseCore[T]) Jump(n int) { cursor.MustRandom(r.c).Jump(-n) }

func (r *reverseCore[T]) Difference(other cursor.Core[T]) int {
	return cursor.MustRandom(peer[*reverseCore[T]]("reverse", other).c).Difference(r.c)
}

func (r *reverseCore[T]) Equal(other cursor.Core[T]) bool {
	return r.c.Equal(peer[*reverseCore[T]]("reverse", other).c)
}

func (r *reverseCore[T]) Done() bool { return r.c.Equal(r.first) }

func (r *reverseCore[T]) Clone() cursor.Core[T] {
	return &reverseCore[T]{c: r.c.Clone(), first: r.first}
}
