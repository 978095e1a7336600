package views

import (
	"strings"

	"lazyseq/cursor"
)

// chunkIfCore holds the segment [c, sub). sub rests on a delimiter or on the
// end of the input. pending marks the empty segment after a trailing delimiter.
type chunkIfCore[T any] struct {
	c, sub  cursor.Cursor[T]
	end     cursor.End[T]
	delim   func(T) bool
	pending bool
}

// ChunkIf splits v at every element satisfying delim. Delimiters are
// dropped; n delimiters in a non-empty view yield n+1 chunks, so a trailing
// delimiter produces one trailing empty chunk. The result is single-pass.
func ChunkIf[T any](v View[T], delim func(T) bool) View[View[T]] {
	begin := &chunkIfCore[T]{c: v.Begin(), end: v.end, delim: delim}
	begin.seek()
	if last, ok := v.end.Cursor(); ok {
		end := &chunkIfCore[T]{c: last, sub: last.Clone(), end: v.end, delim: delim}
		return bounded[View[T]](begin, end, cursor.SinglePass)
	}
	return unbounded[View[T]](begin, cursor.SinglePass)
}

func (k *chunkIfCore[T]) seek() {
	k.sub = k.c.Clone()
	for !k.end.Reached(k.sub) && !k.delim(k.sub.Value()) {
		k.sub.Next()
	}
}

func (k *chunkIfCore[T]) Value() View[T] {
	cursor.Assert(!k.Done(), "chunk if", "dereference past end")
	return View[T]{begin: k.c.Clone(), end: cursor.At(k.sub.Clone())}
}

func (k *chunkIfCore[T]) Next() {
	cursor.Assert(!k.Done(), "chunk if", "advance past end")
	if k.end.Reached(k.sub) {
		k.c = k.sub.Clone()
		k.pending = false
		return
	}
	k.c = k.sub.Clone()
	k.c.Next()
	if k.end.Reached(k.c) {
		k.sub = k.c.Clone()
		k.pending = true
		return
	}
	k.seek()
}

func (k *chunkIfCore[T]) Done() bool { return k.end.Reached(k.c) && !k.pending }

func (k *chunkIfCore[T]) Equal(other cursor.Core[View[T]]) bool {
	o := peer[*chunkIfCore[T]]("chunk if", other)
	return k.pending == o.pending && k.c.Equal(o.c)
}

func (k *chunkIfCore[T]) Clone() cursor.Core[View[T]] {
	cp := *k
	cp.c, cp.sub = k.c.Clone(), k.sub.Clone()
	return &cp
}

// splitCore holds the segment [c, sub); after is the position following the
// delimiter at sub.
type splitCore[T comparable] struct {
	c, sub, after cursor.Cursor[T]
	end           cursor.End[T]
	delim         []T
}

// Split cuts v at every occurrence of the delimiter sequence. Empty segments
// between adjacent delimiters are kept, but a trailing delimiter does not
// produce a trailing empty segment. The result is single-pass.
func Split[T comparable](v View[T], delim ...T) View[View[T]] {
	cursor.Assert(len(delim) > 0, "split", "empty delimiter")
	begin := &splitCore[T]{c: v.Begin(), end: v.end, delim: delim}
	begin.seek()
	if last, ok := v.end.Cursor(); ok {
		end := &splitCore[T]{c: last, sub: last.Clone(), after: last.Clone(), end: v.end, delim: delim}
		return bounded[View[T]](begin, end, cursor.SinglePass)
	}
	return unbounded[View[T]](begin, cursor.SinglePass)
}

// splitStringCore holds the segment s[start:stop]; stop is the offset of the
// next delimiter or len(s).
type splitStringCore struct {
	s, delim    string
	start, stop int
}

// SplitString splits s at every occurrence of delim with Split semantics.
// Segments are substrings of s; nothing is copied.
func SplitString(s, delim string) View[string] {
	cursor.Assert(delim != "", "split", "empty delimiter")
	begin := &splitStringCore{s: s, delim: delim}
	begin.seek()
	end := &splitStringCore{s: s, delim: delim, start: len(s), stop: len(s)}
	return bounded[string](begin, end, cursor.SinglePass)
}

func (k *splitStringCore) seek() {
	if i := strings.Index(k.s[k.start:], k.delim); i >= 0 {
		k.stop = k.start + i
		return
	}
	k.stop = len(k.s)
}

func (k *splitStringCore) Value() string {
	cursor.Assert(!k.Done(), "split", "dereference past end")
	return k.s[k.start:k.stop]
}

func (k *splitStringCore) Next() {
	cursor.Assert(!k.Done(), "split", "advance past end")
	if k.stop == len(k.s) {
		k.start = len(k.s)
		return
	}
	k.start = k.stop + len(k.delim)
	if k.start < len(k.s) {
		k.seek()
	}
}

func (k *splitStringCore) Done() bool { return k.start >= len(k.s) }

func (k *splitStringCore) Equal(other cursor.Core[string]) bool {
	return k.start == peer[*splitStringCore]("split", other).start
}

func (k *splitStringCore) Clone() cursor.Core[string] {
	cp := *k
	return &cp
}

// match reports whether the delimiter starts at p and, if so, returns the
// position after it.
func (s *splitCore[T]) match(p cursor.Cursor[T]) (cursor.Cursor[T], bool) {
	q := p.Clone()
	for _, d := range s.delim {
		if s.end.Reached(q) || q.Value() != d {
			return nil, false
		}
		q.Next()
	}
	return q, true
}

func (s *splitCore[T]) seek() {
	s.sub = s.c.Clone()
	for !s.end.Reached(s.sub) {
		if after, ok := s.match(s.sub); ok {
			s.after = after
			return
		}
		s.sub.Next()
	}
	s.after = s.sub.Clone()
}

func (s *splitCore[T]) Value() View[T] {
	cursor.Assert(!s.Done(), "split", "dereference past end")
	return View[T]{begin: s.c.Clone(), end: cursor.At(s.sub.Clone())}
}

func (s *splitCore[T]) Next() {
	cursor.Assert(!s.Done(), "split", "advance past end")
	s.c = s.after.Clone()
	if s.end.Reached(s.c) {
		s.sub, s.after = s.c.Clone(), s.c.Clone()
		return
	}
	s.seek()
}

func (s *splitCore[T]) Done() bool { return s.end.Reached(s.c) }

func (s *splitCore[T]) Equal(other cursor.Core[View[T]]) bool {
	return s.c.Equal(peer[*splitCore[T]]("split", other).c)
}

func (s *splitCore[T]) Clone() cursor.Core[View[T]] {
	cp := *s
	cp.c, cp.sub, cp.after = s.c.Clone(), s.sub.Clone(), s.after.Clone()
	return &cp
}
