package seqs

import (
	"iter"
	"runtime"

	"lazyseq/cursor"
)

// source owns the pull side of an iter.Seq. Cells are appended on demand,
// each one holding a single pulled value.
type source[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

type cell[T any] struct {
	val   T
	index int
	last  bool
	next  *cell[T]
	src   *source[T]
}

func (s *source[T]) read(index int) *cell[T] {
	if !s.done {
		if v, ok := s.next(); ok {
			return &cell[T]{val: v, index: index, src: s}
		}
		s.done = true
		s.stop()
	}
	return &cell[T]{index: index, last: true, src: s}
}

func (c *cell[T]) advance() *cell[T] {
	if c.next == nil {
		c.next = c.src.read(c.index + 1)
	}
	return c.next
}

type streamCore[T any] struct {
	at *cell[T]
}

// Cursor returns a single-pass cursor over seq.
//
// Pulled values are kept in a chain of cells shared by all clones of the
// cursor, so a clone replays exactly the values its original saw and
// advancing one never affects another. Cells nobody references any more are
// garbage collected. The first value is pulled immediately.
//
// When the cursor is dropped before seq is exhausted the underlying pull
// iterator is stopped by a runtime cleanup.
func Cursor[T any](seq iter.Seq[T]) cursor.Cursor[T] {
	next, stop := iter.Pull(seq)
	src := &source[T]{next: next, stop: stop}
	runtime.AddCleanup(src, func(stop func()) { stop() }, stop)
	return cursor.Synthesize[T](&streamCore[T]{at: src.read(0)}, cursor.SinglePass)
}

func (s *streamCore[T]) Value() T {
	cursor.Assert(!s.at.last, "stream", "dereference past end")
	return s.at.val
}

func (s *streamCore[T]) Next() {
	cursor.Assert(!s.at.last, "stream", "advance past end")
	s.at = s.at.advance()
}

func (s *streamCore[T]) Done() bool { return s.at.last }

func (s *streamCore[T]) Equal(other cursor.Core[T]) bool {
	return s.at.index == other.(*streamCore[T]).at.index
}

func (s *streamCore[T]) Clone() cursor.Core[T] {
	return &streamCore[T]{at: s.at}
}
