package views

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"

	"lazyseq/cursor"
)

// joinCore alternates elements and separators. With idx the input offset of
// c, the flat position is 2*idx-1 on a separator and 2*idx on an element;
// the end of a non-empty input is the separator slot after the last element.
type joinCore[T any] struct {
	c       cursor.Cursor[T]
	end     cursor.End[T]
	idx     int
	sep     bool
	text    string
	pattern string
}

// Join renders the elements of v with fmt's %v, separated by sep. A view
// of n elements yields 2n-1 strings.
func Join[T any](v View[T], sep string) View[string] {
	return JoinFormat(v, sep, "%v")
}

// JoinFormat is Join rendering every element with pattern.
func JoinFormat[T any](v View[T], sep, pattern string) View[string] {
	begin := &joinCore[T]{c: v.Begin(), end: v.end, text: sep, pattern: pattern}
	if last, ok := v.end.Cursor(); ok {
		n := v.Len()
		end := &joinCore[T]{c: last, end: v.end, idx: n, sep: n > 0, text: sep, pattern: pattern}
		return bounded[string](begin, end, v.Tag())
	}
	return unbounded[string](begin, v.Tag())
}

func (j *joinCore[T]) pos() int {
	if j.sep {
		return 2*j.idx - 1
	}
	return 2 * j.idx
}

func (j *joinCore[T]) Value() string {
	cursor.Assert(!j.Done(), "join", "dereference past end")
	if j.sep {
		return j.text
	}
	return fmt.Sprintf(j.pattern, j.c.Value())
}

func (j *joinCore[T]) Next() {
	cursor.Assert(!j.Done(), "join", "advance past end")
	if j.sep {
		j.sep = false
		return
	}
	j.c.Next()
	j.idx++
	j.sep = true
}

func (j *joinCore[T]) Prev() {
	if !j.sep {
		cursor.Assert(j.idx > 0, "join", "retreat before begin")
		j.sep = true
		return
	}
	cursor.MustBidi(j.c).Prev()
	j.idx--
	j.sep = false
}

func (j *joinCore[T]) Jump(n int) {
	p := j.pos() + n
	cursor.Assert(p >= 0, "join", "jump before begin")
	idx := (p + 1) / 2
	cursor.MustRandom(j.c).Jump(idx - j.idx)
	j.idx, j.sep = idx, p%2 == 1
}

func (j *joinCore[T]) Difference(other cursor.Core[string]) int {
	return j.pos() - peer[*joinCore[T]]("join", other).pos()
}

// Done is reached on the end of the input, which on a non-empty input is the
// separator slot after the last element.
func (j *joinCore[T]) Done() bool { return j.end.Reached(j.c) }

func (j *joinCore[T]) Equal(other cursor.Core[string]) bool {
	o := peer[*joinCore[T]]("join", other)
	return j.sep == o.sep && j.c.Equal(o.c)
}

func (j *joinCore[T]) Clone() cursor.Core[string] {
	cp := *j
	cp.c = j.c.Clone()
	return &cp
}

// mergeCore is a sorted merge join. mark is the first element of the run of
// b matching the current key, so the run can be replayed for the next
// element of a with the same key.
type mergeCore[A, B, K, R any] struct {
	a      cursor.Cursor[A]
	b      cursor.Cursor[B]
	endA   cursor.End[A]
	endB   cursor.End[B]
	mark   cursor.Cursor[B]
	markK  K
	keyA   func(A) K
	keyB   func(B) K
	cmp    func(x, y K) int
	result func(A, B) R
	done   bool
}

// JoinWhere is an inner join of two views sorted by key. Every pair of
// elements with equal keys yields result(a, b), ordered by a then b.
// The result is single-pass.
func JoinWhere[A, B any, K constraints.Ordered, R any](a View[A], b View[B], keyA func(A) K, keyB func(B) K, result func(A, B) R) View[R] {
	m := &mergeCore[A, B, K, R]{
		a: a.Begin(), b: b.Begin(), endA: a.end, endB: b.end,
		keyA: keyA, keyB: keyB, cmp: cmp.Compare[K], result: result,
	}
	m.seek()
	return unbounded[R](m, cursor.SinglePass)
}

func (m *mergeCore[A, B, K, R]) seek() {
	for !m.endA.Reached(m.a) && !m.endB.Reached(m.b) {
		ka, kb := m.keyA(m.a.Value()), m.keyB(m.b.Value())
		switch c := m.cmp(ka, kb); {
		case c < 0:
			m.a.Next()
		case c > 0:
			m.b.Next()
		default:
			m.mark, m.markK = m.b.Clone(), ka
			return
		}
	}
	m.done = true
}

func (m *mergeCore[A, B, K, R]) Value() R {
	cursor.Assert(!m.done, "join where", "dereference past end")
	return m.result(m.a.Value(), m.b.Value())
}

func (m *mergeCore[A, B, K, R]) Next() {
	cursor.Assert(!m.done, "join where", "advance past end")
	m.b.Next()
	if !m.endB.Reached(m.b) && m.cmp(m.keyB(m.b.Value()), m.markK) == 0 {
		return
	}
	m.a.Next()
	if !m.endA.Reached(m.a) && m.cmp(m.keyA(m.a.Value()), m.markK) == 0 {
		m.b = m.mark.Clone()
		return
	}
	m.seek()
}

func (m *mergeCore[A, B, K, R]) Done() bool { return m.done }

func (m *mergeCore[A, B, K, R]) Equal(other cursor.Core[R]) bool {
	o := peer[*mergeCore[A, B, K, R]]("join where", other)
	if m.done || o.done {
		return m.done == o.done
	}
	return m.a.Equal(o.a) && m.b.Equal(o.b)
}

func (m *mergeCore[A, B, K, R]) Clone() cursor.Core[R] {
	cp := *m
	cp.a, cp.b = m.a.Clone(), m.b.Clone()
	if m.mark != nil {
		cp.mark = m.mark.Clone()
	}
	return &cp
}
