package views

import "lazyseq/cursor"

// scanCore keeps the running accumulator. Value returns the stored state,
// so dereferencing never folds again.
type scanCore[T, R any] struct {
	c         cursor.Cursor[T]
	end       cursor.End[T]
	acc       R
	fold      func(R, T) R
	inclusive bool
}

// InclusiveScan returns the running folds of v: fold(init, v0),
// fold(fold(init, v0), v1), ... The input must not be empty and the result
// is single-pass.
func InclusiveScan[T, R any](v View[T], init R, fold func(R, T) R) View[R] {
	cursor.Assert(!v.Empty(), "inclusive scan", "empty input")
	begin := &scanCore[T, R]{c: v.Begin(), end: v.end, fold: fold, inclusive: true}
	begin.acc = fold(init, begin.c.Value())
	return scan(v, begin)
}

// ExclusiveScan returns init followed by the running folds of v without
// its last element, so the result has the length of v. The input must not
// be empty and the result is single-pass.
func ExclusiveScan[T, R any](v View[T], init R, fold func(R, T) R) View[R] {
	cursor.Assert(!v.Empty(), "exclusive scan", "empty input")
	return scan(v, &scanCore[T, R]{c: v.Begin(), end: v.end, acc: init, fold: fold})
}

func scan[T, R any](v View[T], begin *scanCore[T, R]) View[R] {
	if last, ok := v.end.Cursor(); ok {
		end := &scanCore[T, R]{c: last, end: v.end, fold: begin.fold, inclusive: begin.inclusive}
		return bounded[R](begin, end, cursor.SinglePass)
	}
	return unbounded[R](begin, cursor.SinglePass)
}

func (s *scanCore[T, R]) Value() R {
	cursor.Assert(!s.Done(), "scan", "dereference past end")
	return s.acc
}

func (s *scanCore[T, R]) Next() {
	cursor.Assert(!s.Done(), "scan", "advance past end")
	if s.inclusive {
		s.c.Next()
		if !s.end.Reached(s.c) {
			s.acc = s.fold(s.acc, s.c.Value())
		}
		return
	}
	s.acc = s.fold(s.acc, s.c.Value())
	s.c.Next()
}

func (s *scanCore[T, R]) Done() bool { return s.end.Reached(s.c) }

func (s *scanCore[T, R]) Equal(other cursor.Core[R]) bool {
	return s.c.Equal(peer[*scanCore[T, R]]("scan", other).c)
}

func (s *scanCore[T, R]) Clone() cursor.Core[R] {
	cp := *s
	cp.c = s.c.Clone()
	return &cp
}
