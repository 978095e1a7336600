package views

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"lazyseq/cursor"
)

type filterCore[T any] struct {
	c     cursor.Cursor[T]
	first cursor.Cursor[T]
	end   cursor.End[T]
	keep  func(T) bool
}

// Filter returns the elements of v satisfying keep, in order.
// The result is at most bidirectional.
func Filter[T any](v View[T], keep func(T) bool) View[T] {
	tag := min(v.Tag(), cursor.Bidirectional)
	begin := &filterCore[T]{c: v.Begin(), first: v.begin, end: v.end, keep: keep}
	begin.seek()
	if last, ok := v.end.Cursor(); ok {
		return bounded[T](begin, &filterCore[T]{c: last, first: v.begin, end: v.end, keep: keep}, tag)
	}
	return unbounded[T](begin, tag)
}

func (f *filterCore[T]) seek() {
	for !f.end.Reached(f.c) && !f.keep(f.c.Value()) {
		f.c.Next()
	}
}

func (f *filterCore[T]) Value() T { return f.c.Value() }

func (f *filterCore[T]) Next() {
	f.c.Next()
	f.seek()
}

func (f *filterCore[T]) Prev() {
	b := cursor.MustBidi(f.c)
	for {
		cursor.Assert(!b.Equal(f.first), "filter", "retreat before begin")
		b.Prev()
		if f.keep(b.Value()) {
			return
		}
	}
}

func (f *filterCore[T]) Done() bool { return f.end.Reached(f.c) }

func (f *filterCore[T]) Equal(other cursor.Core[T]) bool {
	return f.c.Equal(peer[*filterCore[T]]("filter", other).c)
}

func (f *filterCore[T]) Clone() cursor.Core[T] {
	cp := *f
	cp.c = f.c.Clone()
	return &cp
}

// Except returns the elements of v that do not occur in the ascending view sorted.
func Except[T constraints.Ordered](v, sorted View[T]) View[T] {
	return ExceptFunc(v, sorted, cmp.Compare[T])
}

// ExceptFunc is Except ordered by compare. Membership is a binary search
// when sorted is closed and random-access and a bounded linear scan otherwise.
func ExceptFunc[T any](v, sorted View[T], compare func(a, b T) int) View[T] {
	n, indexed := sorted.sized()
	return Filter(v, func(x T) bool {
		if indexed {
			return !binarySearch(sorted.begin, n, x, compare)
		}
		for y := range sorted.All() {
			if c := compare(y, x); c >= 0 {
				return c != 0
			}
		}
		return true
	})
}

func binarySearch[T any](begin cursor.Cursor[T], n int, x T, compare func(a, b T) int) bool {
	lo, hi := 0, n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := compare(cursor.Add(cursor.MustRandom(begin), mid).Value(), x); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return true
		}
	}
	return false
}

type uniqueCore[T any] struct {
	c     cursor.Cursor[T]
	first cursor.Cursor[T]
	end   cursor.End[T]
	eq    func(a, b T) bool
}

// Unique drops adjacent duplicates, keeping the first element of every run.
// On a sorted view this leaves distinct values.
func Unique[T comparable](v View[T]) View[T] {
	return UniqueFunc(v, func(a, b T) bool { return a == b })
}

// UniqueFunc is Unique with a custom equality.
func UniqueFunc[T any](v View[T], eq func(a, b T) bool) View[T] {
	tag := min(v.Tag(), cursor.Bidirectional)
	begin := &uniqueCore[T]{c: v.Begin(), first: v.begin, end: v.end, eq: eq}
	if last, ok := v.end.Cursor(); ok {
		return bounded[T](begin, &uniqueCore[T]{c: last, first: v.begin, end: v.end, eq: eq}, tag)
	}
	return unbounded[T](begin, tag)
}

func (u *uniqueCore[T]) Value() T { return u.c.Value() }

func (u *uniqueCore[T]) Next() {
	run := u.c.Value()
	u.c.Next()
	for !u.end.Reached(u.c) && u.eq(u.c.Value(), run) {
		u.c.Next()
	}
}

func (u *uniqueCore[T]) Prev() {
	b := cursor.MustBidi(u.c)
	cursor.Assert(!b.Equal(u.first), "unique", "retreat before begin")
	b.Prev()
	for !b.Equal(u.first) {
		p := cursor.Prev(b)
		if !u.eq(p.Value(), b.Value()) {
			break
		}
		b.Prev()
	}
}

func (u *uniqueCore[T]) Done() bool { return u.end.Reached(u.c) }

func (u *uniqueCore[T]) Equal(other cursor.Core[T]) bool {
	return u.c.Equal(peer[*uniqueCore[T]]("unique", other).c)
}

func (u *uniqueCore[T]) Clone() cursor.Core[T] {
	cp := *u
	cp.c = u.c.Clone()
	return &cp
}
