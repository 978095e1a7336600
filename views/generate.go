package views

import (
	"iter"

	"github.com/Pallinder/go-randomdata"

	"lazyseq/cursor"
	"lazyseq/seqs"
)

// Of returns a random-access view over the given values.
func Of[T any](values ...T) View[T] { return FromSlice(values) }

// FromSlice returns a random-access view over s. The slice is not copied.
func FromSlice[T any](s []T) View[T] {
	begin, end := cursor.SliceRange(s)
	return View[T]{begin: begin, end: end}
}

// From returns a view over any Sequence, such as a lists.ArrayList.
func From[T any](s Sequence[T]) View[T] {
	return New(s.Begin(), s.End())
}

// FromSeq returns a single-pass view over seq. Values are pulled on demand.
func FromSeq[T any](seq iter.Seq[T]) View[T] {
	return View[T]{begin: seqs.Cursor(seq)}
}

// Range returns from, from+step, ... up to but excluding to.
func Range[N cursor.Number](from, to, step N) View[N] {
	begin, end := cursor.Iota(from, step, cursor.Steps(from, to, step))
	return View[N]{begin: begin, end: end}
}

// Repeat returns v repeated n times.
func Repeat[T any](v T, n int) View[T] {
	begin, end := cursor.Repeat(v, n)
	return View[T]{begin: begin, end: end}
}

// Generate returns the random-access view fn(0), fn(1), ..., fn(n-1).
// fn is called on every dereference.
func Generate[T any](fn func(i int) T, n int) View[T] {
	return Map(Range(0, n, 1), fn)
}

// Random returns n pseudo-random integers in [min, max).
// The values are drawn once so every traversal sees the same numbers.
func Random(min, max, n int) View[int] {
	cursor.Assertf(min < max, "random", "empty interval [%d, %d)", min, max)
	cursor.Assertf(n >= 0, "random", "negative count %d", n)
	values := make([]int, n)
	for i := range values {
		values[i] = randomdata.Number(min, max)
	}
	return FromSlice(values)
}

// Empty returns a view with no elements.
func Empty[T any]() View[T] { return FromSlice[T](nil) }
