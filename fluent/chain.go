// Package fluent wraps views in a chainable API.
//
//	total := fluent.Of(1, 2, 3, 4).
//		Filter(func(x int) bool { return x%2 == 0 }).
//		Transform(func(x int) int { return x * x }).
//		ToSlice()
//
// Methods cannot introduce type parameters in Go, so adaptors that change the
// element type are package functions taking and returning a Chain.
package fluent

import (
	"iter"
	"log/slog"

	"lazyseq/views"
)

// Chain is a view with the adaptors of package views as methods.
type Chain[T any] struct {
	v views.View[T]
}

// Wrap starts a chain from v.
func Wrap[T any](v views.View[T]) Chain[T] { return Chain[T]{v: v} }

// Of starts a chain over the given values.
func Of[T any](values ...T) Chain[T] { return Wrap(views.FromSlice(values)) }

// FromSlice starts a chain over s.
func FromSlice[T any](s []T) Chain[T] { return Wrap(views.FromSlice(s)) }

// FromSeq starts a single-pass chain over seq.
func FromSeq[T any](seq iter.Seq[T]) Chain[T] { return Wrap(views.FromSeq(seq)) }

// From starts a chain over a container.
func From[T any](s views.Sequence[T]) Chain[T] { return Wrap(views.From(s)) }

// Filter keeps the elements satisfying keep.
func (c Chain[T]) Filter(keep func(T) bool) Chain[T] { return Wrap(views.Filter(c.v, keep)) }

// Except keeps the elements absent from the sorted view, ordered by compare.
func (c Chain[T]) Except(sorted views.View[T], compare func(a, b T) int) Chain[T] {
	return Wrap(views.ExceptFunc(c.v, sorted, compare))
}

// Take keeps the first n elements.
func (c Chain[T]) Take(n int) Chain[T] { return Wrap(views.Take(c.v, n)) }

// TakeWhile keeps the leading elements satisfying pred.
func (c Chain[T]) TakeWhile(pred func(T) bool) Chain[T] { return Wrap(views.TakeWhile(c.v, pred)) }

// Drop skips the first n elements.
func (c Chain[T]) Drop(n int) Chain[T] { return Wrap(views.Drop(c.v, n)) }

// DropWhile skips the leading elements satisfying pred.
func (c Chain[T]) DropWhile(pred func(T) bool) Chain[T] { return Wrap(views.DropWhile(c.v, pred)) }

// Slice keeps the elements with positions in [from, to).
func (c Chain[T]) Slice(from, to int) Chain[T] { return Wrap(views.Slice(c.v, from, to)) }

// TakeEvery keeps every step-th element starting at offset.
func (c Chain[T]) TakeEvery(step, offset int) Chain[T] {
	return Wrap(views.TakeEvery(c.v, step, offset))
}

// Unique drops adjacent elements equal under eq.
func (c Chain[T]) Unique(eq func(a, b T) bool) Chain[T] { return Wrap(views.UniqueFunc(c.v, eq)) }

// Rotate starts at element n mod Len and wraps around once.
func (c Chain[T]) Rotate(n int) Chain[T] { return Wrap(views.Rotate(c.v, n)) }

// Loop repeats the chain forever.
func (c Chain[T]) Loop() Chain[T] { return Wrap(views.Loop(c.v)) }

// LoopN repeats the chain n times.
func (c Chain[T]) LoopN(n int) Chain[T] { return Wrap(views.LoopN(c.v, n)) }

// Reverse walks a closed bidirectional chain back to front.
func (c Chain[T]) Reverse() Chain[T] { return Wrap(views.Reverse(c.v)) }

// Concat appends the other chains after c.
func (c Chain[T]) Concat(others ...Chain[T]) Chain[T] {
	parts := make([]views.View[T], 0, len(others)+1)
	parts = append(parts, c.v)
	for _, o := range others {
		parts = append(parts, o.v)
	}
	return Wrap(views.Concat(parts...))
}

// Tap calls fn for every element a traversal moves past.
func (c Chain[T]) Tap(fn func(T)) Chain[T] { return Wrap(views.Tap(c.v, fn)) }

// Trace logs every visited element at debug level.
func (c Chain[T]) Trace(logger *slog.Logger, msg string) Chain[T] {
	return Wrap(views.Trace(c.v, logger, msg))
}

// Transform is Map restricted to the element type of the chain.
func (c Chain[T]) Transform(fn func(T) T) Chain[T] { return Wrap(views.Map(c.v, fn)) }

// InclusiveScan yields the running fold, starting with fold(init, first).
func (c Chain[T]) InclusiveScan(init T, fold func(T, T) T) Chain[T] {
	return Wrap(views.InclusiveScan(c.v, init, fold))
}

// ExclusiveScan yields the running fold, starting with init.
func (c Chain[T]) ExclusiveScan(init T, fold func(T, T) T) Chain[T] {
	return Wrap(views.ExclusiveScan(c.v, init, fold))
}

// View returns the underlying view.
func (c Chain[T]) View() views.View[T] { return c.v }

// All yields every element from front to back.
func (c Chain[T]) All() iter.Seq[T] { return c.v.All() }

// Len returns the number of elements.
func (c Chain[T]) Len() int { return c.v.Len() }

// ToSlice collects the chain into a new slice.
func (c Chain[T]) ToSlice() []T { return views.ToSlice(c.v) }

// Into appends every element to dst.
func (c Chain[T]) Into(dst views.Inserter[T]) { views.Into(c.v, dst) }

// First returns the first element.
func (c Chain[T]) First() (T, bool) { return c.v.Front() }

// Last returns the last element.
func (c Chain[T]) Last() (T, bool) { return c.v.Back() }

// Any reports whether some element satisfies pred.
func (c Chain[T]) Any(pred func(T) bool) bool { return views.Any(c.v, pred) }

// Every reports whether all elements satisfy pred.
func (c Chain[T]) Every(pred func(T) bool) bool { return views.Every(c.v, pred) }

// ForEach calls fn for every element.
func (c Chain[T]) ForEach(fn func(T)) { views.ForEach(c.v, fn) }

// Format renders the elements, see views.Format.
func (c Chain[T]) Format(opts ...views.FormatOption) string { return views.Format(c.v, opts...) }

// String renders the elements as [a, b, c].
func (c Chain[T]) String() string { return c.v.String() }
