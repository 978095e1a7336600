package views

import (
	"golang.org/x/exp/constraints"

	"lazyseq/cursor"
	"lazyseq/seqs"
)

// Count returns the number of elements of v.
func Count[T any](v View[T]) int { return v.Len() }

// CountFunc returns the number of elements satisfying pred.
func CountFunc[T any](v View[T], pred func(T) bool) int {
	return seqs.Count(Filter(v, pred).All())
}

func First[T any](v View[T]) (T, bool) { return v.Front() }

func Last[T any](v View[T]) (T, bool) { return v.Back() }

func Any[T any](v View[T], pred func(T) bool) bool { return seqs.Any(v.All(), pred) }

func Every[T any](v View[T], pred func(T) bool) bool { return seqs.All(v.All(), pred) }

func Contains[T comparable](v View[T], x T) bool { return seqs.Contains(v.All(), x) }

func Find[T any](v View[T], pred func(T) bool) (T, bool) { return seqs.Find(v.All(), pred) }

// IndexOf returns the position of the first element satisfying pred, or -1.
func IndexOf[T any](v View[T], pred func(T) bool) int { return seqs.IndexFunc(v.All(), pred) }

// Reduce folds v from the left starting at init.
func Reduce[T, R any](v View[T], init R, fn func(R, T) R) R {
	return seqs.Reduce(v.All(), init, fn)
}

func Sum[N cursor.Number](v View[N]) N { return seqs.Sum(v.All()) }

// Mean returns the arithmetic mean, or false for an empty view.
func Mean[N cursor.Number](v View[N]) (float64, bool) { return seqs.Mean(v.All()) }

func Min[T constraints.Ordered](v View[T]) (T, bool) { return seqs.Min(v.All()) }

func Max[T constraints.Ordered](v View[T]) (T, bool) { return seqs.Max(v.All()) }

// EqualViews reports whether a and b hold equal elements in the same order.
func EqualViews[T comparable](a, b View[T]) bool {
	return seqs.EqualFunc(a.All(), b.All(), func(x, y T) bool { return x == y })
}

// ForEach calls fn for every element of v.
func ForEach[T any](v View[T], fn func(T)) {
	for x := range v.All() {
		fn(x)
	}
}
