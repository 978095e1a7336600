package fluent

import (
	"golang.org/x/exp/constraints"

	"lazyseq/views"
)

// Map applies fn to every element.
func Map[T, U any](c Chain[T], fn func(T) U) Chain[U] { return Wrap(views.Map(c.v, fn)) }

// Chunks cuts the chain into views of size elements; the last may be shorter.
func Chunks[T any](c Chain[T], size int) Chain[views.View[T]] {
	return Wrap(views.Chunks(c.v, size))
}

// ChunkIf splits the chain at every element satisfying delim.
func ChunkIf[T any](c Chain[T], delim func(T) bool) Chain[views.View[T]] {
	return Wrap(views.ChunkIf(c.v, delim))
}

// GroupBy groups runs of consecutive elements with equal keys.
func GroupBy[T any, K comparable](c Chain[T], key func(T) K) Chain[views.Group[K, T]] {
	return Wrap(views.GroupBy(c.v, key))
}

// Zip pairs the elements of a and b up to the shorter length.
func Zip[A, B any](a Chain[A], b Chain[B]) Chain[views.Pair[A, B]] {
	return Wrap(views.Zip(a.v, b.v))
}

// ZipLongest pairs the elements of a and b up to the longer length.
func ZipLongest[A, B any](a Chain[A], b Chain[B]) Chain[views.Pair[views.Optional[A], views.Optional[B]]] {
	return Wrap(views.ZipLongest(a.v, b.v))
}

// Flatten concatenates the inner views.
func Flatten[T any](c Chain[views.View[T]]) Chain[T] { return Wrap(views.Flatten(c.v)) }

// FlatMap maps every element to a view and concatenates the results.
func FlatMap[T, U any](c Chain[T], fn func(T) views.View[U]) Chain[U] {
	return Wrap(views.FlatMap(c.v, fn))
}

// Product yields every pair of a and b in row-major order.
func Product[A, B any](a Chain[A], b Chain[B]) Chain[views.Pair[A, B]] {
	return Wrap(views.Product(a.v, b.v))
}

// Enumerate pairs every element with its position, counting from start.
func Enumerate[T any](c Chain[T], start int) Chain[views.Indexed[T]] {
	return Wrap(views.Enumerate(c.v, start))
}

// Join renders the elements separated by sep.
func Join[T any](c Chain[T], sep string) Chain[string] { return Wrap(views.Join(c.v, sep)) }

// Scan is an inclusive scan whose accumulator type differs from the element type.
func Scan[T, R any](c Chain[T], init R, fold func(R, T) R) Chain[R] {
	return Wrap(views.InclusiveScan(c.v, init, fold))
}

// ExclusiveScanTo is Scan with exclusive semantics.
func ExclusiveScanTo[T, R any](c Chain[T], init R, fold func(R, T) R) Chain[R] {
	return Wrap(views.ExclusiveScan(c.v, init, fold))
}

// JoinWhere inner-joins two chains sorted by key.
func JoinWhere[A, B any, K constraints.Ordered, R any](a Chain[A], b Chain[B], keyA func(A) K, keyB func(B) K, result func(A, B) R) Chain[R] {
	return Wrap(views.JoinWhere(a.v, b.v, keyA, keyB, result))
}
