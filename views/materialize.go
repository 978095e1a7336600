package views

import (
	"slices"

	"lazyseq/lists"
)

// Inserter is any container that can append values.
type Inserter[T any] interface {
	Add(values ...T)
}

// Grower is implemented by containers that can reserve room for n more values.
type Grower interface {
	Grow(n int)
}

// Into appends every element of v to dst and returns dst.
// When v is sized and dst is a Grower, room is reserved first.
func Into[T any, D Inserter[T]](v View[T], dst D) D {
	if g, ok := any(dst).(Grower); ok {
		if n, ok := v.sized(); ok {
			g.Grow(n)
		}
	}
	for x := range v.All() {
		dst.Add(x)
	}
	return dst
}

// ToSlice collects v into a new slice.
func ToSlice[T any](v View[T]) []T {
	if n, ok := v.sized(); ok {
		out := make([]T, 0, n)
		for x := range v.All() {
			out = append(out, x)
		}
		return out
	}
	return slices.Collect(v.All())
}

// ToArrayList collects v into a new ArrayList.
func ToArrayList[T any](v View[T]) *lists.ArrayList[T] {
	return Into(v, lists.NewArrayList[T](0))
}

// ToLinkedList collects v into a new LinkedList.
func ToLinkedList[T any](v View[T]) *lists.LinkedList[T] {
	return Into(v, lists.NewLinkedList[T]())
}

// ToMap builds a map from v. Later elements overwrite earlier ones with the same key.
func ToMap[T any, K comparable, V any](v View[T], key func(T) K, val func(T) V) map[K]V {
	out := make(map[K]V)
	for x := range v.All() {
		out[key(x)] = val(x)
	}
	return out
}

// GroupToMap buckets the elements of v by key, keeping their order in each bucket.
func GroupToMap[T any, K comparable](v View[T], key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for x := range v.All() {
		k := key(x)
		out[k] = append(out[k], x)
	}
	return out
}
