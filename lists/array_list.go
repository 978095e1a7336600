package lists

import (
	"fmt"
	"iter"
	"slices"

	"lazyseq/cursor"
)

// ArrayList is a slice-backed list with random-access cursors.
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

// Grow guarantees room for n more elements without reallocation.
// Materialization calls it before copying a sized view.
func (al *ArrayList[T]) Grow(n int) {
	if n > 0 {
		al.data = slices.Grow(al.data, n)
	}
}

// Cap returns the capacity of the backing array.
func (al *ArrayList[T]) Cap() int {
	return cap(al.data)
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Sort(compare func(a, b T) int) {
	slices.SortStableFunc(al.data, compare)
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

// Begin returns a random-access cursor at the first element.
// Appending to the list invalidates existing cursors.
func (al *ArrayList[T]) Begin() cursor.Cursor[T] {
	return cursor.Slice(al.data)
}

func (al *ArrayList[T]) End() cursor.End[T] {
	return cursor.At[T](cursor.SliceAt(al.data, len(al.data)))
}
