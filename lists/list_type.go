package lists

import (
	"errors"
	"iter"

	"lazyseq/cursor"
)

var ErrIndexOutOfBounds = errors.New("index out of bounds")

// List is a container that views can read from and materialize into.
// T can be any type.
type List[T any] interface {
	// -------------------------------------------------------
	// Basic Operations
	// -------------------------------------------------------

	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// Get retrieves the element at the specified index
	// Returns an error if index is out of bounds
	Get(index int) (T, error)

	// Set modifies the element at the specified index
	// Returns an error if index is out of bounds
	Set(index int, value T) error

	// -------------------------------------------------------
	// Query Operations
	// -------------------------------------------------------

	// Size returns the current number of elements in the list
	Size() int

	// IsEmpty checks if the list is empty
	IsEmpty() bool

	// Clear clears the list and releases memory
	Clear()

	// -------------------------------------------------------
	// Transformation & Iteration
	// -------------------------------------------------------

	// ToSlice converts the list to a native slice
	ToSlice() []T

	// Values iterates the elements front to back
	Values() iter.Seq[T]

	// Sort sorts the list in place, stable
	Sort(compare func(a, b T) int)

	// Begin returns a cursor at the first element.
	// ArrayList cursors are random-access, LinkedList cursors bidirectional.
	Begin() cursor.Cursor[T]

	// End returns the concrete end of the list, one past the last element
	End() cursor.End[T]
}

// IndexOf returns the index of the first occurrence of v, or -1.
func IndexOf[T comparable](l List[T], v T) int {
	i := 0
	for e := range l.Values() {
		if e == v {
			return i
		}
		i++
	}
	return -1
}
