package views

import (
	"errors"
	"fmt"
)

// ErrEmptyOptional is returned when the value of an empty Optional is requested.
var ErrEmptyOptional = errors.New("views: optional is empty")

// Optional is a value that may be absent. ZipLongest uses it for the slots
// of inputs that are already exhausted.
type Optional[T any] struct {
	v  T
	ok bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{v: v, ok: true} }

// None returns an empty Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.v, o.ok }

// Present reports whether a value is held.
func (o Optional[T]) Present() bool { return o.ok }

// Value returns the value or ErrEmptyOptional.
func (o Optional[T]) Value() (T, error) {
	if !o.ok {
		var zero T
		return zero, ErrEmptyOptional
	}
	return o.v, nil
}

// MustValue returns the value and panics when there is none.
func (o Optional[T]) MustValue() T {
	if !o.ok {
		panic(ErrEmptyOptional)
	}
	return o.v
}

// OrElse returns the value or def when empty.
func (o Optional[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.v
}

func (o Optional[T]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprint(o.v)
}

// Pair is the element of two-way zips and products.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

func (p Pair[T1, T2]) String() string { return fmt.Sprintf("(%v, %v)", p.V1, p.V2) }

// Triple is the element of three-way zips and products.
type Triple[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

func (t Triple[T1, T2, T3]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.V1, t.V2, t.V3)
}

// Indexed is the element of Enumerate.
type Indexed[T any] struct {
	Index int
	Value T
}

// Group is a run of consecutive elements sharing Key.
type Group[K, T any] struct {
	Key    K
	Values View[T]
}
