package views

import "lazyseq/cursor"

// flattenCore walks the outer view and, inside it, the active inner view.
// inner is nil exactly when outer is at its end.
type flattenCore[T any] struct {
	outer    cursor.Cursor[View[T]]
	first    cursor.Cursor[View[T]]
	outerEnd cursor.End[View[T]]
	iv       View[T]
	inner    cursor.Cursor[T]
}

// Flatten concatenates the inner views of v, skipping empty ones in both
// directions. Deeper nesting is flattened by composing Flatten calls.
// The first non-empty inner view caps the capability as well; it must be
// closed for the result to walk backward. With no non-empty inner
// view the result is single-pass.
func Flatten[T any](v View[View[T]]) View[T] {
	begin := &flattenCore[T]{outer: v.Begin(), first: v.begin, outerEnd: v.end}
	begin.settle()
	tag := cursor.SinglePass
	if begin.inner != nil {
		tag = min(v.Tag(), cursor.Bidirectional, cursor.ClosedTag(begin.iv.begin, begin.iv.end))
	}
	if last, ok := v.end.Cursor(); ok {
		return bounded[T](begin, &flattenCore[T]{outer: last, first: v.begin, outerEnd: v.end}, tag)
	}
	return unbounded[T](begin, tag)
}

// FlattenSlices concatenates the slices of v.
func FlattenSlices[T any](v View[[]T]) View[T] {
	return Flatten(Map(v, FromSlice[T]))
}

// FlatMap maps every element of v to a view and concatenates the results.
func FlatMap[T, U any](v View[T], fn func(T) View[U]) View[U] {
	return Flatten(Map(v, fn))
}

// settle moves forward to the first non-empty inner view at or after outer.
func (f *flattenCore[T]) settle() {
	for !f.outerEnd.Reached(f.outer) {
		f.iv = f.outer.Value()
		f.inner = f.iv.Begin()
		if !f.iv.end.Reached(f.inner) {
			return
		}
		f.outer.Next()
	}
	f.iv, f.inner = View[T]{}, nil
}

func (f *flattenCore[T]) Value() T {
	cursor.Assert(f.inner != nil, "flatten", "dereference past end")
	return f.inner.Value()
}

func (f *flattenCore[T]) Next() {
	cursor.Assert(f.inner != nil, "flatten", "advance past end")
	f.inner.Next()
	if f.iv.end.Reached(f.inner) {
		f.outer.Next()
		f.settle()
	}
}

func (f *flattenCore[T]) Prev() {
	if f.inner != nil && !f.inner.Equal(f.iv.begin) {
		cursor.MustBidi(f.inner).Prev()
		return
	}
	b := cursor.MustBidi(f.outer)
	for {
		cursor.Assert(!b.Equal(f.first), "flatten", "retreat before begin")
		b.Prev()
		iv := b.Value()
		if iv.Empty() {
			continue
		}
		last, ok := iv.end.Cursor()
		cursor.Assert(ok, "flatten", "inner view has no concrete end")
		f.iv, f.inner = iv, last
		cursor.MustBidi(f.inner).Prev()
		return
	}
}

func (f *flattenCore[T]) Done() bool { return f.outerEnd.Reached(f.outer) }

func (f *flattenCore[T]) Equal(other cursor.Core[T]) bool {
	o := peer[*flattenCore[T]]("flatten", other)
	if !f.outer.Equal(o.outer) {
		return false
	}
	if f.inner == nil || o.inner == nil {
		return f.inner == nil && o.inner == nil
	}
	return f.inner.Equal(o.inner)
}

func (f *flattenCore[T]) Clone() cursor.Core[T] {
	cp := *f
	cp.outer = f.outer.Clone()
	if f.inner != nil {
		cp.inner = f.inner.Clone()
	}
	return &cp
}
