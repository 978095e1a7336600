package views

import "lazyseq/cursor"

// bounded builds a view whose end is a concrete cursor of the same adaptor.
func bounded[T any](begin, end cursor.Core[T], tag cursor.Tag) View[T] {
	return View[T]{
		begin: cursor.Synthesize(begin, tag),
		end:   cursor.At(cursor.Synthesize(end, tag)),
	}
}

// unbounded builds a sentinel-terminated view.
func unbounded[T any](begin cursor.Core[T], tag cursor.Tag) View[T] {
	return View[T]{begin: cursor.Synthesize(begin, min(tag, cursor.Bidirectional))}
}

// peer casts the core of the other cursor in a comparison.
func peer[C any](op string, other any) C {
	o, ok := other.(C)
	if !ok {
		cursor.Fail(op, "cursors belong to different adaptors")
	}
	return o
}

func erase[T any](v View[T]) View[any] {
	return View[any]{begin: cursor.Erase(v.begin), end: cursor.EraseEnd(v.end)}
}

// as recovers a typed value from an erased one. nil yields the zero value.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}

