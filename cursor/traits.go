package cursor

// TagOf reports the capability of c from the interfaces it implements.
func TagOf[T any](c Cursor[T]) Tag {
	switch c.(type) {
	case Random[T]:
		return RandomAccess
	case Bidi[T]:
		return Bidirectional
	default:
		return SinglePass
	}
}

// RangeTag reports the capability of the range [begin, end).
// A range terminated by the sentinel is at most bidirectional: neither
// offsets nor distances can be computed against a sentinel.
func RangeTag[T any](begin Cursor[T], end End[T]) Tag {
	t := TagOf(begin)
	if end.IsSentinel() && t > Bidirectional {
		return Bidirectional
	}
	return t
}

// ClosedTag is RangeTag for algorithms that must retreat from the end of a
// range: with a sentinel end they are limited to a single pass.
func ClosedTag[T any](begin Cursor[T], end End[T]) Tag {
	if end.IsSentinel() {
		return SinglePass
	}
	return TagOf(begin)
}

// AsBidi returns c as a bidirectional cursor when it is one.
func AsBidi[T any](c Cursor[T]) (Bidi[T], bool) {
	b, ok := c.(Bidi[T])
	return b, ok
}

// AsRandom returns c as a random-access cursor when it is one.
func AsRandom[T any](c Cursor[T]) (Random[T], bool) {
	r, ok := c.(Random[T])
	return r, ok
}

// MustBidi returns c as a bidirectional cursor or fails with a *LogicError.
func MustBidi[T any](c Cursor[T]) Bidi[T] {
	b, ok := c.(Bidi[T])
	if !ok {
		Fail("retreat", "cursor is "+TagOf(c).String())
	}
	return b
}

// MustRandom returns c as a random-access cursor or fails with a *LogicError.
func MustRandom[T any](c Cursor[T]) Random[T] {
	r, ok := c.(Random[T])
	if !ok {
		Fail("jump", "cursor is "+TagOf(c).String())
	}
	return r
}
