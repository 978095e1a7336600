package cursor

// Advance moves c by n elements. Random-access cursors jump; others step.
// A negative n requires a bidirectional cursor.
func Advance[T any](c Cursor[T], n int) {
	if r, ok := c.(Random[T]); ok {
		r.Jump(n)
		return
	}
	if n < 0 {
		Retreat(MustBidi(c), -n)
		return
	}
	for ; n > 0; n-- {
		c.Next()
	}
}

// AdvanceBounded moves c forward by at most n elements, stopping at end.
// It returns the number of elements actually moved.
func AdvanceBounded[T any](c Cursor[T], n int, end End[T]) int {
	if n <= 0 {
		return 0
	}
	if r, ok := c.(Random[T]); ok {
		if last, ok := end.at.(Random[T]); ok {
			n = min(n, last.Difference(r))
			r.Jump(n)
			return n
		}
	}
	moved := 0
	for moved < n && !end.Reached(c) {
		c.Next()
		moved++
	}
	return moved
}

// Retreat moves c backward by n elements.
func Retreat[T any](c Bidi[T], n int) {
	if r, ok := c.(Random[T]); ok {
		r.Jump(-n)
		return
	}
	for ; n > 0; n-- {
		c.Prev()
	}
}

// Next returns a copy of c advanced by one element; c is left untouched.
func Next[T any](c Cursor[T]) Cursor[T] {
	n := c.Clone()
	n.Next()
	return n
}

// Prev returns a copy of c retreated by one element; c is left untouched.
func Prev[T any](c Bidi[T]) Bidi[T] {
	p := c.Clone().(Bidi[T])
	p.Prev()
	return p
}

// PostNext advances c and returns its previous position.
func PostNext[T any](c Cursor[T]) Cursor[T] {
	old := c.Clone()
	c.Next()
	return old
}

// PostPrev retreats c and returns its previous position.
func PostPrev[T any](c Bidi[T]) Bidi[T] {
	old := c.Clone().(Bidi[T])
	c.Prev()
	return old
}

// Add returns a copy of c moved by n.
func Add[T any](c Random[T], n int) Random[T] {
	r := c.Clone().(Random[T])
	r.Jump(n)
	return r
}

// Sub returns a copy of c moved by -n.
func Sub[T any](c Random[T], n int) Random[T] {
	return Add(c, -n)
}

// Distance returns the number of elements in [first, last).
// It is O(1) for random-access cursors and walks a copy of first otherwise.
func Distance[T any](first, last Cursor[T]) int {
	if r, ok := last.(Random[T]); ok {
		return r.Difference(first)
	}
	n := 0
	for c := first.Clone(); !c.Equal(last); c.Next() {
		n++
	}
	return n
}

// Count returns the number of elements in [first, end).
func Count[T any](first Cursor[T], end End[T]) int {
	if !end.IsSentinel() {
		return Distance(first, end.at)
	}
	n := 0
	for c := first.Clone(); !c.Done(); c.Next() {
		n++
	}
	return n
}

// Compare orders two random-access cursors over the same range.
func Compare[T any](a, b Random[T]) int {
	switch d := a.Difference(b); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// Less reports a < b.
func Less[T any](a, b Random[T]) bool { return a.Difference(b) < 0 }

// LessEqual reports a <= b.
func LessEqual[T any](a, b Random[T]) bool { return a.Difference(b) <= 0 }

// Greater reports a > b.
func Greater[T any](a, b Random[T]) bool { return a.Difference(b) > 0 }

// GreaterEqual reports a >= b.
func GreaterEqual[T any](a, b Random[T]) bool { return a.Difference(b) >= 0 }
