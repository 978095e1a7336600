package cursor

// Cursor is the single-pass primitive set.
type Cursor[T any] interface {
	// Value dereferences the cursor. Calling it repeatedly without moving
	// the cursor must have no side effects.
	Value() T

	// Next advances the cursor by one element.
	Next()

	// Equal reports whether both cursors denote the same position.
	// Comparing cursors produced by different adaptors is a logic error.
	Equal(other Cursor[T]) bool

	// Done reports whether the cursor reached the end of its sequence,
	// i.e. whether it compares equal to the Sentinel.
	Done() bool

	// Clone returns an independent copy. Advancing the copy never moves the receiver.
	Clone() Cursor[T]
}

// Bidi is a cursor that can also move backward.
type Bidi[T any] interface {
	Cursor[T]

	// Prev retreats the cursor by one element.
	Prev()
}

// Random is a cursor with constant-time offsets and distances.
type Random[T any] interface {
	Bidi[T]

	// Jump moves the cursor by n elements; n may be negative.
	Jump(n int)

	// Difference returns the signed number of elements between other and the
	// receiver, that is receiver - other.
	Difference(other Cursor[T]) int
}

// Sentinel is the stateless end marker. A cursor equals the sentinel
// exactly when its Done method reports true.
type Sentinel struct{}

// AtSentinel compares a cursor with the sentinel.
func AtSentinel[T any](c Cursor[T], _ Sentinel) bool { return c.Done() }

// SentinelAt is AtSentinel with the operands swapped.
func SentinelAt[T any](_ Sentinel, c Cursor[T]) bool { return c.Done() }

// End is the end of a range: either a concrete cursor of the same adaptor
// type as the begin cursor, or the Sentinel. The zero value is the sentinel.
type End[T any] struct {
	at Cursor[T]
}

// At returns an end positioned at c. A nil cursor yields the sentinel.
func At[T any](c Cursor[T]) End[T] {
	return End[T]{at: c}
}

// SentinelEnd returns the sentinel end.
func SentinelEnd[T any]() End[T] {
	return End[T]{}
}

// Reached reports whether c has arrived at the end.
func (e End[T]) Reached(c Cursor[T]) bool {
	if e.at == nil {
		return c.Done()
	}
	return c.Equal(e.at)
}

// IsSentinel reports whether the end is the stateless sentinel.
func (e End[T]) IsSentinel() bool {
	return e.at == nil
}

// Cursor returns a copy of the concrete end cursor.
// The boolean is false when the end is the sentinel.
func (e End[T]) Cursor() (Cursor[T], bool) {
	if e.at == nil {
		return nil, false
	}
	return e.at.Clone(), true
}

// Clone returns an end that shares no state with e.
func (e End[T]) Clone() End[T] {
	if e.at == nil {
		return e
	}
	return End[T]{at: e.at.Clone()}
}
