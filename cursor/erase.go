package cursor

type erasedCore[T any] struct {
	c Cursor[T]
}

// Erase converts c into a cursor over any with the same capability.
// It lets adaptors over several differently typed inputs share one engine.
func Erase[T any](c Cursor[T]) Cursor[any] {
	return Synthesize[any](&erasedCore[T]{c: c}, TagOf(c))
}

// EraseEnd converts an end the same way Erase converts a cursor.
func EraseEnd[T any](e End[T]) End[any] {
	if e.IsSentinel() {
		return SentinelEnd[any]()
	}
	return At(Erase(e.at))
}

func (e *erasedCore[T]) Value() any { return e.c.Value() }
func (e *erasedCore[T]) Next() { e.c.Next() }
func (e *erasedCore[T]) Prev() { MustBidi(e.c).Prev() }
func (e *erasedCore[T]) Jump(n int) { MustRandom(e.c).Jump(n) }
func (e *erasedCore[T]) Done() bool { return e.c.Done() }

func (e *erasedCore[T]) Difference(other Core[any]) int {
	return MustRandom(e.c).Difference(other.(*erasedCore[T]).c)
}

func (e *erasedCore[T]) Equal(other Core[any]) bool {
	return e.c.Equal(other.(*erasedCore[T]).c)
}

func (e *erasedCore[T]) Clone() Core[any] {
	return &erasedCore[T]{c: e.c.Clone()}
}
