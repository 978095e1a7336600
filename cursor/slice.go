package cursor

type sliceCore[T any] struct {
	s []T
	i int
}

// Slice returns a random-access cursor at the first element of s.
// The cursor is Done at len(s).
func Slice[T any](s []T) Random[T] {
	return SynthesizeRandom[T](&sliceCore[T]{s: s})
}

// SliceAt returns a random-access cursor at index i of s, 0 <= i <= len(s).
func SliceAt[T any](s []T, i int) Random[T] {
	Assertf(i >= 0 && i <= len(s), "slice", "index %d out of range [0, %d]", i, len(s))
	return SynthesizeRandom[T](&sliceCore[T]{s: s, i: i})
}

// SliceRange returns the closed range covering s.
func SliceRange[T any](s []T) (Random[T], End[T]) {
	return Slice(s), At[T](SliceAt(s, len(s)))
}

func (c *sliceCore[T]) Value() T {
	Assertf(c.i >= 0 && c.i < len(c.s), "slice", "dereference at %d of %d", c.i, len(c.s))
	return c.s[c.i]
}

func (c *sliceCore[T]) Next() {
	Assert(c.i < len(c.s), "slice", "advance past end")
	c.i++
}

func (c *sliceCore[T]) Prev() {
	Assert(c.i > 0, "slice", "retreat before begin")
	c.i--
}

func (c *sliceCore[T]) Jump(n int) {
	Assertf(c.i+n >= 0 && c.i+n <= len(c.s), "slice", "jump by %d from %d leaves [0, %d]", n, c.i, len(c.s))
	c.i += n
}

func (c *sliceCore[T]) Difference(other Core[T]) int {
	return c.i - other.(*sliceCore[T]).i
}

func (c *sliceCore[T]) Equal(other Core[T]) bool {
	return c.i == other.(*sliceCore[T]).i
}

func (c *sliceCore[T]) Done() bool { return c.i >= len(c.s) }

func (c *sliceCore[T]) Clone() Core[T] {
	cp := *c
	return &cp
}
