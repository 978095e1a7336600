package cursor

import "golang.org/x/exp/constraints"

// Number is the element type of arithmetic progressions.
type Number interface {
	constraints.Integer | constraints.Float
}

type iotaCore[N Number] struct {
	from, step N
	i, n       int
}

// Iota returns the random-access range from, from+step, ... of n elements.
func Iota[N Number](from, step N, n int) (Random[N], End[N]) {
	Assertf(n >= 0, "iota", "negative length %d", n)
	begin := &iotaCore[N]{from: from, step: step, n: n}
	end := &iotaCore[N]{from: from, step: step, i: n, n: n}
	return SynthesizeRandom[N](begin), At[N](SynthesizeRandom[N](end))
}

// Steps returns the number of elements of the half-open progression [from, to)
// advancing by step. A zero step or a step pointing away from to yields 0.
func Steps[N Number](from, to, step N) int {
	switch {
	case step > 0 && from < to:
		n := int((to - from) / step)
		if from+N(n)*step < to {
			n++
		}
		return n
	case step < 0 && from > to:
		n := int((from - to) / -step)
		if from+N(n)*step > to {
			n++
		}
		return n
	default:
		return 0
	}
}

func (c *iotaCore[N]) Value() N {
	Assert(c.i >= 0 && c.i < c.n, "iota", "dereference out of range")
	return c.from + N(c.i)*c.step
}

func (c *iotaCore[N]) Next() {
	Assert(c.i < c.n, "iota", "advance past end")
	c.i++
}

func (c *iotaCore[N]) Prev() {
	Assert(c.i > 0, "iota", "retreat before begin")
	c.i--
}

func (c *iotaCore[N]) Jump(n int) {
	Assert(c.i+n >= 0 && c.i+n <= c.n, "iota", "jump out of range")
	c.i += n
}

func (c *iotaCore[N]) Difference(other Core[N]) int { return c.i - other.(*iotaCore[N]).i }
func (c *iotaCore[N]) Equal(other Core[N]) bool { return c.i == other.(*iotaCore[N]).i }
func (c *iotaCore[N]) Done() bool { return c.i >= c.n }

func (c *iotaCore[N]) Clone() Core[N] {
	cp := *c
	return &cp
}

type repeatCore[T any] struct {
	v    T
	i, n int
}

// Repeat returns the random-access range yielding v n times.
func Repeat[T any](v T, n int) (Random[T], End[T]) {
	Assertf(n >= 0, "repeat", "negative count %d", n)
	return SynthesizeRandom[T](&repeatCore[T]{v: v, n: n}), At[T](SynthesizeRandom[T](&repeatCore[T]{v: v, i: n, n: n}))
}

func (c *repeatCore[T]) Value() T {
	Assert(c.i < c.n, "repeat", "dereference past end")
	return c.v
}

func (c *repeatCore[T]) Next() {
	Assert(c.i < c.n, "repeat", "advance past end")
	c.i++
}

func (c *repeatCore[T]) Prev() {
	Assert(c.i > 0, "repeat", "retreat before begin")
	c.i--
}

func (c *repeatCore[T]) Jump(n int) {
	Assert(c.i+n >= 0 && c.i+n <= c.n, "repeat", "jump out of range")
	c.i += n
}

func (c *repeatCore[T]) Difference(other Core[T]) int { return c.i - other.(*repeatCore[T]).i }
func (c *repeatCore[T]) Equal(other Core[T]) bool { return c.i == other.(*repeatCore[T]).i }
func (c *repeatCore[T]) Done() bool { return c.i >= c.n }

func (c *repeatCore[T]) Clone() Core[T] {
	cp := *c
	return &cp
}
