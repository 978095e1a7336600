package views

import "lazyseq/cursor"

type zipCore struct {
	cs   []cursor.Cursor[any]
	ends []cursor.End[any]
}

// zip walks every input in lockstep and stops with the shortest one.
// When every input is closed the end cursors are balanced to the shortest
// length, so the result can also be walked backward.
func zip(vs []View[any]) View[[]any] {
	cursor.Assert(len(vs) > 0, "zip", "no inputs")
	tags := make([]cursor.Tag, len(vs))
	begin := &zipCore{cs: make([]cursor.Cursor[any], len(vs)), ends: make([]cursor.End[any], len(vs))}
	closed := true
	for k, v := range vs {
		tags[k] = v.Tag()
		begin.cs[k] = v.Begin()
		begin.ends[k] = v.end
		closed = closed && v.Closed()
	}
	tag := cursor.Min(tags...)
	if !closed {
		return unbounded[[]any](begin, tag)
	}

	n := vs[0].Len()
	for _, v := range vs[1:] {
		n = min(n, v.Len())
	}
	end := &zipCore{cs: make([]cursor.Cursor[any], len(vs)), ends: begin.ends}
	for k, v := range vs {
		end.cs[k] = v.Begin()
		cursor.Advance(end.cs[k], n)
	}
	return bounded[[]any](begin, end, tag)
}

func (z *zipCore) Value() []any {
	cursor.Assert(!z.Done(), "zip", "dereference past end")
	out := make([]any, len(z.cs))
	for k, c := range z.cs {
		out[k] = c.Value()
	}
	return out
}

func (z *zipCore) Next() {
	for _, c := range z.cs {
		c.Next()
	}
}

func (z *zipCore) Prev() {
	for _, c := range z.cs {
		cursor.MustBidi(c).Prev()
	}
}

func (z *zipCore) Jump(n int) {
	for _, c := range z.cs {
		cursor.MustRandom(c).Jump(n)
	}
}

// Difference returns the per-input distance of smallest magnitude.
func (z *zipCore) Difference(other cursor.Core[[]any]) int {
	o := peer[*zipCore]("zip", other)
	d := cursor.MustRandom(z.cs[0]).Difference(o.cs[0])
	for k := 1; k < len(z.cs); k++ {
		if dk := cursor.MustRandom(z.cs[k]).Difference(o.cs[k]); abs(dk) < abs(d) {
			d = dk
		}
	}
	return d
}

// Equal reports true as soon as one input position matches, so a cursor
// meets the end of the shortest input.
func (z *zipCore) Equal(other cursor.Core[[]any]) bool {
	o := peer[*zipCore]("zip", other)
	for k, c := range z.cs {
		if c.Equal(o.cs[k]) {
			return true
		}
	}
	return false
}

func (z *zipCore) Done() bool {
	for k, c := range z.cs {
		if z.ends[k].Reached(c) {
			return true
		}
	}
	return false
}

func (z *zipCore) Clone() cursor.Core[[]any] {
	cs := make([]cursor.Cursor[any], len(z.cs))
	for k, c := range z.cs {
		cs[k] = c.Clone()
	}
	return &zipCore{cs: cs, ends: z.ends}
}

// Zip pairs the elements of a and b. The result is as long as the shorter input.
func Zip[A, B any](a View[A], b View[B]) View[Pair[A, B]] {
	return Map(zip([]View[any]{erase(a), erase(b)}), func(vs []any) Pair[A, B] {
		return Pair[A, B]{V1: as[A](vs[0]), V2: as[B](vs[1])}
	})
}

// Zip3 is Zip over three inputs.
func Zip3[A, B, C any](a View[A], b View[B], c View[C]) View[Triple[A, B, C]] {
	return Map(zip([]View[any]{erase(a), erase(b), erase(c)}), func(vs []any) Triple[A, B, C] {
		return Triple[A, B, C]{V1: as[A](vs[0]), V2: as[B](vs[1]), V3: as[C](vs[2])}
	})
}

// ZipN zips any number of inputs of the same element type.
func ZipN[T any](vs ...View[T]) View[[]T] {
	return Map(zip(eraseAll(vs)), func(xs []any) []T {
		out := make([]T, len(xs))
		for k, x := range xs {
			out[k] = as[T](x)
		}
		return out
	})
}

type zipLongestCore struct {
	cs   []cursor.Cursor[any]
	ends []cursor.End[any]
	pos  []int
	lens []int
	i    int
}

// zipLongest walks every input in lockstep until all are exhausted.
// pos holds the offset of each input, which stops growing at its end.
func zipLongest(vs []View[any]) View[[]Optional[any]] {
	cursor.Assert(len(vs) > 0, "zip longest", "no inputs")
	tags := make([]cursor.Tag, len(vs))
	begin := &zipLongestCore{
		cs:   make([]cursor.Cursor[any], len(vs)),
		ends: make([]cursor.End[any], len(vs)),
		pos:  make([]int, len(vs)),
	}
	closed := true
	for k, v := range vs {
		tags[k] = v.Tag()
		begin.cs[k] = v.Begin()
		begin.ends[k] = v.end
		closed = closed && v.Closed()
	}
	tag := cursor.Min(tags...)
	if !closed {
		return unbounded[[]Optional[any]](begin, tag)
	}

	lens := make([]int, len(vs))
	end := &zipLongestCore{cs: make([]cursor.Cursor[any], len(vs)), ends: begin.ends, lens: lens}
	for k, v := range vs {
		lens[k] = v.Len()
		end.cs[k], _ = v.end.Cursor()
		end.i = max(end.i, lens[k])
	}
	end.pos = append([]int(nil), lens...)
	begin.lens = lens
	return bounded[[]Optional[any]](begin, end, tag)
}

func (z *zipLongestCore) Value() []Optional[any] {
	cursor.Assert(!z.Done(), "zip longest", "dereference past end")
	out := make([]Optional[any], len(z.cs))
	for k, c := range z.cs {
		if !z.ends[k].Reached(c) {
			out[k] = Some(c.Value())
		}
	}
	return out
}

func (z *zipLongestCore) Next() {
	cursor.Assert(!z.Done(), "zip longest", "advance past end")
	for k, c := range z.cs {
		if !z.ends[k].Reached(c) {
			c.Next()
			z.pos[k]++
		}
	}
	z.i++
}

func (z *zipLongestCore) Prev() {
	cursor.Assert(z.i > 0, "zip longest", "retreat before begin")
	z.i--
	for k, c := range z.cs {
		if z.pos[k] > z.i {
			cursor.MustBidi(c).Prev()
			z.pos[k]--
		}
	}
}

func (z *zipLongestCore) Jump(n int) {
	t := z.i + n
	cursor.Assert(t >= 0, "zip longest", "jump before begin")
	for k, c := range z.cs {
		p := min(t, z.lens[k])
		cursor.MustRandom(c).Jump(p - z.pos[k])
		z.pos[k] = p
	}
	z.i = t
}

func (z *zipLongestCore) Difference(other cursor.Core[[]Optional[any]]) int {
	return z.i - peer[*zipLongestCore]("zip longest", other).i
}

func (z *zipLongestCore) Equal(other cursor.Core[[]Optional[any]]) bool {
	return z.i == peer[*zipLongestCore]("zip longest", other).i
}

func (z *zipLongestCore) Done() bool {
	for k, c := range z.cs {
		if !z.ends[k].Reached(c) {
			return false
		}
	}
	return true
}

func (z *zipLongestCore) Clone() cursor.Core[[]Optional[any]] {
	cs := make([]cursor.Cursor[any], len(z.cs))
	for k, c := range z.cs {
		cs[k] = c.Clone()
	}
	return &zipLongestCore{cs: cs, ends: z.ends, pos: append([]int(nil), z.pos...), lens: z.lens, i: z.i}
}

// ZipLongest pairs the elements of a and b until both are exhausted. The
// slot of an exhausted input holds an empty Optional.
func ZipLongest[A, B any](a View[A], b View[B]) View[Pair[Optional[A], Optional[B]]] {
	return Map(zipLongest([]View[any]{erase(a), erase(b)}), func(os []Optional[any]) Pair[Optional[A], Optional[B]] {
		return Pair[Optional[A], Optional[B]]{V1: optionalAs[A](os[0]), V2: optionalAs[B](os[1])}
	})
}

// ZipLongest3 is ZipLongest over three inputs.
func ZipLongest3[A, B, C any](a View[A], b View[B], c View[C]) View[Triple[Optional[A], Optional[B], Optional[C]]] {
	return Map(zipLongest([]View[any]{erase(a), erase(b), erase(c)}), func(os []Optional[any]) Triple[Optional[A], Optional[B], Optional[C]] {
		return Triple[Optional[A], Optional[B], Optional[C]]{V1: optionalAs[A](os[0]), V2: optionalAs[B](os[1]), V3: optionalAs[C](os[2])}
	})
}

// ZipLongestN is ZipLongest over any number of inputs of the same element type.
func ZipLongestN[T any](vs ...View[T]) View[[]Optional[T]] {
	return Map(zipLongest(eraseAll(vs)), func(os []Optional[any]) []Optional[T] {
		out := make([]Optional[T], len(os))
		for k, o := range os {
			out[k] = optionalAs[T](o)
		}
		return out
	})
}

func optionalAs[T any](o Optional[any]) Optional[T] {
	if v, ok := o.Get(); ok {
		return Some(as[T](v))
	}
	return None[T]()
}

func eraseAll[T any](vs []View[T]) []View[any] {
	out := make([]View[any], len(vs))
	for k, v := range vs {
		out[k] = erase(v)
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
