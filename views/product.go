package views

import "lazyseq/cursor"

// productCore is an odometer: the last input varies fastest and wraps back
// to its first element, carrying into the input before it. The end state has
// the first input at its end and every other input at its beginning.
type productCore struct {
	cs     []cursor.Cursor[any]
	firsts []cursor.Cursor[any]
	ends   []cursor.End[any]
	lens   []int
}

// product enumerates the cartesian product of vs in row-major order.
// Any empty input makes the product empty.
func product(vs []View[any]) View[[]any] {
	cursor.Assertf(len(vs) >= 2, "product", "needs at least two inputs, got %d", len(vs))
	n := len(vs)
	tags := make([]cursor.Tag, n)
	begin := &productCore{
		cs:     make([]cursor.Cursor[any], n),
		firsts: make([]cursor.Cursor[any], n),
		ends:   make([]cursor.End[any], n),
	}
	closed, empty := true, false
	for k, v := range vs {
		// inputs after the first are restarted and retreated from their end
		tags[k] = cursor.ClosedTag(v.begin, v.end)
		begin.cs[k] = v.Begin()
		begin.firsts[k] = v.begin
		begin.ends[k] = v.end
		closed = closed && v.Closed()
		empty = empty || v.Empty()
	}
	tags[0] = vs[0].Tag()
	tag := cursor.Min(tags...)

	if closed {
		begin.lens = make([]int, n)
		for k, v := range vs {
			begin.lens[k] = v.Len()
		}
	}
	last, ok := vs[0].end.Cursor()
	if empty {
		if ok {
			begin.cs[0] = last.Clone()
		} else {
			for !begin.ends[0].Reached(begin.cs[0]) {
				begin.cs[0].Next()
			}
		}
	}
	if !ok {
		return unbounded[[]any](begin, tag)
	}
	end := begin.Clone().(*productCore)
	end.cs[0] = last
	for k := 1; k < n; k++ {
		end.cs[k] = vs[k].Begin()
	}
	return bounded[[]any](begin, end, tag)
}

func (p *productCore) Value() []any {
	cursor.Assert(!p.Done(), "product", "dereference past end")
	out := make([]any, len(p.cs))
	for k, c := range p.cs {
		out[k] = c.Value()
	}
	return out
}

func (p *productCore) Next() {
	cursor.Assert(!p.Done(), "product", "advance past end")
	for k := len(p.cs) - 1; ; k-- {
		p.cs[k].Next()
		if k == 0 || !p.ends[k].Reached(p.cs[k]) {
			return
		}
		p.cs[k] = p.firsts[k].Clone()
	}
}

func (p *productCore) Prev() {
	for k := len(p.cs) - 1; k > 0; k-- {
		if !p.cs[k].Equal(p.firsts[k]) {
			cursor.MustBidi(p.cs[k]).Prev()
			return
		}
		last, ok := p.ends[k].Cursor()
		cursor.Assert(ok, "product", "input has no concrete end")
		cursor.MustBidi(last).Prev()
		p.cs[k] = last
	}
	cursor.Assert(!p.cs[0].Equal(p.firsts[0]), "product", "retreat before begin")
	cursor.MustBidi(p.cs[0]).Prev()
}

// strides returns the flat-index weight of every input and the product length.
func (p *productCore) strides() ([]int, int) {
	s := make([]int, len(p.lens))
	w := 1
	for k := len(p.lens) - 1; k >= 0; k-- {
		s[k] = w
		w *= p.lens[k]
	}
	return s, w
}

func (p *productCore) index() int {
	s, _ := p.strides()
	i := 0
	for k, c := range p.cs {
		i += cursor.MustRandom(c).Difference(p.firsts[k]) * s[k]
	}
	return i
}

func (p *productCore) Jump(n int) {
	_, total := p.strides()
	t := p.index() + n
	cursor.Assertf(t >= 0 && t <= total, "product", "jump to %d leaves [0, %d]", t, total)
	pos := make([]int, len(p.cs))
	if t == total {
		pos[0] = p.lens[0]
	} else {
		for k := len(p.cs) - 1; k >= 0; k-- {
			pos[k] = t % p.lens[k]
			t /= p.lens[k]
		}
	}
	for k, c := range p.cs {
		r := cursor.MustRandom(c)
		r.Jump(pos[k] - r.Difference(p.firsts[k]))
	}
}

// Difference is the distance between flat row-major indices.
func (p *productCore) Difference(other cursor.Core[[]any]) int {
	return p.index() - peer[*productCore]("product", other).index()
}

func (p *productCore) Equal(other cursor.Core[[]any]) bool {
	o := peer[*productCore]("product", other)
	for k, c := range p.cs {
		if !c.Equal(o.cs[k]) {
			return false
		}
	}
	return true
}

func (p *productCore) Done() bool { return p.ends[0].Reached(p.cs[0]) }

func (p *productCore) Clone() cursor.Core[[]any] {
	cs := make([]cursor.Cursor[any], len(p.cs))
	for k, c := range p.cs {
		cs[k] = c.Clone()
	}
	return &productCore{cs: cs, firsts: p.firsts, ends: p.ends, lens: p.lens}
}

// Product returns every pair (a_i, b_j) in row-major order: b varies fastest.
func Product[A, B any](a View[A], b View[B]) View[Pair[A, B]] {
	return Map(product([]View[any]{erase(a), erase(b)}), func(vs []any) Pair[A, B] {
		return Pair[A, B]{V1: as[A](vs[0]), V2: as[B](vs[1])}
	})
}

// Product3 is Product over three inputs.
func Product3[A, B, C any](a View[A], b View[B], c View[C]) View[Triple[A, B, C]] {
	return Map(product([]View[any]{erase(a), erase(b), erase(c)}), func(vs []any) Triple[A, B, C] {
		return Triple[A, B, C]{V1: as[A](vs[0]), V2: as[B](vs[1]), V3: as[C](vs[2])}
	})
}

// ProductN is Product over two or more inputs of the same element type.
func ProductN[T any](vs ...View[T]) View[[]T] {
	return Map(product(eraseAll(vs)), func(xs []any) []T {
		out := make([]T, len(xs))
		for k, x := range xs {
			out[k] = as[T](x)
		}
		return out
	})
}
