package cursor

// Core is the minimal primitive set an adaptor implements.
// Equal receives the core of the other cursor, never a synthesized wrapper.
type Core[T any] interface {
	Value() T
	Next()
	Equal(other Core[T]) bool
	Done() bool
	Clone() Core[T]
}

// BidiCore is a Core that can retreat.
type BidiCore[T any] interface {
	Core[T]
	Prev()
}

// RandomCore is a BidiCore with offsets and distances.
type RandomCore[T any] interface {
	BidiCore[T]
	Jump(n int)
	Difference(other Core[T]) int
}

// CoreTag reports the strongest capability c implements.
func CoreTag[T any](c Core[T]) Tag {
	switch c.(type) {
	case RandomCore[T]:
		return RandomAccess
	case BidiCore[T]:
		return Bidirectional
	default:
		return SinglePass
	}
}

// Synthesize wraps c into a cursor exposing min(tag, CoreTag(c)).
// Operations above that capability do not exist on the result.
func Synthesize[T any](c Core[T], tag Tag) Cursor[T] {
	switch Min(tag, CoreTag(c)) {
	case RandomAccess:
		return SynthesizeRandom(c.(RandomCore[T]))
	case Bidirectional:
		return SynthesizeBidi(c.(BidiCore[T]))
	default:
		return &forward[T]{core: c}
	}
}

// SynthesizeBidi is Synthesize with a statically bidirectional result.
func SynthesizeBidi[T any](c BidiCore[T]) Bidi[T] {
	return &bidirectional[T]{forward: forward[T]{core: c}, bc: c}
}

// SynthesizeRandom is Synthesize with a statically random-access result.
func SynthesizeRandom[T any](c RandomCore[T]) Random[T] {
	return &randomAccess[T]{bidirectional: bidirectional[T]{forward: forward[T]{core: c}, bc: c}, rc: c}
}

type unwrapper[T any] interface {
	unwrap() Core[T]
}

// CoreOf returns the core behind a synthesized cursor.
// It fails when c was not produced by Synthesize.
func CoreOf[T any](c Cursor[T]) Core[T] {
	u, ok := c.(unwrapper[T])
	if !ok {
		Fail("compare", "cursor was not synthesized from a core")
	}
	return u.unwrap()
}

type forward[T any] struct {
	core Core[T]
}

func (f *forward[T]) Value() T { return f.core.Value() }
func (f *forward[T]) Next() { f.core.Next() }
func (f *forward[T]) Done() bool { return f.core.Done() }
func (f *forward[T]) unwrap() Core[T] { return f.core }

func (f *forward[T]) Equal(other Cursor[T]) bool {
	return f.core.Equal(CoreOf(other))
}

func (f *forward[T]) Clone() Cursor[T] {
	return &forward[T]{core: f.core.Clone()}
}

type bidirectional[T any] struct {
	forward[T]
	bc BidiCore[T]
}

func (b *bidirectional[T]) Prev() { b.bc.Prev() }

func (b *bidirectional[T]) Clone() Cursor[T] {
	return SynthesizeBidi(b.bc.Clone().(BidiCore[T]))
}

type randomAccess[T any] struct {
	bidirectional[T]
	rc RandomCore[T]
}

func (r *randomAccess[T]) Jump(n int) {
	if n != 0 {
		r.rc.Jump(n)
	}
}

func (r *randomAccess[T]) Difference(other Cursor[T]) int {
	return r.rc.Difference(CoreOf(other))
}

func (r *randomAccess[T]) Clone() Cursor[T] {
	return SynthesizeRandom(r.rc.Clone().(RandomCore[T]))
}
