package views

import "lazyseq/cursor"

// chunkCore is a window [c, sub) over the input. i is the input offset of c.
type chunkCore[T any] struct {
	c, sub cursor.Cursor[T]
	end    cursor.End[T]
	i      int
	w      int
	size   int
}

// Chunks splits v into consecutive sub-views of size elements; the last one
// may be shorter. Chunk distances are computed by ceiling division so random
// access is kept.
func Chunks[T any](v View[T], size int) View[View[T]] {
	cursor.Assertf(size > 0, "chunks", "size must be positive, got %d", size)
	begin := &chunkCore[T]{c: v.Begin(), end: v.end, size: size}
	begin.measure()
	if last, ok := v.end.Cursor(); ok {
		end := &chunkCore[T]{c: last, sub: last.Clone(), end: v.end, i: v.Len(), size: size}
		return bounded[View[T]](begin, end, v.Tag())
	}
	return unbounded[View[T]](begin, v.Tag())
}

func (k *chunkCore[T]) measure() {
	k.sub = k.c.Clone()
	k.w = cursor.AdvanceBounded(k.sub, k.size, k.end)
}

func (k *chunkCore[T]) ordinal() int { return (k.i + k.size - 1) / k.size }

func (k *chunkCore[T]) Value() View[T] {
	cursor.Assert(!k.Done(), "chunks", "dereference past end")
	return View[T]{begin: k.c.Clone(), end: cursor.At(k.sub.Clone())}
}

func (k *chunkCore[T]) Next() {
	cursor.Assert(!k.Done(), "chunks", "advance past end")
	k.c = k.sub
	k.i += k.w
	k.measure()
}

func (k *chunkCore[T]) Prev() {
	back := k.i % k.size
	if back == 0 {
		back = k.size
	}
	cursor.Assert(k.i >= back, "chunks", "retreat before begin")
	k.sub = k.c.Clone()
	cursor.Retreat(cursor.MustBidi(k.c), back)
	k.i -= back
	k.w = back
}

func (k *chunkCore[T]) Jump(n int) {
	target := (k.ordinal() + n) * k.size
	if target > k.i {
		k.i += cursor.AdvanceBounded(k.c, target-k.i, k.end)
	} else {
		cursor.Assert(target >= 0, "chunks", "jump before begin")
		cursor.Retreat(cursor.MustBidi(k.c), k.i-target)
		k.i = target
	}
	k.measure()
}

func (k *chunkCore[T]) Difference(other cursor.Core[View[T]]) int {
	return k.ordinal() - peer[*chunkCore[T]]("chunks", other).ordinal()
}

func (k *chunkCore[T]) Done() bool { return k.end.Reached(k.c) }

func (k *chunkCore[T]) Equal(other cursor.Core[View[T]]) bool {
	return k.c.Equal(peer[*chunkCore[T]]("chunks", other).c)
}

func (k *chunkCore[T]) Clone() cursor.Core[View[T]] {
	cp := *k
	cp.c, cp.sub = k.c.Clone(), k.sub.Clone()
	return &cp
}

// windowCore is a full window [c, sub). When fewer than size elements remain
// the cursor moves to the end of the input, so every end state is the same.
type windowCore[T any] struct {
	c, sub     cursor.Cursor[T]
	end        cursor.End[T]
	i          int
	size, step int
}

// Windows returns the sliding windows of size elements, each starting step
// elements after the previous one. Incomplete windows are dropped.
func Windows[T any](v View[T], size, step int) View[View[T]] {
	cursor.Assertf(size > 0, "windows", "size must be positive, got %d", size)
	cursor.Assertf(step > 0, "windows", "step must be positive, got %d", step)
	begin := &windowCore[T]{c: v.Begin(), end: v.end, size: size, step: step}
	begin.measure()
	if last, ok := v.end.Cursor(); ok {
		end := &windowCore[T]{c: last, sub: last.Clone(), end: v.end, i: v.Len(), size: size, step: step}
		return bounded[View[T]](begin, end, v.Tag())
	}
	return unbounded[View[T]](begin, v.Tag())
}

func (w *windowCore[T]) measure() {
	w.sub = w.c.Clone()
	if n := cursor.AdvanceBounded(w.sub, w.size, w.end); n < w.size {
		w.c = w.sub.Clone()
		w.i += n
	}
}

// count returns the number of full windows over n elements.
func (w *windowCore[T]) count(n int) int {
	if n < w.size {
		return 0
	}
	return (n-w.size)/w.step + 1
}

func (w *windowCore[T]) ordinal() int {
	if w.Done() {
		return w.count(w.i)
	}
	return w.i / w.step
}

func (w *windowCore[T]) Value() View[T] {
	cursor.Assert(!w.Done(), "windows", "dereference past end")
	return View[T]{begin: w.c.Clone(), end: cursor.At(w.sub.Clone())}
}

func (w *windowCore[T]) Next() {
	cursor.Assert(!w.Done(), "windows", "advance past end")
	w.i += cursor.AdvanceBounded(w.c, w.step, w.end)
	w.measure()
}

func (w *windowCore[T]) seekTo(start int) {
	if start > w.i {
		w.i += cursor.AdvanceBounded(w.c, start-w.i, w.end)
	} else {
		cursor.Retreat(cursor.MustBidi(w.c), w.i-start)
		w.i = start
	}
	w.measure()
}

func (w *windowCore[T]) Prev() {
	k := w.ordinal()
	cursor.Assert(k > 0, "windows", "retreat before begin")
	w.seekTo((k - 1) * w.step)
}

func (w *windowCore[T]) Jump(n int) {
	k := w.ordinal() + n
	cursor.Assert(k >= 0, "windows", "jump before begin")
	w.seekTo(k * w.step)
}

func (w *windowCore[T]) Difference(other cursor.Core[View[T]]) int {
	return w.ordinal() - peer[*windowCore[T]]("windows", other).ordinal()
}

func (w *windowCore[T]) Done() bool { return w.end.Reached(w.c) }

func (w *windowCore[T]) Equal(other cursor.Core[View[T]]) bool {
	return w.c.Equal(peer[*windowCore[T]]("windows", other).c)
}

func (w *windowCore[T]) Clone() cursor.Core[View[T]] {
	cp := *w
	cp.c, cp.sub = w.c.Clone(), w.sub.Clone()
	return &cp
}
