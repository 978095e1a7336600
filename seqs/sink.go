package seqs

import "iter"

func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

func Last[T any](seq iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	return last, found
}

func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}

func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// Reduce folds seq from the left starting at initial.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// Find returns the first element satisfying predicate.
func Find[T any](seq iter.Seq[T], predicate func(T) bool) (T, bool) {
	for v := range seq {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// IndexFunc returns the position of the first element satisfying predicate, or -1.
func IndexFunc[T any](seq iter.Seq[T], predicate func(T) bool) int {
	i := 0
	for v := range seq {
		if predicate(v) {
			return i
		}
		i++
	}
	return -1
}

func Contains[T comparable](seq iter.Seq[T], target T) bool {
	return Any(seq, func(v T) bool { return v == target })
}

// EqualFunc reports whether both sequences have the same length and eq holds
// pairwise. Both sequences are consumed in lockstep.
func EqualFunc[A, B any](a iter.Seq[A], b iter.Seq[B], eq func(A, B) bool) bool {
	nextB, stopB := iter.Pull(b)
	defer stopB()

	for va := range a {
		vb, ok := nextB()
		if !ok || !eq(va, vb) {
			return false
		}
	}
	_, ok := nextB()
	return !ok
}
