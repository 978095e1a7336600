package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the element type accepted by the arithmetic reducers.
type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean of seq, or false when seq is empty.
func Mean[T Number](seq iter.Seq[T]) (float64, bool) {
	var total float64
	n := 0
	for v := range seq {
		total += float64(v)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

func Min[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var min T
	first := true
	for v := range seq {
		if first || v < min {
			min = v
			first = false
		}
	}
	return min, !first
}

func Max[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var max T
	first := true
	for v := range seq {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max, !first
}
