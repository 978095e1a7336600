package views_test

import (
	"slices"
	"testing"

	"lazyseq/views"
)

// heavyCalc simulates a CPU intensive operation
func heavyCalc(x int) int {
	for i := range 1000 {
		x = (x + i*i) % 10000
	}
	return x
}

func eagerMap(in []int, fn func(int) int) []int {
	out := make([]int, len(in))
	for i, x := range in {
		out[i] = fn(x)
	}
	return out
}

func eagerFilter(in []int, keep func(int) bool) []int {
	var out []int
	for _, x := range in {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// BenchmarkUnified_Map compares a lazy Map view with an eager slice pass.
func BenchmarkUnified_Map(b *testing.B) {
	size := 100_000
	input := make([]int, size)
	for i := range size {
		input[i] = i
	}

	workloads := []struct {
		name      string
		transform func(int) int
	}{
		{name: "Light", transform: func(x int) int { return x * 2 }},
		{name: "Heavy", transform: heavyCalc},
	}

	for _, wl := range workloads {
		b.Run(wl.name, func(b *testing.B) {
			b.Run("Slice", func(b *testing.B) {
				for b.Loop() {
					_ = eagerMap(input, wl.transform)
				}
			})

			b.Run("View", func(b *testing.B) {
				for b.Loop() {
					for range views.Map(views.FromSlice(input), wl.transform).All() {
					}
				}
			})

			b.Run("View_Stream", func(b *testing.B) {
				for b.Loop() {
					for range views.Map(views.FromSeq(slices.Values(input)), wl.transform).All() {
					}
				}
			})
		})
	}
}

// BenchmarkUnified_Filter compares a lazy Filter view with an eager slice pass.
func BenchmarkUnified_Filter(b *testing.B) {
	size := 100_000
	input := make([]int, size)
	for i := range size {
		input[i] = i
	}

	b.Run("Slice", func(b *testing.B) {
		for b.Loop() {
			_ = eagerFilter(input, func(x int) bool { return x%2 == 0 })
		}
	})
	b.Run("View", func(b *testing.B) {
		for b.Loop() {
			for range views.Filter(views.FromSlice(input), func(x int) bool { return x%2 == 0 }).All() {
			}
		}
	})
}

// BenchmarkPipeline measures a chunk, flatten and zip pipeline end to end.
func BenchmarkPipeline(b *testing.B) {
	input := views.ToSlice(views.Range(0, 10_000, 1))
	for b.Loop() {
		v := views.Zip(views.Flatten(views.Chunks(views.FromSlice(input), 64)), views.Loop(views.Of(true, false)))
		_ = views.CountFunc(v, func(p views.Pair[int, bool]) bool { return p.V2 })
	}
}

// BenchmarkRandomAccess measures Jump on a product view.
func BenchmarkRandomAccess(b *testing.B) {
	v := views.ProductN(views.Range(0, 100, 1), views.Range(0, 100, 1))
	for b.Loop() {
		_, _ = v.At(4_999)
	}
}
