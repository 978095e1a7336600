package views_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"lazyseq/cursor"
	"lazyseq/views"
)

func nested[T any](v views.View[views.View[T]]) [][]T {
	return views.ToSlice(views.Map(v, views.ToSlice[T]))
}

func backward[T any](v views.View[T]) []T {
	var out []T
	for x := range v.Backward() {
		out = append(out, x)
	}
	return out
}

func checkSlice[T any](t *testing.T, want []T, v views.View[T]) {
	t.Helper()
	if diff := cmp.Diff(want, views.ToSlice(v)); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
}

func requireLogicError(t *testing.T, fn func()) {
	t.Helper()
	if !cursor.AssertionsEnabled() {
		t.Skip("assertions compiled out")
	}
	defer func() {
		_, ok := recover().(*cursor.LogicError)
		assert.True(t, ok, "expected a *cursor.LogicError")
	}()
	fn()
}

// requireLogicOp is requireLogicError that also checks which adaptor failed.
func requireLogicOp(t *testing.T, op string, fn func()) {
	t.Helper()
	if !cursor.AssertionsEnabled() {
		t.Skip("assertions compiled out")
	}
	defer func() {
		err, ok := recover().(*cursor.LogicError)
		if assert.True(t, ok, "expected a *cursor.LogicError") {
			assert.Equal(t, op, err.Op)
		}
	}()
	fn()
}
