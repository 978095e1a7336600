package lists_test

import (
	"cmp"
	"errors"
	"slices"
	"testing"

	"lazyseq/cursor"
	"lazyseq/lists"
)

// RunListTests is a reusable test suite for the List interface.
// It can be used to test any implementation of lists.List[T].
func RunListTests(t *testing.T, name string, factory func(vals ...int) lists.List[int]) {
	t.Helper()

	t.Run(name+"/Basic", func(t *testing.T) {
		l := factory()
		if !l.IsEmpty() {
			t.Error("New list should be empty")
		}
		if l.Size() != 0 {
			t.Errorf("New list size should be 0, got %d", l.Size())
		}

		l.Add(10, 20, 30)
		if l.Size() != 3 {
			t.Errorf("Size should be 3, got %d", l.Size())
		}
		if v, err := l.Get(1); err != nil || v != 20 {
			t.Errorf("Get(1) = %d, %v; want 20, nil", v, err)
		}
		if err := l.Set(1, 25); err != nil {
			t.Errorf("Set(1) failed: %v", err)
		}
		if v, _ := l.Get(1); v != 25 {
			t.Errorf("Get(1) after Set = %d, want 25", v)
		}
		if _, err := l.Get(3); !errors.Is(err, lists.ErrIndexOutOfBounds) {
			t.Errorf("Get(3) error = %v, want ErrIndexOutOfBounds", err)
		}
		if err := l.Set(-1, 0); !errors.Is(err, lists.ErrIndexOutOfBounds) {
			t.Errorf("Set(-1) error = %v, want ErrIndexOutOfBounds", err)
		}

		l.Clear()
		if !l.IsEmpty() {
			t.Error("List should be empty after Clear")
		}
	})

	t.Run(name+"/Sort", func(t *testing.T) {
		l := factory(5, 3, 9, 1, 3)
		l.Sort(cmp.Compare[int])
		if got := l.ToSlice(); !slices.Equal(got, []int{1, 3, 3, 5, 9}) {
			t.Errorf("Sort = %v", got)
		}
	})

	t.Run(name+"/Cursor", func(t *testing.T) {
		l := factory(1, 2, 3)
		var got []int
		end := l.End()
		for c := l.Begin(); !end.Reached(c); c.Next() {
			got = append(got, c.Value())
		}
		if !slices.Equal(got, []int{1, 2, 3}) {
			t.Errorf("cursor walk = %v", got)
		}
		if n := cursor.Count(l.Begin(), end); n != 3 {
			t.Errorf("Count = %d, want 3", n)
		}
	})

	t.Run(name+"/EmptyCursor", func(t *testing.T) {
		l := factory()
		if !l.End().Reached(l.Begin()) {
			t.Error("begin of an empty list must equal its end")
		}
	})

	t.Run(name+"/IndexOf", func(t *testing.T) {
		l := factory(4, 5, 6)
		if i := lists.IndexOf(l, 6); i != 2 {
			t.Errorf("IndexOf(6) = %d", i)
		}
		if i := lists.IndexOf(l, 7); i != -1 {
			t.Errorf("IndexOf(7) = %d", i)
		}
	})
}

func TestArrayList(t *testing.T) {
	RunListTests(t, "ArrayList", func(vals ...int) lists.List[int] {
		l := lists.NewArrayList[int](len(vals))
		l.Add(vals...)
		return l
	})
}

func TestLinkedList(t *testing.T) {
	RunListTests(t, "LinkedList", func(vals ...int) lists.List[int] {
		l := lists.NewLinkedList[int]()
		l.Add(vals...)
		return l
	})
}

func TestArrayList_Grow(t *testing.T) {
	l := lists.NewArrayList[string](0)
	l.Grow(10)
	if l.Cap() < 10 {
		t.Errorf("Cap after Grow(10) = %d", l.Cap())
	}
	if !l.IsEmpty() {
		t.Error("Grow must not add elements")
	}
}

func TestArrayList_RandomAccess(t *testing.T) {
	l := lists.NewArrayList[int](4)
	l.Add(1, 2, 3, 4)
	r, ok := cursor.AsRandom(l.Begin())
	if !ok {
		t.Fatal("ArrayList cursor should be random-access")
	}
	r.Jump(3)
	if r.Value() != 4 {
		t.Errorf("after Jump(3) = %d", r.Value())
	}
}

func TestLinkedList_LargeSort(t *testing.T) {
	l := lists.NewLinkedList[int]()
	want := make([]int, 0, 200)
	for i := 200; i > 0; i-- {
		l.Add(i)
		want = append(want, 201-i)
	}
	l.Sort(cmp.Compare[int])
	if got := l.ToSlice(); !slices.Equal(got, want) {
		t.Errorf("merge sort produced %v", got[:10])
	}
	var back []int
	for v := range l.Backward() {
		back = append(back, v)
	}
	slices.Reverse(back)
	if !slices.Equal(back, want) {
		t.Error("prev links broken after merge sort")
	}
}

func TestLinkedList_String(t *testing.T) {
	l := lists.NewLinkedList[int]()
	l.Add(1, 2)
	l.AddFirst(0)
	if s := l.String(); s != "[0 1 2]" {
		t.Errorf("String() = %q", s)
	}
}
