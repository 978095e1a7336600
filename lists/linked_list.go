package lists

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked list bounded by two sentinel nodes.
// Its cursors are bidirectional; the tail sentinel is the end position.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	return ll
}

// insertAfter links newNode right after at.
func (ll *LinkedList[T]) insertAfter(at *node[T], newNode *node[T]) {
	newNode.prev = at
	newNode.next = at.next
	at.next.prev = newNode
	at.next = newNode
	ll.size++
}

// nodeAt returns the node at index, walking from the closer end.
// index == size yields the tail sentinel. Bounds are checked by the caller.
func (ll *LinkedList[T]) nodeAt(index int) *node[T] {
	if index == ll.size {
		return ll.tailSentinel
	}
	if index < ll.size/2 {
		current := ll.headSentinel.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tailSentinel.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

// Add appends values to the end of the list.
func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		ll.insertAfter(ll.tailSentinel.prev, &node[T]{val: value})
	}
}

// AddFirst prepends value.
func (ll *LinkedList[T]) AddFirst(value T) {
	ll.insertAfter(ll.headSentinel, &node[T]{val: value})
}

func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, ErrIndexOutOfBounds
	}
	return ll.nodeAt(index).val, nil
}

func (ll *LinkedList[T]) Set(index int, value T) error {
	if index < 0 || index >= ll.size {
		return ErrIndexOutOfBounds
	}
	ll.nodeAt(index).val = value
	return nil
}

// Sort sorts the list in place. The sort is stable.
// Cursors stay attached to their nodes, so they follow the moved values.
func (ll *LinkedList[T]) Sort(compare func(a, b T) int) {
	if ll.size < 2 {
		return
	}

	// small lists: sort the values through a slice and write them back
	if ll.size < 64 {
		vals := make([]T, 0, ll.size)
		current := ll.headSentinel.next
		for current != ll.tailSentinel {
			vals = append(vals, current.val)
			current = current.next
		}
		slices.SortStableFunc(vals, compare)
		current = ll.headSentinel.next
		for _, v := range vals {
			current.val = v
			current = current.next
		}
		return
	}

	// detach from the sentinels and sort the bare chain
	first := ll.headSentinel.next
	ll.tailSentinel.prev.next = nil

	sortedHead := mergeSort(first, compare)

	// relink prev pointers and sentinels
	current := sortedHead
	prev := ll.headSentinel
	ll.headSentinel.next = current

	for current != nil {
		current.prev = prev
		prev = current
		current = current.next
	}

	prev.next = ll.tailSentinel
	ll.tailSentinel.prev = prev
}

func mergeSort[T any](head *node[T], compare func(a, b T) int) *node[T] {
	if head == nil || head.next == nil {
		return head
	}

	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	mid := slow.next
	slow.next = nil

	left := mergeSort(head, compare)
	right := mergeSort(mid, compare)

	return merge(left, right, compare)
}

func merge[T any](a, b *node[T], compare func(a, b T) int) *node[T] {
	dummy := &node[T]{}
	tail := dummy

	for a != nil && b != nil {
		if compare(a.val, b.val) <= 0 {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}

	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}

	return dummy.next
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	// unlink every node so detached cursors cannot walk back into the list
	current := ll.headSentinel.next
	for current != ll.tailSentinel {
		next := current.next
		current.prev = nil
		current.next = nil
		current = next
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.size = 0
}

func (ll *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, ll.size)
	for v := range ll.Values() {
		out = append(out, v)
	}
	return out
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

// Backward iterates the elements back to front.
func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.tailSentinel.prev; current != ll.headSentinel; current = current.prev {
			if !yield(current.val) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		fmt.Fprintf(&sb, "%v", current.val)
		if current.next != ll.tailSentinel {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
