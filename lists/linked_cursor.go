package lists

import "lazyseq/cursor"

// nodeCore is a bidirectional position inside a LinkedList.
// It may rest on the tail sentinel (the end position) but never on the head sentinel.
type nodeCore[T any] struct {
	current *node[T]
	list    *LinkedList[T]
}

// IsValid reports whether the cursor is at an element of the list.
// removed nodes have nil links, sentinels are not elements.
func (nc *nodeCore[T]) IsValid() bool {
	return nc.current != nil && nc.current.next != nil &&
		nc.current != nc.list.headSentinel && nc.current != nc.list.tailSentinel
}

func (nc *nodeCore[T]) Value() T {
	cursor.Assert(nc.IsValid(), "linked list", "dereference outside the list")
	return nc.current.val
}

// Next stops at the tail sentinel so Prev can recover from the end.
func (nc *nodeCore[T]) Next() {
	cursor.Assert(nc.current != nc.list.tailSentinel, "linked list", "advance past end")
	nc.current = nc.current.next
}

func (nc *nodeCore[T]) Prev() {
	cursor.Assert(nc.current.prev != nc.list.headSentinel, "linked list", "retreat before begin")
	nc.current = nc.current.prev
}

func (nc *nodeCore[T]) Done() bool {
	return nc.current == nc.list.tailSentinel
}

func (nc *nodeCore[T]) Equal(other cursor.Core[T]) bool {
	return nc.current == other.(*nodeCore[T]).current
}

func (nc *nodeCore[T]) Clone() cursor.Core[T] {
	cp := *nc
	return &cp
}

// Begin returns a bidirectional cursor at the first element,
// or at the end when the list is empty.
func (ll *LinkedList[T]) Begin() cursor.Cursor[T] {
	return ll.cursorAt(ll.headSentinel.next)
}

// End returns the concrete end of the list: a cursor on the tail sentinel.
func (ll *LinkedList[T]) End() cursor.End[T] {
	return cursor.At[T](ll.cursorAt(ll.tailSentinel))
}

// CursorAt returns a cursor at index, 0 <= index <= Size().
// Note: This is an O(N) operation
func (ll *LinkedList[T]) CursorAt(index int) (cursor.Bidi[T], error) {
	if index < 0 || index > ll.size {
		return nil, ErrIndexOutOfBounds
	}
	return ll.cursorAt(ll.nodeAt(index)), nil
}

func (ll *LinkedList[T]) cursorAt(n *node[T]) cursor.Bidi[T] {
	return cursor.SynthesizeBidi[T](&nodeCore[T]{current: n, list: ll})
}
