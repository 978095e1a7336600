/*
Package views composes lazy, pull-based views over slices, containers,
iterators and other views.

A [View] is a pair of cursors: a begin cursor and an end that is either a
concrete cursor of the same adaptor or the stateless sentinel. Adaptors such
as [Map], [Filter], [Chunks], [Zip] or [Product] wrap the cursors of their
inputs without copying or computing anything; work happens only when the
result is iterated or materialized.

# Capabilities

Every view is single-pass, bidirectional or random-access. An adaptor exposes
the weakest of its own algorithm's capability and the capability of each
input, so a pipeline over a slice keeps O(1) Len and At until a filter or a
scan is inserted. [View.Tag] reports the result.

	words := views.SplitString("hello world; this is a message;", ";")
	for w := range words.All() {
		fmt.Println(w)
	}

# Errors

Misuse such as retreating before the first element, building windows of size
zero or a product of a single operand panics with a *cursor.LogicError. The
only recoverable error is [ErrEmptyOptional].
*/
package views
