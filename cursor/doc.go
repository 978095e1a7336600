/*
Package cursor defines the positional model every lazy view in this module is built on.

A cursor is a value-type position over a sequence. Its capability is one of
three tags, ordered [SinglePass] < [Bidirectional] < [RandomAccess], and each tag
has its own interface:

  - [Cursor]: Value, Next, Equal, Done, Clone
  - [Bidi]: adds Prev
  - [Random]: adds Jump and Difference

Adaptors do not implement these interfaces directly. They implement the smaller
primitive set of [Core] (optionally [BidiCore] or [RandomCore]) and hand it to
[Synthesize], which returns a cursor exposing exactly the operations of the
requested capability and nothing more. A single-pass result has no Prev method,
so code typed against [Bidi] or [Random] cannot be assembled around it.

# Ends and sentinels

A range is a begin cursor plus an [End]. The end is either a concrete cursor of
the same adaptor type, or the stateless [Sentinel], in which case termination is
decided by the cursor's own Done flag:

	begin := cursor.Slice([]int{1, 2, 3})
	end := cursor.SentinelEnd[int]()
	for c := begin.Clone(); !end.Reached(c); c.Next() {
		fmt.Println(c.Value())
	}

A range whose end is the sentinel is never treated as random-access, see [RangeTag].

# Preconditions

Out-of-range movement and other contract violations panic with a [*LogicError]
while assertions are compiled in (the default). Building with the
lazyseq_noassert tag removes the checks.
*/
package cursor
