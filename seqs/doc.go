/*
Package seqs connects Go 1.23+ iterators (iter.Seq) with the cursor model of this module.

It provides:

  - **Pull cursors**: [Cursor] turns any iter.Seq into a single-pass cursor whose
    clones replay the same values independently.
  - **Reducers**: [Sum], [Mean], [Min], [Max], [Reduce], [First], [Last], [Find],
    [Any], [All], [Count], [Contains], [IndexFunc] and [EqualFunc] consume an
    iter.Seq eagerly. Views expose their elements through iter.Seq and delegate
    to these reducers.

# Memory

A cursor from [Cursor] keeps every value pulled since the oldest live clone of
that cursor. Holding on to the first cursor of a long stream therefore retains
the whole stream; drop it once a replay is no longer needed.
*/
package seqs
