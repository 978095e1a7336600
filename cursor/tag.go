package cursor

// Tag is the capability level of a cursor.
type Tag uint8

const (
	// SinglePass cursors only move forward.
	SinglePass Tag = iota
	// Bidirectional cursors also move backward.
	Bidirectional
	// RandomAccess cursors jump by arbitrary offsets and measure distances in O(1).
	RandomAccess
)

func (t Tag) String() string {
	switch t {
	case SinglePass:
		return "single-pass"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	default:
		return "unknown"
	}
}

// Min returns the weakest of tags. With no tags it returns RandomAccess,
// the neutral element of the ordering.
func Min(tags ...Tag) Tag {
	m := RandomAccess
	for _, t := range tags {
		if t < m {
			m = t
		}
	}
	return m
}
