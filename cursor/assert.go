package cursor

import "fmt"

// LogicError reports a violated precondition: moving past a boundary,
// comparing cursors of different ranges, building an adaptor from invalid
// arguments. It is raised with panic and never returned as an error value,
// because it always signals a programming mistake in the caller.
type LogicError struct {
	Op  string
	Msg string
}

func (e *LogicError) Error() string {
	return "lazyseq: " + e.Op + ": " + e.Msg
}

// Assert panics with a *LogicError when cond is false and assertions are
// compiled in.
func Assert(cond bool, op, msg string) {
	if assertions && !cond {
		panic(&LogicError{Op: op, Msg: msg})
	}
}

// Assertf is Assert with a formatted message. The message is only built on failure.
func Assertf(cond bool, op, format string, args ...any) {
	if assertions && !cond {
		panic(&LogicError{Op: op, Msg: fmt.Sprintf(format, args...)})
	}
}

// Fail always panics with a *LogicError, regardless of the build mode.
// It guards operations that cannot produce any meaningful result.
func Fail(op, msg string) {
	panic(&LogicError{Op: op, Msg: msg})
}

// AssertionsEnabled reports whether precondition checks are compiled in.
func AssertionsEnabled() bool { return assertions }
