package peg

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// matchFailure is the recoverable error every atom's match step
// returns on failure. It is always caught at some boundary — an
// Alternative trying its next child, a Repetition stopping its loop,
// a Lookahead inverting it, or the driver turning the last one into a
// FailedError.
type matchFailure struct {
	message string
	pos     int
}

func (e *matchFailure) Error() string { return e.message }

func newMatchFailure(cur Input, msg string) *matchFailure {
	return &matchFailure{message: msg, pos: cur.Pos()}
}

// newMatchFailureAt builds a matchFailure against an explicit position
// rather than cur's current one — for callers that have already read
// past the failure site (e.g. a literal or single-rune matcher that
// reads before it can tell whether the read matched) and need to
// report the entry position instead.
func newMatchFailureAt(pos int, msg string) *matchFailure {
	return &matchFailure{message: msg, pos: pos}
}

// FailedError is raised by Grammar.Parse when the root atom never
// matched. Message is the cause recorded against the root atom, with
// position appended; deeper causes are reachable through ErrorTree.
type FailedError struct {
	Message string
}

func (e *FailedError) Error() string { return e.Message }

// IncompleteParseError is raised by Grammar.Parse when the root atom
// matched but input remained ("incomplete parse").
type IncompleteParseError struct {
	Message string
}

func (e *IncompleteParseError) Error() string { return e.Message }

// ProgrammerError marks a fatal grammar-construction bug rather than
// an input-dependent parse outcome: an Entity whose thunk resolved to
// nil, or a flattener branch reached with a pair merge-fold has no
// rule for. These panic instead of returning an error, the
// conventional way Go signals an invariant violation rather than
// threading it through every caller's error return.
type ProgrammerError struct {
	Message string
}

func (e ProgrammerError) Error() string { return e.Message }

func panicProgrammerError(format string, args ...any) {
	panic(ProgrammerError{Message: fmt.Sprintf(format, args...)})
}

// formatCause appends "at line L char C." to msg, computed from pos
// against cur's prefix. "char" counts code points, not bytes —
// cur.SliceTo is already code-point indexed (StringInput is
// []rune-backed), so this only has to count runes in the final line
// of the prefix.
func formatCause(cur Input, pos int, msg string) string {
	prefix := cur.SliceTo(pos)
	line := strings.Count(prefix, "\n") + 1
	lastLine := prefix
	if idx := strings.LastIndexByte(prefix, '\n'); idx >= 0 {
		lastLine = prefix[idx+1:]
	}
	char := utf8.RuneCountInString(lastLine)
	return fmt.Sprintf("%s at line %d char %d.", msg, line, char)
}
