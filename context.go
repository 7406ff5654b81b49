package peg

// causeEntry is the cause recorded against one atom: the formatted
// failure message plus the cursor position at the moment that failure
// was detected (before any restore unwound it), so the driver can
// still report *where* the deepest failure was even after every
// enclosing atom's apply has restored the cursor back to its own
// entry point.
type causeEntry struct {
	message string
	pos     int
}

// ParseContext carries everything that is scoped to a single Parse
// call: the per-atom failure cause and, for Sequence atoms, which
// child was being attempted when it failed. Hoisting this out of the
// atoms themselves keeps the grammar — the Atom tree — immutable and
// safely reusable across concurrent parses; only this context is
// per-call.
//
// Atoms are compared by identity (pointer equality), so every kind is
// implemented as a pointer type.
type ParseContext struct {
	causes      map[Atom]causeEntry
	offending   map[Atom]Atom
	diagnostics func(string)
}

// newParseContext creates a context for one Parse call. A nil
// diagnostics callback is replaced with a no-op, so callers that don't
// care about the duplicate-key warning don't have to check for it.
func newParseContext(diagnostics func(string)) *ParseContext {
	if diagnostics == nil {
		diagnostics = func(string) {}
	}
	return &ParseContext{
		causes:      make(map[Atom]causeEntry),
		offending:   make(map[Atom]Atom),
		diagnostics: diagnostics,
	}
}

func (c *ParseContext) setCause(a Atom, err error) {
	pos := 0
	if mf, ok := err.(*matchFailure); ok {
		pos = mf.pos
	}
	c.causes[a] = causeEntry{message: err.Error(), pos: pos}
}

func (c *ParseContext) clearCause(a Atom) {
	delete(c.causes, a)
}

// entry returns the full cause record (message + position) for a,
// which is the zero causeEntry ("", 0) if a's last apply succeeded (or
// a has never been applied).
func (c *ParseContext) entry(a Atom) causeEntry {
	return c.causes[a]
}

func (c *ParseContext) setOffending(seq Atom, child Atom) {
	c.offending[seq] = child
}
