package peg

// Atom is a node of the parser expression tree. Every kind in the
// algebra — Str, Re, Sequence, Alternative, Repetition, Lookahead,
// Named, Entity — implements it as a pointer type, so atoms can be
// compared by identity and used as ParseContext map keys.
//
// match is the kind-specific matcher; it is never called directly —
// callers always go through apply, which wraps it in the universal
// try-and-restore discipline below.
type Atom interface {
	match(ctx *ParseContext, cur Input) (rawValue, error)

	// Inspect renders the atom as a PEG-like string,
	// used both for tooling and inside failure messages ("Expected
	// one of <printed form>", etc).
	Inspect() string

	// precedence classifies the atom for Inspect's paren-insertion
	// rules: tightest to loosest is
	// atom/lookahead/repetition > named > sequence > alternative.
	precedence() int
}

const (
	precAtom = iota
	precNamed
	precSequence
	precAlternative
)

// apply is the single operation every atom exposes to the
// interpreter. It implements the universal save/restore/propagate
// protocol every atom kind relies on:
//
//  1. save the cursor position on entry
//  2. dispatch to the kind-specific matcher
//  3. on success, clear the atom's recorded cause and return the value
//  4. on failure, restore the cursor and record the cause before
//     propagating the failure to the caller
func apply(a Atom, ctx *ParseContext, cur Input) (rawValue, error) {
	old := cur.Pos()
	val, err := a.match(ctx, cur)
	if err != nil {
		cur.Seek(old)
		ctx.setCause(a, err)
		return nil, err
	}
	ctx.clearCause(a)
	return val, nil
}
