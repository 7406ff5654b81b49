package peg

import "fmt"

// repetitionAtom loops its child, absorbing failures instead of
// propagating them, and enforces [min, max] occurrences. tag
// distinguishes a plain repeat() from a maybe(), which is just
// Repetition(0, 1, tagMaybe).
type repetitionAtom struct {
	child Atom
	min   int
	max   *int // nil means unbounded
	tag   listTag
}

func newRepetitionAtom(child Atom, min int, max *int, tag listTag) *repetitionAtom {
	return &repetitionAtom{child: child, min: min, max: max, tag: tag}
}

func (a *repetitionAtom) match(ctx *ParseContext, cur Input) (rawValue, error) {
	var items []rawValue
	occ := 0
	hitMax := false
	for {
		v, err := apply(a.child, ctx, cur)
		if err != nil {
			break
		}
		items = append(items, v)
		occ++
		if a.max != nil && occ >= *a.max {
			hitMax = true
			break
		}
	}
	if occ < a.min {
		return nil, newMatchFailure(cur, fmt.Sprintf("Expected at least %d of %s", a.min, a.child.Inspect()))
	}
	if hitMax {
		a.recordCapCause(ctx, cur)
	}
	return rawList{tag: a.tag, items: items}, nil
}

// recordCapCause runs after a Repetition stops because it hit its cap,
// not because the child failed. It probes the child once more, without
// committing the result, so that if more input would still have
// matched, the child's cause explains why the cap left it unconsumed.
// This probe cause survives the outer apply's success-path clear
// because it is recorded against a.child, not against a itself.
func (a *repetitionAtom) recordCapCause(ctx *ParseContext, cur Input) {
	pos := cur.Pos()
	_, err := apply(a.child, ctx, cur)
	cur.Seek(pos)
	if err == nil {
		ctx.setCause(a.child, newMatchFailure(cur, fmt.Sprintf("Unexpected match of %s", a.child.Inspect())))
		return
	}
	// The probe's own apply recorded its failure as the child's cause;
	// that's just confirming there was nothing left to cap, not a
	// cause of anything, so don't leave it lying around.
	ctx.clearCause(a.child)
}

// causeFallback lets a Repetition's cause fall back to its child's
// cause when its own is empty — the most common case being a
// Repetition that *succeeded* overall but whose final iteration
// failed and stopped the loop; the child still remembers why.
func (a *repetitionAtom) causeFallback() Atom { return a.child }

func (a *repetitionAtom) Inspect() string {
	child := parenthesize(a.child, precAtom)
	if a.tag == tagMaybe {
		return child + "?"
	}
	if a.max == nil {
		return fmt.Sprintf("%s{%d,}", child, a.min)
	}
	return fmt.Sprintf("%s{%d,%d}", child, a.min, *a.max)
}

func (a *repetitionAtom) precedence() int { return precAtom }
