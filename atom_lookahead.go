package peg

import "fmt"

// lookaheadAtom asserts the presence (positive) or absence (negative)
// of its child without consuming input ("Lookahead").
type lookaheadAtom struct {
	child    Atom
	positive bool
}

func newLookaheadAtom(child Atom, positive bool) *lookaheadAtom {
	return &lookaheadAtom{child: child, positive: positive}
}

func (a *lookaheadAtom) match(ctx *ParseContext, cur Input) (rawValue, error) {
	old := cur.Pos()
	_, err := apply(a.child, ctx, cur)
	cur.Seek(old)

	if a.positive {
		if err == nil {
			return rawNil{}, nil
		}
		// Reuse the child's own failure: it's already the most
		// specific explanation of what was expected here.
		return nil, newMatchFailure(cur, err.Error())
	}

	if err != nil {
		return rawNil{}, nil
	}
	return nil, newMatchFailure(cur, fmt.Sprintf("Unexpected match of %s", a.child.Inspect()))
}

func (a *lookaheadAtom) Inspect() string {
	child := parenthesize(a.child, precAtom)
	if a.positive {
		return "&" + child
	}
	return "!" + child
}

func (a *lookaheadAtom) precedence() int { return precAtom }
