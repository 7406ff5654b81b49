package peg

import (
	"fmt"
	"strings"
)

// alternativeAtom tries its children left to right and returns the
// first success directly, unwrapped — unlike Sequence and Repetition,
// which always wrap their children's values in a tagged list. This
// asymmetry is intentional; see DESIGN.md's Open Question decisions.
type alternativeAtom struct {
	items []Atom
}

func newAlternativeAtom(items []Atom) *alternativeAtom { return &alternativeAtom{items: items} }

func (a *alternativeAtom) match(ctx *ParseContext, cur Input) (rawValue, error) {
	for _, child := range a.items {
		v, err := apply(child, ctx, cur)
		if err == nil {
			return v, nil
		}
	}
	return nil, newMatchFailure(cur, fmt.Sprintf("Expected one of [%s]", a.childList()))
}

func (a *alternativeAtom) childList() string {
	parts := make([]string, len(a.items))
	for i, child := range a.items {
		parts[i] = child.Inspect()
	}
	return strings.Join(parts, ", ")
}

func (a *alternativeAtom) Inspect() string {
	parts := make([]string, len(a.items))
	for i, child := range a.items {
		parts[i] = parenthesize(child, precAlternative)
	}
	return strings.Join(parts, " / ")
}

func (a *alternativeAtom) precedence() int { return precAlternative }
