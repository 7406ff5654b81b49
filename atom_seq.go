package peg

import (
	"fmt"
	"strings"
)

// sequenceAtom matches its children left to right, wrapping their
// values in a tagged list. The overall cursor restore on failure is
// handled by the universal apply wrapper around this atom, not here —
// each child's own apply has already restored itself to its own entry
// position, and the wrapper restores the sequence's entry position
// regardless of how far in we got.
type sequenceAtom struct {
	items []Atom
}

func newSequenceAtom(items []Atom) *sequenceAtom { return &sequenceAtom{items: items} }

func (a *sequenceAtom) match(ctx *ParseContext, cur Input) (rawValue, error) {
	values := make([]rawValue, 0, len(a.items))
	for _, child := range a.items {
		ctx.setOffending(a, child)
		v, err := apply(child, ctx, cur)
		if err != nil {
			return nil, newMatchFailure(cur, fmt.Sprintf("Failed to match sequence (%s)", a.Inspect()))
		}
		values = append(values, v)
	}
	return rawList{tag: tagSequence, items: values}, nil
}

func (a *sequenceAtom) Inspect() string {
	parts := make([]string, len(a.items))
	for i, child := range a.items {
		parts[i] = parenthesize(child, precSequence)
	}
	return strings.Join(parts, " ")
}

func (a *sequenceAtom) precedence() int { return precSequence }

// errorChild attaches the last-attempted child's error subtree as a
// child node.
func (a *sequenceAtom) errorChild(ctx *ParseContext) (Atom, bool) {
	child, ok := ctx.offending[a]
	return child, ok
}

// parenthesize renders child's Inspect form, wrapping it in
// parentheses if its precedence is looser than threshold.
func parenthesize(child Atom, threshold int) string {
	s := child.Inspect()
	if child.precedence() > threshold {
		return "(" + s + ")"
	}
	return s
}
