package peg

import (
	"fmt"
	"regexp"
)

// strAtom matches a literal run of text exactly.
type strAtom struct {
	s string
}

func newStrAtom(s string) *strAtom { return &strAtom{s: s} }

func (a *strAtom) match(ctx *ParseContext, cur Input) (rawValue, error) {
	entry := cur.Pos()
	n := len([]rune(a.s))
	got := cur.Read(n)
	if len([]rune(got)) < n {
		return nil, newMatchFailureAt(entry, "Premature end of input")
	}
	if got != a.s {
		return nil, newMatchFailureAt(entry, fmt.Sprintf("Expected %q, but got %q", a.s, got))
	}
	return rawString(got), nil
}

func (a *strAtom) Inspect() string { return fmt.Sprintf("'%s'", a.s) }
func (a *strAtom) precedence() int { return precAtom }

// reAtom matches exactly one code point against a compiled
// single-character pattern fragment. The pattern is compiled in Go
// regexp's "s" mode so "." matches newlines too.
type reAtom struct {
	pattern string
	re      *regexp.Regexp
}

func newReAtom(pattern string) *reAtom {
	return &reAtom{
		pattern: pattern,
		re:      regexp.MustCompile(`(?s)\A(?:` + pattern + `)\z`),
	}
}

func (a *reAtom) match(ctx *ParseContext, cur Input) (rawValue, error) {
	entry := cur.Pos()
	c := cur.Read(1)
	if c == "" {
		return nil, newMatchFailureAt(entry, "Premature end of input")
	}
	if !a.re.MatchString(c) {
		return nil, newMatchFailureAt(entry, fmt.Sprintf("Failed to match %s", a.pattern))
	}
	return rawString(c), nil
}

func (a *reAtom) Inspect() string { return a.pattern }
func (a *reAtom) precedence() int { return precAtom }
