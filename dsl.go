package peg

// Expr is the public handle grammars are built with. It wraps an Atom
// and exposes the combinator operations as Go methods instead of the
// operator sugar (`a >> b`, `a | b`, `a.repeat`, `a.maybe`, `a.as`, …)
// a language with operator overloading would use.
type Expr struct {
	atom Atom
}

// Atom unwraps e to the underlying Atom, for embedding inside a larger
// grammar built with NewGrammar/Rule below.
func (e Expr) Atom() Atom { return e.atom }

func wrap(a Atom) Expr { return Expr{atom: a} }

// Str matches a literal run of text exactly.
func Str(s string) Expr { return wrap(newStrAtom(s)) }

// Match matches exactly one code point against a single-character
// regular-expression fragment (e.g. "[a-z]", ".", "\\d").
func Match(pattern string) Expr { return wrap(newReAtom(pattern)) }

// Then is the `a >> b` sequence operator: match e, then other,
// immediately after.
func (e Expr) Then(other Expr) Expr {
	return wrap(newSequenceAtom(flattenSeqArgs(e, other)))
}

// Seq builds a Sequence out of two or more expressions at once; it is
// the variadic form of Then, useful when chaining many terms.
func Seq(first Expr, rest ...Expr) Expr {
	items := []Atom{first.atom}
	for _, e := range rest {
		items = append(items, e.atom)
	}
	return wrap(newSequenceAtom(items))
}

// flattenSeqArgs merges adjacent sequences so that a.Then(b).Then(c)
// produces one Sequence of three children rather than a Sequence
// nested inside a Sequence.
func flattenSeqArgs(e, other Expr) []Atom {
	var items []Atom
	if seq, ok := e.atom.(*sequenceAtom); ok {
		items = append(items, seq.items...)
	} else {
		items = append(items, e.atom)
	}
	if seq, ok := other.atom.(*sequenceAtom); ok {
		items = append(items, seq.items...)
	} else {
		items = append(items, other.atom)
	}
	return items
}

// Or is the `a | b` ordered-choice operator.
func (e Expr) Or(other Expr) Expr {
	return wrap(newAlternativeAtom(flattenAltArgs(e, other)))
}

// Alt builds an Alternative out of two or more expressions at once.
func Alt(first Expr, rest ...Expr) Expr {
	items := []Atom{first.atom}
	for _, e := range rest {
		items = append(items, e.atom)
	}
	return wrap(newAlternativeAtom(items))
}

func flattenAltArgs(e, other Expr) []Atom {
	var items []Atom
	if alt, ok := e.atom.(*alternativeAtom); ok {
		items = append(items, alt.items...)
	} else {
		items = append(items, e.atom)
	}
	if alt, ok := other.atom.(*alternativeAtom); ok {
		items = append(items, alt.items...)
	} else {
		items = append(items, other.atom)
	}
	return items
}

// Repeat is `a.repeat(min, max)`. A negative max means unbounded.
func (e Expr) Repeat(min, max int) Expr {
	var maxPtr *int
	if max >= 0 {
		maxPtr = &max
	}
	return wrap(newRepetitionAtom(e.atom, min, maxPtr, tagRepetition))
}

// RepeatAtLeast is `a.repeat(min)` with no upper bound.
func (e Expr) RepeatAtLeast(min int) Expr {
	return wrap(newRepetitionAtom(e.atom, min, nil, tagRepetition))
}

// Maybe is `a.maybe`: Repetition(0, 1, tag=:maybe).
func (e Expr) Maybe() Expr {
	one := 1
	return wrap(newRepetitionAtom(e.atom, 0, &one, tagMaybe))
}

// Present is `a.present`: a positive lookahead.
func (e Expr) Present() Expr {
	return wrap(newLookaheadAtom(e.atom, true))
}

// Absent is `a.absent`: a negative lookahead.
func (e Expr) Absent() Expr {
	return wrap(newLookaheadAtom(e.atom, false))
}

// As is `a.as(name)`: wrap e's value in a singleton mapping under name.
func (e Expr) As(name string) Expr {
	return wrap(newNamedAtom(name, e.atom))
}

// Inspect renders e's PEG-like printed form.
func (e Expr) Inspect() string { return e.atom.Inspect() }

// Rules is a namespace for lazily-bound, mutually-recursive rules
// (`rule(name) { body }`). Each call to Rule registers a
// thunk that is only invoked the first time the rule is actually
// applied, which is what lets two rules reference each other.
type Rules struct{}

// NewRules starts a fresh rule namespace.
func NewRules() *Rules { return &Rules{} }

// Rule registers name with a thunk producing its body, evaluated
// lazily on first use, and returns an Expr that can be embedded
// anywhere in the grammar — including inside body itself or another
// rule's body, which is how recursive grammars are built.
func (r *Rules) Rule(name string, body func() Expr) Expr {
	return wrap(newEntityAtom(name, func() Atom {
		return body().atom
	}))
}

// NewGrammar wraps root as a ready-to-use Grammar.
func NewGrammar(root Expr) *Grammar {
	return New(root.atom)
}
