package peg

import (
	"strings"
	"sync"
)

// entityAtom names a rule and breaks recursion in the grammar tree: it
// wraps a lazily-evaluated thunk that produces the rule's body, and
// resolves it exactly once. Self-referential and mutually-recursive
// rules become possible because the thunk is a closure captured at
// grammar-construction time and only invoked the first time the rule
// is actually used, by which point every rule in the grammar has been
// registered.
//
// sync.Once makes this the one atom in the tree that is safe to
// resolve concurrently — Entity's one-time memoization is the sole
// piece of grammar-level mutable state; every other cause-tracking
// mutation lives in ParseContext, not on the atom.
type entityAtom struct {
	name  string
	thunk func() Atom

	once sync.Once
	body Atom
}

func newEntityAtom(name string, thunk func() Atom) *entityAtom {
	return &entityAtom{name: name, thunk: thunk}
}

func (a *entityAtom) resolve() Atom {
	a.once.Do(func() {
		a.body = a.thunk()
	})
	if a.body == nil {
		panicProgrammerError("rule %q resolved to a nil body", a.name)
	}
	return a.body
}

func (a *entityAtom) match(ctx *ParseContext, cur Input) (rawValue, error) {
	return apply(a.resolve(), ctx, cur)
}

// errorChild always forwards to the resolved body, regardless of
// whether the Entity's own cause is set (the cause is always in sync
// with the body's, since match delegates directly to it — this only
// affects tree *structure*, showing the rule was entered before the
// body failed).
func (a *entityAtom) errorChild(ctx *ParseContext) (Atom, bool) {
	if a.body == nil {
		return nil, false
	}
	return a.body, true
}

func (a *entityAtom) Inspect() string { return strings.ToUpper(a.name) }
func (a *entityAtom) precedence() int { return precAtom }
