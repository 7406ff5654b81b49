package peg

// namedAtom wraps its child's value in a singleton mapping. Failures
// propagate unchanged — a Named adds nothing to the failure, only to
// the success shape.
type namedAtom struct {
	name  string
	child Atom
}

func newNamedAtom(name string, child Atom) *namedAtom {
	return &namedAtom{name: name, child: child}
}

func (a *namedAtom) match(ctx *ParseContext, cur Input) (rawValue, error) {
	v, err := apply(a.child, ctx, cur)
	if err != nil {
		return nil, err
	}
	return rawMap{name: a.name, value: v}, nil
}

func (a *namedAtom) Inspect() string {
	return parenthesize(a.child, precAtom) + ":" + a.name
}

func (a *namedAtom) precedence() int { return precNamed }
