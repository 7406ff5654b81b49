package peg

import "fmt"

// maxUnconsumedPreview bounds how much of the remaining input the
// driver quotes when it can't explain why parsing stopped short of
// EOF.
const maxUnconsumedPreview = 100

// Grammar is a parsed expression grammar: an atom tree plus the
// Parse/ParseString entry points for running it. A Grammar is
// immutable after construction (aside from each Entity's one-time
// body resolution) and safe to reuse across Parse calls — everything
// that varies per call lives in the ParseContext each call creates
// for itself.
type Grammar struct {
	Root Atom
}

// New wraps root as a Grammar ready to parse with.
func New(root Atom) *Grammar {
	return &Grammar{Root: root}
}

// ParseOption configures a single Parse call.
type ParseOption func(*parseOptions)

type parseOptions struct {
	diagnostics func(string)
}

// WithDiagnostics installs the callback invoked for non-fatal
// diagnostics — currently just the duplicate-key warning produced
// when two named captures merge under the same key.
func WithDiagnostics(fn func(string)) ParseOption {
	return func(o *parseOptions) { o.diagnostics = fn }
}

// ParseString is a convenience wrapper around Parse for string input.
func (g *Grammar) ParseString(input string, opts ...ParseOption) (Value, error) {
	return g.Parse(NewStringInput(input), opts...)
}

// ParseWithContext runs a parse like Parse but also returns the
// ParseContext built for the call, so a caller that wants a
// structured error tree via ErrorTree can inspect the same recorded
// causes the returned error was built from.
func (g *Grammar) ParseWithContext(cur Input, opts ...ParseOption) (*ParseContext, error) {
	ctx, _, err := g.parse(cur, opts...)
	return ctx, err
}

// Parse wires the cursor, interpreter, and flattener together: it
// applies the root atom against cur, verifies the cursor reached EOF,
// and returns the flattened result, or a FailedError /
// IncompleteParseError describing why it didn't.
func (g *Grammar) Parse(cur Input, opts ...ParseOption) (Value, error) {
	_, value, err := g.parse(cur, opts...)
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (g *Grammar) parse(cur Input, opts ...ParseOption) (*ParseContext, Value, error) {
	options := parseOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	ctx := newParseContext(options.diagnostics)

	raw, err := apply(g.Root, ctx, cur)
	if err != nil {
		entry := effectiveCause(ctx, g.Root)
		return ctx, nil, &FailedError{Message: formatCause(cur, entry.pos, entry.message)}
	}

	if !cur.Eof() {
		if entry := effectiveCause(ctx, g.Root); entry.message != "" {
			cause := formatCause(cur, entry.pos, entry.message)
			msg := fmt.Sprintf("Unconsumed input, maybe because of this: %s", cause)
			return ctx, nil, &IncompleteParseError{Message: msg}
		}
		pos := cur.Pos()
		preview := cur.Read(maxUnconsumedPreview)
		msg := formatCause(cur, pos, fmt.Sprintf("Don't know what to do with %q", preview))
		return ctx, nil, &IncompleteParseError{Message: msg}
	}

	return ctx, flatten(raw, ctx.diagnostics), nil
}

// ErrorTree walks the atoms responsible for the deepest failure of the
// most recent Parse call made with ctx. It is nil if the root atom
// has no recorded cause.
func (g *Grammar) ErrorTree(ctx *ParseContext) *ErrorNode {
	if effectiveCause(ctx, g.Root).message == "" {
		return nil
	}
	return buildErrorTree(ctx, g.Root)
}

// ErrorNode is one atom in a structured error-tree walk: its own
// cause (or the cause it falls back to, per causeFallbackAtom) and,
// when the failure narrows to a specific sub-atom, that sub-atom's
// own node.
type ErrorNode struct {
	Atom     Atom
	Message  string
	Children []*ErrorNode
}

// errorChildAtom is implemented by atom kinds whose error tree
// attaches a specific child's subtree rather than stopping here:
// Sequence attaches the last-attempted child, Entity attaches its
// resolved body.
type errorChildAtom interface {
	errorChild(ctx *ParseContext) (Atom, bool)
}

// causeFallbackAtom is implemented by atom kinds whose own recorded
// cause can be empty even though a child's isn't — currently just
// Repetition.
type causeFallbackAtom interface {
	causeFallback() Atom
}

func effectiveCause(ctx *ParseContext, a Atom) causeEntry {
	if e := ctx.entry(a); e.message != "" {
		return e
	}
	if fb, ok := a.(causeFallbackAtom); ok {
		return effectiveCause(ctx, fb.causeFallback())
	}
	return causeEntry{}
}

func buildErrorTree(ctx *ParseContext, a Atom) *ErrorNode {
	node := &ErrorNode{Atom: a, Message: effectiveCause(ctx, a).message}
	if ec, ok := a.(errorChildAtom); ok {
		if child, ok := ec.errorChild(ctx); ok {
			node.Children = append(node.Children, buildErrorTree(ctx, child))
		}
	}
	return node
}
