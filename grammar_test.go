package peg_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarete/peg"
)

// S1
func TestStrScenario(t *testing.T) {
	g := peg.NewGrammar(peg.Str("foo"))

	v, err := g.ParseString("foo")
	require.NoError(t, err)
	assert.Equal(t, peg.StringValue("foo"), v)

	_, err = g.ParseString("fo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Premature end of input")
}

// S2
func TestAlternativeScenario(t *testing.T) {
	g := peg.NewGrammar(peg.Str("a").Or(peg.Str("b")))

	v, err := g.ParseString("b")
	require.NoError(t, err)
	assert.Equal(t, peg.StringValue("b"), v)

	_, err = g.ParseString("c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected one of [")
}

// S3
func TestRepetitionScenario(t *testing.T) {
	g := peg.NewGrammar(peg.Str("a").Repeat(2, 3))

	v, err := g.ParseString("aaa")
	require.NoError(t, err)
	assert.Equal(t, peg.StringValue("aaa"), v)

	_, err = g.ParseString("a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected at least 2 of 'a'")

	_, err = g.ParseString("aaaa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unconsumed input, maybe because of this:")
}

// S4
func TestQuotedStringScenario(t *testing.T) {
	escaped := peg.Str(`\`).Then(peg.Match("."))
	plain := peg.Str(`"`).Absent().Then(peg.Match("."))
	body := escaped.Or(plain).Repeat(0, -1).As("s")
	quoted := peg.Str(`"`).Then(body).Then(peg.Str(`"`))
	g := peg.NewGrammar(quoted)

	v, err := g.ParseString(`"a\"b"`)
	require.NoError(t, err)
	assert.Equal(t, peg.MapValue{"s": peg.StringValue(`a\"b`)}, v)
}

// S5
func TestNamedSequenceScenario(t *testing.T) {
	g := peg.NewGrammar(peg.Str("a").As("x").Then(peg.Str("b").As("y")))

	v, err := g.ParseString("ab")
	require.NoError(t, err)
	assert.Equal(t, peg.MapValue{"x": peg.StringValue("a"), "y": peg.StringValue("b")}, v)
}

// S6
func TestRecursiveGrammarScenario(t *testing.T) {
	name := peg.Match("[a-z]").RepeatAtLeast(1)
	text := peg.Match("[^<]").RepeatAtLeast(1)

	rules := peg.NewRules()
	var doc peg.Expr
	doc = rules.Rule("doc", func() peg.Expr {
		element := peg.Str("<").
			Then(name.As("tag")).
			Then(peg.Str(">")).
			Then(doc.As("body")).
			Then(peg.Str("</")).
			Then(name).
			Then(peg.Str(">"))
		return element.Or(text.As("text"))
	})

	g := peg.NewGrammar(doc)
	v, err := g.ParseString("<a><b>hi</b></a>")
	require.NoError(t, err)

	want := peg.MapValue{
		"tag": peg.StringValue("a"),
		"body": peg.MapValue{
			"tag":  peg.StringValue("b"),
			"body": peg.MapValue{"text": peg.StringValue("hi")},
		},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("unexpected parse tree (-want +got):\n%s", diff)
	}
}

// property 7: sequence of strings concatenates
func TestSequenceOfStringsConcatenates(t *testing.T) {
	g := peg.NewGrammar(peg.Str("a").Then(peg.Str("b")))
	v, err := g.ParseString("ab")
	require.NoError(t, err)
	assert.Equal(t, peg.StringValue("ab"), v)
}

// property 6: naming dominates
func TestNamingDominates(t *testing.T) {
	inner := peg.Str("x").Repeat(1, -1)
	g := peg.NewGrammar(inner)
	v, err := g.ParseString("xxx")
	require.NoError(t, err)

	named := peg.NewGrammar(inner.As("k"))
	nv, err := named.ParseString("xxx")
	require.NoError(t, err)

	assert.Equal(t, peg.MapValue{"k": v}, nv)
}

func TestErrorTreeWalksToOffendingAtom(t *testing.T) {
	g := peg.NewGrammar(peg.Str("a").Then(peg.Str("b")))
	ctx, err := parseAndCaptureContext(g, "ac")
	require.Error(t, err)

	tree := g.ErrorTree(ctx)
	require.NotNil(t, tree)
	require.Len(t, tree.Children, 1)
	assert.Contains(t, tree.Children[0].Message, `Expected "b"`)
}

func parseAndCaptureContext(g *peg.Grammar, input string) (*peg.ParseContext, error) {
	return g.ParseWithContext(peg.NewStringInput(input))
}
