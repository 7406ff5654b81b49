package peg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMergeFoldStringPlusString(t *testing.T) {
	got := mergeFold(StringValue("a"), StringValue("b"), nil)
	assert.Equal(t, StringValue("ab"), got)
}

func TestMergeFoldMapAbsorbsString(t *testing.T) {
	m := MapValue{"k": StringValue("v")}
	assert.Equal(t, Value(m), mergeFold(m, StringValue("x"), nil))
	assert.Equal(t, Value(m), mergeFold(StringValue("x"), m, nil))
}

func TestMergeFoldMapsMergeKeys(t *testing.T) {
	l := MapValue{"a": StringValue("1")}
	r := MapValue{"b": StringValue("2")}
	got := mergeFold(l, r, nil)
	if diff := cmp.Diff(MapValue{"a": StringValue("1"), "b": StringValue("2")}, got); diff != "" {
		t.Fatalf("unexpected merge (-want +got):\n%s", diff)
	}
}

func TestMergeFoldDuplicateKeyKeepsRightAndWarns(t *testing.T) {
	var warnings []string
	diag := func(msg string) { warnings = append(warnings, msg) }

	l := MapValue{"a": StringValue("left")}
	r := MapValue{"a": StringValue("right")}
	got := mergeFold(l, r, diag)

	assert.Equal(t, MapValue{"a": StringValue("right")}, got)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `duplicate key "a"`)
}

func TestMergeFoldListConcatenates(t *testing.T) {
	l := ListValue{StringValue("a")}
	r := ListValue{StringValue("b")}
	got := mergeFold(l, r, nil)
	assert.Equal(t, ListValue{StringValue("a"), StringValue("b")}, got)
}

func TestMergeFoldMapListInsertion(t *testing.T) {
	m := MapValue{"k": StringValue("v")}
	l := ListValue{StringValue("x")}

	assert.Equal(t, ListValue{m, StringValue("x")}, mergeFold(m, l, nil))
	assert.Equal(t, ListValue{StringValue("x"), m}, mergeFold(l, m, nil))
}

func TestFlattenSequenceDropsNilAndConcatenatesStrings(t *testing.T) {
	children := []Value{StringValue("a"), nil, StringValue("b")}
	got := flattenSequence(children, nil)
	assert.Equal(t, StringValue("ab"), got)
}

func TestFlattenRepetitionOfStringsConcatenates(t *testing.T) {
	got := flattenRepetition([]Value{StringValue("a"), StringValue("b"), StringValue("c")})
	assert.Equal(t, StringValue("abc"), got)
}

func TestFlattenRepetitionOfEmptyChildrenIsEmptyString(t *testing.T) {
	got := flattenRepetition(nil)
	assert.Equal(t, StringValue(""), got)
}

func TestFlattenRepetitionMappingsSurviveOverStrings(t *testing.T) {
	m := MapValue{"k": StringValue("v")}
	got := flattenRepetition([]Value{StringValue("ignored"), m, StringValue("ignored")})
	assert.Equal(t, ListValue{m}, got)
}

func TestFlattenRepetitionListsConcatenate(t *testing.T) {
	l1 := ListValue{StringValue("a")}
	l2 := ListValue{StringValue("b")}
	got := flattenRepetition([]Value{l1, l2})
	assert.Equal(t, ListValue{StringValue("a"), StringValue("b")}, got)
}

func TestFlattenIsTotalAndDeterministic(t *testing.T) {
	raw := rawList{tag: tagSequence, items: []rawValue{
		rawMap{name: "x", value: rawString("a")},
		rawNil{},
		rawMap{name: "y", value: rawString("b")},
	}}

	first := flatten(raw, nil)
	second := flatten(raw, nil)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("flatten is not deterministic (-first +second):\n%s", diff)
	}
	assert.Equal(t, MapValue{"x": StringValue("a"), "y": StringValue("b")}, first)
}

func TestFlattenMaybeCollapsesToChildOrNil(t *testing.T) {
	empty := rawList{tag: tagMaybe, items: nil}
	assert.Nil(t, flatten(empty, nil))

	one := rawList{tag: tagMaybe, items: []rawValue{rawString("x")}}
	assert.Equal(t, StringValue("x"), flatten(one, nil))
}
