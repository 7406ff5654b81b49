package peg

import (
	"fmt"
	"sort"
	"strings"
)

// Value is the user-visible parse result: a discriminated union of
// string, mapping, or list. A nil Value represents the absence
// produced by a Lookahead or an empty Repetition(tag=maybe).
//
// This models the intermediate value as a discriminated union with a
// fixed set of constructors, one level up from the raw tagged-list
// shape below: flatten collapses every raw shape down to one of
// these three cases, or to nil for the absences described above.
type Value interface {
	isValue()
}

// StringValue is a matched run of literal text.
type StringValue string

func (StringValue) isValue() {}

// MapValue is a named capture, or the result of merging several.
type MapValue map[string]Value

func (MapValue) isValue() {}

// ListValue is the result of a Repetition collapsing over mappings or
// over nested lists (repetition-collapse rule).
type ListValue []Value

func (ListValue) isValue() {}

// stringify renders a Value as a compact, key-sorted string for
// debugging. It is never consulted by the parser itself.
func stringify(v Value) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case StringValue:
		return fmt.Sprintf("%q", string(t))
	case MapValue:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var b strings.Builder
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %s", k, stringify(t[k]))
		}
		b.WriteByte('}')
		return b.String()
	case ListValue:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = stringify(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", t)
	}
}

// --- raw intermediate value, produced by an atom's apply before flatten ---

// listTag distinguishes the three shapes a raw tagged list can carry,
// per `TAG := :sequence | :repetition | :maybe`.
type listTag int

const (
	tagSequence listTag = iota
	tagRepetition
	tagMaybe
)

// rawValue is what an atom's apply returns prior to flattening. It is
// deliberately a separate type from Value: flatten is the only
// function allowed to turn one into the other.
type rawValue interface {
	isRaw()
}

// rawString is what Str and Re atoms produce.
type rawString string

func (rawString) isRaw() {}

// rawMap is what Named produces: a singleton mapping.
type rawMap struct {
	name  string
	value rawValue
}

func (rawMap) isRaw() {}

// rawList is what Sequence and Repetition produce.
type rawList struct {
	tag   listTag
	items []rawValue
}

func (rawList) isRaw() {}

// rawNil is what Lookahead produces, and what Entity forwards when its
// body produces it.
type rawNil struct{}

func (rawNil) isRaw() {}
