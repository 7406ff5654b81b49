package peg

import "fmt"

// flatten is the function from an atom's raw intermediate value to the
// user-visible parse tree. It is applied recursively,
// children first, then the tag on the enclosing list (if any) decides
// how the already-flattened children combine. It is a total function
// of its raw-value argument; diag is only ever invoked as a side
// channel for the duplicate-key warning and never affects the
// returned tree.
func flatten(v rawValue, diag func(string)) Value {
	switch t := v.(type) {
	case nil:
		return nil
	case rawNil:
		return nil
	case rawString:
		return StringValue(t)
	case rawMap:
		return MapValue{t.name: flatten(t.value, diag)}
	case rawList:
		children := make([]Value, len(t.items))
		for i, item := range t.items {
			children[i] = flatten(item, diag)
		}
		switch t.tag {
		case tagMaybe:
			if len(children) == 0 {
				return nil
			}
			return children[0]
		case tagSequence:
			return flattenSequence(children, diag)
		case tagRepetition:
			return flattenRepetition(children)
		default:
			panicProgrammerError("flatten: unhandled list tag %v", t.tag)
		}
	}
	panicProgrammerError("flatten: unhandled raw value %T", v)
	return nil
}

// flattenSequence drops nil entries, then merge-folds what's left
// starting from the empty string (":sequence").
func flattenSequence(children []Value, diag func(string)) Value {
	var acc Value = StringValue("")
	for _, child := range children {
		if child == nil {
			continue
		}
		acc = mergeFold(acc, child, diag)
	}
	return acc
}

// mergeFold combines two already-flattened values according to the
// merge-fold table: string+string concatenates, map absorbs string,
// map+map merges keys, list+list concatenates, a mapping paired with a
// list is inserted into it, and a string paired with a list is dropped.
func mergeFold(l, r Value, diag func(string)) Value {
	switch lv := l.(type) {
	case StringValue:
		switch r.(type) {
		case StringValue:
			return lv + r.(StringValue)
		default:
			// exactly one is a string: keep the non-string
			return r
		}
	case MapValue:
		switch rv := r.(type) {
		case MapValue:
			return mergeMaps(lv, rv, diag)
		case StringValue:
			return l
		case ListValue:
			// mapping + list: insert mapping as an element, prepended
			return append(ListValue{lv}, rv...)
		}
	case ListValue:
		switch rv := r.(type) {
		case ListValue:
			return append(append(ListValue{}, lv...), rv...)
		case StringValue:
			return l
		case MapValue:
			// list + mapping: insert mapping as an element, appended
			return append(append(ListValue{}, lv...), rv)
		}
	}
	panicProgrammerError("merge-fold: unhandled pair %T, %T", l, r)
	return nil
}

// mergeMaps merges two mappings, keeping the right-hand value on key
// collision and reporting the collision through diag.
func mergeMaps(l, r MapValue, diag func(string)) MapValue {
	out := make(MapValue, len(l)+len(r))
	for k, v := range l {
		out[k] = v
	}
	for k, v := range r {
		if _, dup := l[k]; dup {
			diag(fmt.Sprintf("duplicate key %q in merged mapping, keeping the right-hand value", k))
		}
		out[k] = v
	}
	return out
}

// flattenRepetition implements repetition-collapse: a
// mapping anywhere in the children means only mappings survive;
// otherwise a nested list means concatenate those lists; otherwise
// concatenate the strings (or return "" for an empty repetition).
func flattenRepetition(children []Value) Value {
	hasMap := false
	hasList := false
	for _, child := range children {
		switch child.(type) {
		case MapValue:
			hasMap = true
		case ListValue:
			hasList = true
		}
	}

	if hasMap {
		out := make(ListValue, 0, len(children))
		for _, child := range children {
			if m, ok := child.(MapValue); ok {
				out = append(out, m)
			}
		}
		return out
	}

	if hasList {
		var out ListValue
		for _, child := range children {
			if l, ok := child.(ListValue); ok {
				out = append(out, l...)
			}
		}
		return out
	}

	var s string
	for _, child := range children {
		if str, ok := child.(StringValue); ok {
			s += string(str)
		}
	}
	return StringValue(s)
}
