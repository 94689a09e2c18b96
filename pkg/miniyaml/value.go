package miniyaml

// Kind identifies the type held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns the kind name in lowercase.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed document tree: a tagged union over
// null, booleans, numbers, strings, sequences, and mappings.
//
// The zero Value is null. Mappings preserve insertion order; setting an
// existing key updates it in place without moving it. An explicit null
// entry is distinct from an absent key: the key stays present with a
// null value.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  float64
	strVal  string
	seq     []Value
	entries []entry
}

type entry struct {
	key string
	val Value
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolVal: b}
}

// Number returns a numeric value. There is no int/float distinction
// beyond the textual rendering produced by Dump.
func Number(n float64) Value {
	return Value{kind: KindNumber, numVal: n}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, strVal: s}
}

// Seq returns a sequence holding the given elements.
func Seq(elems ...Value) Value {
	v := Value{kind: KindSequence}
	v.seq = append(v.seq, elems...)
	return v
}

// Map returns an empty mapping. Populate it with Set.
func Map() Value {
	return Value{kind: KindMapping}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload, or false for non-boolean values.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.boolVal
}

// Number returns the numeric payload, or 0 for non-numeric values.
func (v Value) Number() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.numVal
}

// String returns the string payload for string values. For every other
// kind it returns the serialized rendering, so it is safe to use as a
// display form.
func (v Value) String() string {
	if v.kind == KindString {
		return v.strVal
	}
	return Dump(v)
}

// Len returns the number of elements in a sequence or entries in a
// mapping, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.entries)
	default:
		return 0
	}
}

// At returns the i-th sequence element. It returns null when the value
// is not a sequence or the index is out of range.
func (v Value) At(i int) Value {
	if v.kind != KindSequence || i < 0 || i >= len(v.seq) {
		return Null()
	}
	return v.seq[i]
}

// Elems returns the sequence elements. The returned slice is shared
// with the value; callers must not modify it.
func (v Value) Elems() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.seq
}

// Append adds elements to a sequence. Appending to a null value turns
// it into a sequence; appending to any other kind is a no-op.
func (v *Value) Append(elems ...Value) {
	if v.kind == KindNull {
		v.kind = KindSequence
	}
	if v.kind != KindSequence {
		return
	}
	v.seq = append(v.seq, elems...)
}

// Keys returns the mapping keys in insertion order.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	keys := make([]string, len(v.entries))
	for i, e := range v.entries {
		keys[i] = e.key
	}
	return keys
}

// Get looks up a mapping entry by key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Null(), false
	}
	for _, e := range v.entries {
		if e.key == key {
			return e.val, true
		}
	}
	return Null(), false
}

// Set inserts or updates a mapping entry. New keys append at the end;
// existing keys are updated in place, preserving their position.
// Setting on a null value turns it into a mapping.
func (v *Value) Set(key string, val Value) {
	if v.kind == KindNull {
		v.kind = KindMapping
	}
	if v.kind != KindMapping {
		return
	}
	for i := range v.entries {
		if v.entries[i].key == key {
			v.entries[i].val = val
			return
		}
	}
	v.entries = append(v.entries, entry{key: key, val: val})
}

// Delete removes a mapping entry, reporting whether the key existed.
func (v *Value) Delete(key string) bool {
	if v.kind != KindMapping {
		return false
	}
	for i := range v.entries {
		if v.entries[i].key == key {
			v.entries = append(v.entries[:i], v.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Equal reports deep equality. Mappings compare both contents and key
// order, since callers rely on stable field ordering.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == o.boolVal
	case KindNumber:
		return v.numVal == o.numVal
	case KindString:
		return v.strVal == o.strVal
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.entries) != len(o.entries) {
			return false
		}
		for i := range v.entries {
			if v.entries[i].key != o.entries[i].key {
				return false
			}
			if !v.entries[i].val.Equal(o.entries[i].val) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
