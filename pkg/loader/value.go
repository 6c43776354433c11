package loader

// Kind identifies the shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

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
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is a decoded document node. Objects keep their members in source
// order, duplicates included, and scalars keep the text they were written
// with. The zero Value is null.
type Value struct {
	kind    Kind
	text    string
	members []Member
	items   []Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value {
	if b {
		return Value{kind: KindBool, text: "true"}
	}
	return Value{kind: KindBool, text: "false"}
}

// Number returns a number value holding the literal as written.
func Number(literal string) Value { return Value{kind: KindNumber, text: literal} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Object returns an object with the given members in order.
func Object(members ...Member) Value { return Value{kind: KindObject, members: members} }

// Array returns an array with the given items in order.
func Array(items ...Value) Value { return Value{kind: KindArray, items: items} }

// Kind reports the shape of v.
func (v Value) Kind() Kind { return v.kind }

// Text returns the textual form of a scalar: the string itself, the number
// literal, true/false, or null. Containers return an empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindObject, KindArray:
		return ""
	default:
		return v.text
	}
}

// Members returns the members of an object in source order. Callers must not
// modify the returned slice.
func (v Value) Members() []Member { return v.members }

// Items returns the elements of an array in order. Callers must not modify
// the returned slice.
func (v Value) Items() []Value { return v.items }

// Len returns the number of members or items; scalars have length 0.
func (v Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.members)
	case KindArray:
		return len(v.items)
	default:
		return 0
	}
}

// IsContainer reports whether v is an object or an array.
func (v Value) IsContainer() bool {
	return v.kind == KindObject || v.kind == KindArray
}

// Get returns the first member named key.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}
