// Package jot parses json documents into a tree of typed values, writes
// such a tree back as indented text and locates values by key anywhere
// in the tree.
package jot

type Kind int8

const (
	KindUnknown Kind = iota
	KindNull
	KindFalse
	KindTrue
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindFalse:
		return "false"
	case KindTrue:
		return "true"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// TypeName gives the name of the type of the given value. A nil value is
// reported as unknown.
func TypeName(v Value) string {
	if v == nil {
		return KindUnknown.String()
	}
	return v.Kind().String()
}

// Value is one json datum: null, a boolean, a number, a string, an array
// or an object. Unknown is the designated "no such value" result returned
// by failed lookups; it is never produced by a successful parse.
//
// A value owns its children. Trees built by the parser are never mutated
// afterwards; producing a modified document means building a new tree.
type Value interface {
	Kind() Kind
	Leaf() bool
}

type Unknown struct{}

func (Unknown) Kind() Kind { return KindUnknown }

func (Unknown) Leaf() bool { return true }

type Null struct{}

func (Null) Kind() Kind { return KindNull }

func (Null) Leaf() bool { return true }

type Bool bool

func (b Bool) Kind() Kind {
	if b {
		return KindTrue
	}
	return KindFalse
}

func (Bool) Leaf() bool { return true }

type Number float64

func (Number) Kind() Kind { return KindNumber }

func (Number) Leaf() bool { return true }

type String string

func (String) Kind() Kind { return KindString }

func (String) Leaf() bool { return true }

type Array struct {
	Values []Value
}

func (*Array) Kind() Kind { return KindArray }

func (a *Array) Leaf() bool { return len(a.Values) == 0 }

func (a *Array) Len() int { return len(a.Values) }

// At returns the value stored at the given index. Out of range indices
// give Unknown.
func (a *Array) At(ix int) Value {
	if ix < 0 || ix >= len(a.Values) {
		return Unknown{}
	}
	return a.Values[ix]
}

// Member is a key/value pair inside an object.
type Member struct {
	Key   string
	Value Value
}

// Object keeps its members in insertion order. Duplicate keys are allowed;
// the first one wins on lookup.
type Object struct {
	Members []Member
}

func (*Object) Kind() Kind { return KindObject }

func (o *Object) Leaf() bool { return len(o.Members) == 0 }

func (o *Object) Len() int { return len(o.Members) }

func (o *Object) Keys() []string {
	keys := make([]string, len(o.Members))
	for i := range o.Members {
		keys[i] = o.Members[i].Key
	}
	return keys
}

// Get returns the value of the first member with the given key. A miss
// gives Unknown.
func (o *Object) Get(key string) Value {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value
		}
	}
	return Unknown{}
}
