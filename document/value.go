package document

import "fmt"

// Position is a 1-based line and column in the source. The zero Position
// means the location is unknown.
type Position struct {
	Line   int
	Column int
}

// IsKnown reports whether the position carries a line.
func (p Position) IsKnown() bool {
	return p.Line > 0
}

// String returns "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ValueKind discriminates raw values.
type ValueKind int

const (
	KindScalar ValueKind = iota
	KindObject
	KindArray
)

// String returns the name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "scalar"
	}
}

// Value is a raw document value: *Object, *Array or *Scalar.
type Value interface {
	Kind() ValueKind
	Pos() Position
	// Plain converts the value to plain Go values: map[string]any, []any
	// and scalars.
	Plain() any

	value()
}

// Entry is one key/value pair of an Object.
type Entry struct {
	Key    string
	Value  Value
	KeyPos Position
}

// Object is a mapping with entries in document order.
type Object struct {
	Entries  []Entry
	Position Position
}

// Kind implements Value.
func (*Object) Kind() ValueKind { return KindObject }

// Pos implements Value.
func (o *Object) Pos() Position { return o.Position }

func (*Object) value() {}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	for _, e := range o.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.Entries)
}

// Plain implements Value.
func (o *Object) Plain() any {
	m := make(map[string]any, len(o.Entries))
	for _, e := range o.Entries {
		m[e.Key] = e.Value.Plain()
	}
	return m
}

// Array is a sequence of values.
type Array struct {
	Items    []Value
	Position Position
}

// Kind implements Value.
func (*Array) Kind() ValueKind { return KindArray }

// Pos implements Value.
func (a *Array) Pos() Position { return a.Position }

func (*Array) value() {}

// Plain implements Value.
func (a *Array) Plain() any {
	out := make([]any, len(a.Items))
	for i, item := range a.Items {
		out[i] = item.Plain()
	}
	return out
}

// Scalar is a literal. Value holds nil, bool, int64, float64 or string;
// Text holds the literal as written.
type Scalar struct {
	Value    any
	Text     string
	Position Position
}

// Kind implements Value.
func (*Scalar) Kind() ValueKind { return KindScalar }

// Pos implements Value.
func (s *Scalar) Pos() Position { return s.Position }

func (*Scalar) value() {}

// Plain implements Value.
func (s *Scalar) Plain() any { return s.Value }

// Str returns the value when it is a string.
func (s *Scalar) Str() (string, bool) {
	str, ok := s.Value.(string)
	return str, ok
}

// Bool returns the value when it is a bool.
func (s *Scalar) Bool() (bool, bool) {
	b, ok := s.Value.(bool)
	return b, ok
}

// Int returns the value as an int64 when it is a whole number.
func (s *Scalar) Int() (int64, bool) {
	switch v := s.Value.(type) {
	case int64:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	}
	return 0, false
}

// Float returns the value as a float64 when it is numeric.
func (s *Scalar) Float() (float64, bool) {
	switch v := s.Value.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// IsNull reports whether the scalar is null.
func (s *Scalar) IsNull() bool {
	return s.Value == nil
}

var (
	_ Value = (*Object)(nil)
	_ Value = (*Array)(nil)
	_ Value = (*Scalar)(nil)
)
