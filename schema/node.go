package schema

import (
	"iter"
	"slices"
)

// Node is a schema node. The set of implementations is closed: *Object,
// *Array, *String, *Integer, *Float, *Boolean, *Null and *Unknown.
type Node interface {
	// Kind returns the discriminant of the variant.
	Kind() Kind
	// Key returns the human-facing identifier: Title when set, else Name.
	Key() string
	// Attrs returns the attributes shared by every variant.
	Attrs() *Base
	// Flags yields the field flags that carry a value.
	Flags() iter.Seq[Flag]

	node()
}

// Base holds the attributes shared by every schema node.
type Base struct {
	Description string
	Title       string
	// Name is assigned by the parent object when the node is a property.
	Name string
	// Enum lists the permitted literal values; non-empty makes backends
	// emit an enum declaration.
	Enum []string
	// AnyOf lists alternative nodes. Alternatives never get a Name.
	AnyOf []Node
	// ID and Schema carry $id and $schema through untouched.
	ID     string
	Schema string
	// Required is computed by the parent object: true iff this node's key is
	// in the parent's required list.
	Required bool
	Default  any
	Unique   bool
	Ref      *Ref
	// Meta holds backend specific extension data as plain decoded values.
	Meta map[string]any
}

// Key returns Title if present, else Name.
func (b *Base) Key() string {
	if b.Title != "" {
		return b.Title
	}
	return b.Name
}

// Attrs returns b.
func (b *Base) Attrs() *Base { return b }

// HasEnum reports whether the node restricts values to an enum.
func (b *Base) HasEnum() bool { return len(b.Enum) > 0 }

// Flag is one field flag with a present value.
type Flag struct {
	Name  string
	Value any
}

// Flag names, in the order Flags yields them.
const (
	FlagRequired = "required"
	FlagDefault  = "default"
	FlagUnique   = "unique"
)

// Flags yields required, default and unique in that order, skipping nil
// values and false booleans.
func (b *Base) Flags() iter.Seq[Flag] {
	return func(yield func(Flag) bool) {
		for _, f := range []Flag{
			{FlagRequired, b.Required},
			{FlagDefault, b.Default},
			{FlagUnique, b.Unique},
		} {
			if !present(f.Value) {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

func present(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	}
	return true
}

// MetaMap returns Meta[key] when it is itself a mapping.
func (b *Base) MetaMap(key string) (map[string]any, bool) {
	m, ok := b.Meta[key].(map[string]any)
	return m, ok
}

// Property is one entry of an object's ordered properties.
type Property struct {
	Name string
	Node Node
}

// Requirement is the document's "required" entry on an object: either a
// list of property names or a bare boolean.
type Requirement struct {
	Names []string
	// Bool is set when the document used a boolean instead of a list.
	Bool *bool
}

// IsList reports whether the requirement was given as a list.
func (r Requirement) IsList() bool {
	return r.Bool == nil && r.Names != nil
}

// Has reports whether name is in the required list.
func (r Requirement) Has(name string) bool {
	return slices.Contains(r.Names, name)
}

// Object is a node with ordered, exclusively owned properties.
type Object struct {
	Base
	Properties   []Property
	RequiredKeys Requirement
}

// Kind implements Node.
func (*Object) Kind() Kind { return KindObject }

func (*Object) node() {}

// Get returns the property node named name.
func (o *Object) Get(name string) (Node, bool) {
	for _, p := range o.Properties {
		if p.Name == name {
			return p.Node, true
		}
	}
	return nil, false
}

// Array is a node whose elements are described by Items. Items is nil when
// the document did not describe them.
type Array struct {
	Base
	Items Node
}

// Kind implements Node.
func (*Array) Kind() Kind { return KindArray }

func (*Array) node() {}

// String is a text node.
type String struct {
	Base
	Pattern string
}

// Kind implements Node.
func (*String) Kind() Kind { return KindString }

func (*String) node() {}

// Numeric is the bounds shape shared by Integer and Float.
type Numeric[T int64 | float64] struct {
	Minimum *T
	Maximum *T
}

// Bounds returns the bounds that are set.
func (n Numeric[T]) Bounds() (min, max T, hasMin, hasMax bool) {
	if n.Minimum != nil {
		min, hasMin = *n.Minimum, true
	}
	if n.Maximum != nil {
		max, hasMax = *n.Maximum, true
	}
	return min, max, hasMin, hasMax
}

// Integer is a whole number node.
type Integer struct {
	Base
	Numeric[int64]
}

// Kind implements Node.
func (*Integer) Kind() Kind { return KindInteger }

func (*Integer) node() {}

// Float is a floating point ("number") node.
type Float struct {
	Base
	Numeric[float64]
}

// Kind implements Node.
func (*Float) Kind() Kind { return KindFloat }

func (*Float) node() {}

// Boolean is a true/false node.
type Boolean struct {
	Base
}

// Kind implements Node.
func (*Boolean) Kind() Kind { return KindBoolean }

func (*Boolean) node() {}

// Null is a node that only admits null.
type Null struct {
	Base
}

// Kind implements Node.
func (*Null) Kind() Kind { return KindNull }

func (*Null) node() {}

// Unknown is a node whose type name was not recognized, or was absent.
type Unknown struct {
	Base
	// TypeName is the original type string, or UnknownTypeName when the
	// document had none.
	TypeName string
}

// Kind implements Node.
func (*Unknown) Kind() Kind { return KindUnknown }

func (*Unknown) node() {}

var (
	_ Node = (*Object)(nil)
	_ Node = (*Array)(nil)
	_ Node = (*String)(nil)
	_ Node = (*Integer)(nil)
	_ Node = (*Float)(nil)
	_ Node = (*Boolean)(nil)
	_ Node = (*Null)(nil)
	_ Node = (*Unknown)(nil)
)
