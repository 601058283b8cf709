package mongoengine

import (
	"strings"

	"github.com/erraggy/flexschema/internal/naming"
	"github.com/erraggy/flexschema/schema"
	"github.com/erraggy/flexschema/translate"
)

// Name identifies this backend.
const Name = "mongoengine"

// Extension is the file extension of the generated code.
const Extension = ".py"

// Head is the pragma every generated module starts with.
const Head = "# pyright: basic"

// DefaultBaseClass is the base class used when Options.BaseClass is empty.
const DefaultBaseClass = "Document"

const (
	defaultClassName = "SomeObject"
	defaultEnumKey   = "Unknown"
	indent           = "    "
	fieldSuffix      = "  # pyright: ignore"
	baseclassArgsKey = "baseclass_args"
)

// Options configures the mongoengine backend.
type Options struct {
	// BaseClass is the class every generated document derives from.
	// Default: "Document"
	BaseClass string
	// BaseClassImport is the import line that provides a custom BaseClass.
	BaseClassImport string
	// ExtraDeps are import lines added to every translation.
	ExtraDeps []string
}

// Backend is the mongoengine backend.
type Backend struct {
	Options Options
}

// New returns a Backend using opts.
func New(opts Options) *Backend {
	return &Backend{Options: opts}
}

// Name implements translate.Backend.
func (b *Backend) Name() string { return Name }

// Translate implements translate.Backend.
func (b *Backend) Translate(node schema.Node) *translate.Translation {
	return Translate(node, b.Options)
}

// Translate renders node as mongoengine classes.
func Translate(node schema.Node, opts Options) *translate.Translation {
	t := &translator{
		base: opts.BaseClass,
		acc:  translate.NewAccumulator(Name, node.Key()),
	}
	if t.base == "" {
		t.base = DefaultBaseClass
	}
	if t.base == DefaultBaseClass {
		t.acc.Require(mongoImport(DefaultBaseClass))
	}
	t.acc.Require(opts.BaseClassImport)
	t.acc.Require(opts.ExtraDeps...)

	t.root(node)
	if len(t.acc.Definitions("")) == 0 {
		t.acc.Warn("no class emitted for root " + node.Kind().String() + " schema")
	}

	blocks := append(t.acc.Bodies(translate.DefEnum), t.acc.Bodies(translate.DefType)...)
	output := translate.DepsMarker + "\n" + strings.Join(blocks, "\n\n") + "\n"
	return t.acc.Result(output, Extension, Head)
}

type translator struct {
	base string
	acc  *translate.Accumulator
}

// root hoists the declaration a top-level schema stands for. Only plain
// objects and string enums declare anything at the top level.
func (t *translator) root(node schema.Node) {
	b := node.Attrs()
	if b.Ref != nil || len(b.AnyOf) > 0 {
		return
	}
	switch n := node.(type) {
	case *schema.Object:
		t.class(n)
	case *schema.String:
		if n.HasEnum() {
			t.enum(n)
		}
	}
}

// field returns the field constructor and type annotation for node.
// The annotation includes its leading colon and may be empty.
func (t *translator) field(node schema.Node) (ctor, annotation string) {
	b := node.Attrs()
	if b.Ref != nil {
		return t.reference(node)
	}
	if len(b.AnyOf) > 0 {
		return t.ctor("DynamicField", node), t.anyAnnotation()
	}

	switch n := node.(type) {
	case *schema.Object:
		name := t.class(n)
		return t.ctor("ReferenceField", node, pyString(name)), ":" + pyString(name)
	case *schema.String:
		if n.HasEnum() {
			name := t.enum(n)
			return t.ctor("EnumField", node, name), ":" + name
		}
		var extra []string
		if n.Pattern != "" {
			extra = append(extra, "regex="+pyString(n.Pattern))
		}
		return t.ctor("StringField", node, extra...), ":str"
	case *schema.Integer:
		return t.ctor("IntField", node, bounds(n.Numeric)...), ":int"
	case *schema.Float:
		return t.ctor("FloatField", node, bounds(n.Numeric)...), ":float"
	case *schema.Boolean:
		return t.ctor("BooleanField", node), ":bool"
	case *schema.Array:
		return t.list(n)
	case *schema.Unknown:
		switch n.TypeName {
		case "file":
			return t.ctor("FileField", node), ""
		case "date", "datetime":
			t.acc.Require("import datetime")
			return t.ctor("DateTimeField", node), ":datetime.datetime"
		}
		return t.acc.Placeholder("unsupported type " + n.TypeName), t.anyAnnotation()
	case *schema.Null:
		return t.acc.Placeholder("unsupported null field"), t.anyAnnotation()
	}
	return t.acc.Placeholder("unsupported node kind " + node.Kind().String()), t.anyAnnotation()
}

func (t *translator) reference(node schema.Node) (ctor, annotation string) {
	ref := node.Attrs().Ref
	if ref.Resolved() {
		if s, ok := ref.Target.(*schema.String); ok && s.HasEnum() {
			name := enumName(ref.TargetName())
			return t.ctor("EnumField", node, name), ":" + name
		}
		name := className(ref.TargetName())
		return t.ctor("ReferenceField", node, pyString(name)), ":" + pyString(name)
	}
	name := naming.RefName(ref.Name)
	return t.ctor("ReferenceField", node, pyString(name)), ":" + pyString(name)
}

func (t *translator) list(n *schema.Array) (ctor, annotation string) {
	if n.Items == nil {
		return t.ctor("ListField", n), ":list[" + t.anyAnnotation()[1:] + "]"
	}
	t.acc.Push("items")
	inner, innerAnnotation := t.field(n.Items)
	t.acc.Pop()

	elem := strings.TrimPrefix(innerAnnotation, ":")
	if elem == "" {
		elem = t.anyAnnotation()[1:]
	}
	return t.ctor("ListField", n, inner), ":list[" + elem + "]"
}

// ctor renders a mongoengine field call: positional arguments first, then
// the node's flags as keyword arguments.
func (t *translator) ctor(field string, node schema.Node, args ...string) string {
	t.acc.Require(mongoImport(field))
	for f := range node.Flags() {
		args = append(args, f.Name+"="+pyLiteral(f.Value))
	}
	return field + "(" + strings.Join(args, ", ") + ")"
}

func (t *translator) anyAnnotation() string {
	t.acc.Require("from typing import Any")
	return ":Any"
}

// class hoists obj as a document class and returns its name.
func (t *translator) class(obj *schema.Object) string {
	return t.acc.Define(translate.DefType, className(obj.Key()), translate.Signature(obj), func(name string) string {
		var b strings.Builder
		b.WriteString("class ")
		b.WriteString(name)
		b.WriteByte('(')
		b.WriteString(t.base)
		if args := baseclassArgs(obj); len(args) > 0 {
			b.WriteString("(" + strings.Join(args, ", ") + ")")
		}
		b.WriteString("):")

		if desc := naming.CleanDescription(obj.Description); desc != "" {
			b.WriteString("\n" + indent + pyDocstring(desc))
		}
		if len(obj.Properties) == 0 {
			b.WriteString("\n" + indent + "pass")
			return b.String()
		}

		attrs := naming.NewUnique()
		t.acc.Push("properties")
		for _, p := range obj.Properties {
			t.acc.Push(p.Name)
			ctor, annotation := t.field(p.Node)
			attr, dbField := attribute(attrs, p.Name)
			if dbField != "" {
				ctor = withKeyword(ctor, "db_field="+pyString(dbField))
			}
			b.WriteString("\n" + indent + attr + annotation + " = " + ctor + fieldSuffix)
			t.acc.Pop()
		}
		t.acc.Pop()
		return b.String()
	})
}

func (t *translator) enum(n *schema.String) string {
	t.acc.Require("from enum import StrEnum")
	return t.acc.Define(translate.DefEnum, enumName(n.Key()), translate.EnumSignature(n.Enum, ""), func(name string) string {
		var b strings.Builder
		b.WriteString("class ")
		b.WriteString(name)
		b.WriteString("(StrEnum):")
		members := naming.NewUnique()
		for _, v := range n.Enum {
			id := naming.EscapePython(naming.Identifier(v))
			member := members.Claim(id)
			if member != id {
				t.acc.Warn("enum " + name + " member " + id + " renamed to " + member + ": identifier already used")
			}
			b.WriteString("\n" + indent + member + " = " + pyQuote(v))
		}
		return b.String()
	})
}

// baseclassArgs renders meta.baseclass_args as keyword arguments to the
// base class call, in key order. String values are Python source and are copied verbatim.
func baseclassArgs(obj *schema.Object) []string {
	args, ok := obj.MetaMap(baseclassArgsKey)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(args))
	for _, k := range sortedKeys(args) {
		v := args[k]
		if s, isString := v.(string); isString {
			out = append(out, k+"="+s)
			continue
		}
		out = append(out, k+"="+pyLiteral(v))
	}
	return out
}

// attribute returns the Python attribute name for a property and, when the
// property name itself is not usable, the db_field to keep the stored name.
func attribute(attrs *naming.Unique, name string) (attr, dbField string) {
	attr = attrs.Claim(naming.EscapePython(naming.Identifier(name)))
	if attr != name {
		return attr, name
	}
	return attr, ""
}

// withKeyword appends a keyword argument to a rendered call.
func withKeyword(call, kw string) string {
	if !strings.HasSuffix(call, ")") {
		return call
	}
	if strings.HasSuffix(call, "()") {
		return call[:len(call)-1] + kw + ")"
	}
	return call[:len(call)-1] + ", " + kw + ")"
}

func bounds[T int64 | float64](n schema.Numeric[T]) []string {
	var out []string
	if n.Minimum != nil {
		out = append(out, "min_value="+pyLiteral(*n.Minimum))
	}
	if n.Maximum != nil {
		out = append(out, "max_value="+pyLiteral(*n.Maximum))
	}
	return out
}

func className(key string) string {
	return naming.FirstUpper(naming.TypeName(key, defaultClassName, false))
}

func enumName(key string) string {
	return "E" + naming.FirstUpper(naming.TypeName(key, defaultEnumKey, false))
}

func mongoImport(symbol string) string {
	return "from mongoengine import " + symbol
}
