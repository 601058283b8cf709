package typescript

import (
	"strconv"
	"strings"

	"github.com/erraggy/flexschema/internal/naming"
	"github.com/erraggy/flexschema/schema"
	"github.com/erraggy/flexschema/translate"
)

// Name identifies this backend.
const Name = "typescript"

// Extension is the file extension of the generated code.
const Extension = ".ts"

const (
	defaultObjectName = "SomeObject"
	defaultTypeName   = "SomeType"
	defaultEnumKey    = "Unknown"
	indentUnit        = "  "
)

// Options configures the TypeScript backend.
type Options struct {
	// InlineObjects writes nested objects as inline object literals.
	// When false every object gets its own exported type.
	InlineObjects bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{InlineObjects: true}
}

// Backend is the TypeScript backend.
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

// Translate renders node and every declaration hoisted out of it.
func Translate(node schema.Node, opts Options) *translate.Translation {
	t := &translator{
		opts: opts,
		acc:  translate.NewAccumulator(Name, node.Key()),
	}

	var root string
	if obj, ok := node.(*schema.Object); ok && obj.Attrs().Ref == nil && len(obj.AnyOf) == 0 {
		t.declare(obj)
	} else {
		name := naming.TypeName(node.Key(), defaultTypeName, false)
		root = comment(node.Attrs().Description, "") + "export type " + name + " = " + t.expr(node, 0) + ";"
	}

	var blocks []string
	if root != "" {
		blocks = append(blocks, root)
	}
	blocks = append(blocks, t.acc.Bodies(translate.DefType)...)
	blocks = append(blocks, t.acc.Bodies(translate.DefEnum)...)
	return t.acc.Result(strings.Join(blocks, "\n\n")+"\n", Extension)
}

type translator struct {
	opts Options
	acc  *translate.Accumulator
}

// expr returns the type expression for node written at the given depth.
func (t *translator) expr(node schema.Node, depth int) string {
	b := node.Attrs()
	if b.Ref != nil {
		return refName(b.Ref)
	}
	if len(b.AnyOf) > 0 {
		return t.union(b.AnyOf, depth)
	}

	switch n := node.(type) {
	case *schema.Object:
		if t.opts.InlineObjects && depth > 0 {
			return t.literal(n, depth)
		}
		return t.declare(n)
	case *schema.String:
		if n.HasEnum() {
			return t.enum(n)
		}
		return "string"
	case *schema.Integer, *schema.Float:
		return "number"
	case *schema.Boolean:
		return "boolean"
	case *schema.Null:
		return "null"
	case *schema.Array:
		if n.Items == nil {
			return "Array<any>"
		}
		t.acc.Push("items")
		defer t.acc.Pop()
		return "Array<" + t.expr(n.Items, depth) + ">"
	case *schema.Unknown:
		switch n.TypeName {
		case "date", "datetime":
			return "Date"
		}
		return "unknown"
	}
	return t.acc.Placeholder("unsupported node kind " + node.Kind().String())
}

func (t *translator) union(alts []schema.Node, depth int) string {
	t.acc.Push("anyOf")
	defer t.acc.Pop()

	parts := make([]string, 0, len(alts))
	for i, alt := range alts {
		t.acc.PushIndex(i)
		parts = append(parts, t.expr(alt, depth))
		t.acc.Pop()
	}
	return strings.Join(parts, " | ")
}

// declare hoists obj as an exported type and returns its name.
func (t *translator) declare(obj *schema.Object) string {
	base := naming.TypeName(obj.Key(), defaultObjectName, false)
	return t.acc.Define(translate.DefType, base, translate.Signature(obj), func(name string) string {
		return comment(obj.Description, "") + "export type " + name + " = " + t.literal(obj, 0) + ";"
	})
}

// literal renders the object literal body of obj at depth.
func (t *translator) literal(obj *schema.Object, depth int) string {
	if len(obj.Properties) == 0 {
		return "{}"
	}
	indent := strings.Repeat(indentUnit, depth+1)

	var b strings.Builder
	b.WriteString("{\n")
	t.acc.Push("properties")
	for _, p := range obj.Properties {
		t.acc.Push(p.Name)
		b.WriteString(comment(p.Node.Attrs().Description, indent))
		b.WriteString(indent)
		b.WriteString(propertyName(p.Name))
		if !p.Node.Attrs().Required {
			b.WriteByte('?')
		}
		b.WriteString(": ")
		b.WriteString(t.expr(p.Node, depth+1))
		b.WriteString(";\n")
		t.acc.Pop()
	}
	t.acc.Pop()
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteByte('}')
	return b.String()
}

func (t *translator) enum(n *schema.String) string {
	return t.acc.Define(translate.DefEnum, enumName(n.Key()), translate.EnumSignature(n.Enum, ""), func(name string) string {
		var b strings.Builder
		b.WriteString("export enum ")
		b.WriteString(name)
		b.WriteString(" {\n")
		members := naming.NewUnique()
		for _, v := range n.Enum {
			b.WriteString(indentUnit)
			b.WriteString(t.member(name, members, naming.Identifier(v)))
			b.WriteString(" = ")
			b.WriteString(strconv.Quote(v))
			b.WriteString(",\n")
		}
		b.WriteByte('}')
		return b.String()
	})
}

// member claims an enum member identifier, warning when it had to be renamed
// because another value cleaned up to the same identifier.
func (t *translator) member(enum string, members *naming.Unique, id string) string {
	got := members.Claim(id)
	if got != id {
		t.acc.Warn("enum " + enum + " member " + id + " renamed to " + got + ": identifier already used")
	}
	return got
}

// enumName returns the declaration name for an enum keyed key.
func enumName(key string) string {
	return "E" + naming.TypeName(key, defaultEnumKey, true)
}

// refName returns the type name a reference renders as. Resolved string
// enums render as their enum name; everything else as the key.
func refName(ref *schema.Ref) string {
	if ref.Resolved() {
		if s, ok := ref.Target.(*schema.String); ok && s.HasEnum() {
			return enumName(ref.TargetName())
		}
		if key := ref.Target.Key(); key != "" {
			return naming.StripSpace(key)
		}
	}
	return naming.RefName(ref.Name)
}

func propertyName(name string) string {
	if naming.IsIdentifier(name) {
		return name
	}
	return strconv.Quote(name)
}

func comment(desc, indent string) string {
	desc = naming.CleanDescription(desc)
	if desc == "" {
		return ""
	}
	return indent + "/** " + strings.ReplaceAll(desc, "*/", "* /") + " */\n"
}
