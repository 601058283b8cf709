package gostruct

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/flexschema/internal/naming"
	"github.com/erraggy/flexschema/schema"
	"github.com/erraggy/flexschema/translate"
)

// Name identifies this backend.
const Name = "go"

// Extension is the file extension of the generated code.
const Extension = ".go"

// DefaultPackageName is used when Options.PackageName is empty.
const DefaultPackageName = "models"

// GeneratedHeader marks the file as generated for go tooling.
const GeneratedHeader = "// Code generated by flexschema. DO NOT EDIT."

const (
	defaultStructName = "SomeObject"
	defaultEnumKey    = "Unknown"
	typeAny           = "any"
	typeRawJSON       = "json.RawMessage"
)

// Options configures the Go backend.
type Options struct {
	// PackageName is the package clause of generated files.
	// Default: "models"
	PackageName string
	// UsePointers makes optional scalar and struct fields pointers.
	UsePointers bool
	// IncludeValidation adds validate tags for required, bounds and enums.
	IncludeValidation bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		PackageName:       DefaultPackageName,
		UsePointers:       true,
		IncludeValidation: true,
	}
}

// Backend is the Go backend.
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
	if opts.PackageName == "" {
		opts.PackageName = DefaultPackageName
	}
	t := &translator{
		opts: opts,
		acc:  translate.NewAccumulator(Name, node.Key()),
	}
	t.root(node)

	blocks := append(t.acc.Bodies(translate.DefType), t.acc.Bodies(translate.DefEnum)...)
	output := translate.DepsMarker + "\n" + strings.Join(blocks, "\n\n") + "\n"
	return t.acc.Result(output, Extension, GeneratedHeader, "", "package "+opts.PackageName)
}

type translator struct {
	opts Options
	acc  *translate.Accumulator
}

// root declares the type a top-level schema stands for.
func (t *translator) root(node schema.Node) {
	b := node.Attrs()
	if obj, ok := node.(*schema.Object); ok && b.Ref == nil && len(b.AnyOf) == 0 {
		t.declare(obj)
		return
	}
	if s, ok := node.(*schema.String); ok && s.HasEnum() && b.Ref == nil && len(b.AnyOf) == 0 {
		t.enum(s)
		return
	}
	if node.Key() == "" {
		t.acc.Warn("no type emitted for unnamed root " + node.Kind().String() + " schema")
		return
	}
	name := typeName(node.Key(), defaultStructName)
	goType := t.goType(node)
	t.acc.Define(translate.DefType, name, translate.Signature(node), func(name string) string {
		return docComment(name, b.Description) + "type " + name + " " + goType
	})
}

// goType returns the Go type of node as a required value.
func (t *translator) goType(node schema.Node) string {
	b := node.Attrs()
	if b.Ref != nil {
		return refType(b.Ref)
	}
	if len(b.AnyOf) > 0 {
		t.acc.Require(`import "encoding/json"`)
		return typeRawJSON
	}

	switch n := node.(type) {
	case *schema.Object:
		return t.declare(n)
	case *schema.String:
		if n.HasEnum() {
			return t.enum(n)
		}
		return "string"
	case *schema.Integer:
		return "int64"
	case *schema.Float:
		return "float64"
	case *schema.Boolean:
		return "bool"
	case *schema.Null:
		return typeAny
	case *schema.Array:
		if n.Items == nil {
			return "[]" + typeAny
		}
		t.acc.Push("items")
		defer t.acc.Pop()
		return "[]" + t.goType(n.Items)
	case *schema.Unknown:
		switch n.TypeName {
		case "date", "datetime":
			t.acc.Require(`import "time"`)
			return "time.Time"
		case "file":
			return "[]byte"
		}
		return typeAny
	}
	t.acc.Warn("unsupported node kind " + node.Kind().String())
	return typeAny
}

// declare hoists obj as a struct and returns its name.
func (t *translator) declare(obj *schema.Object) string {
	base := typeName(obj.Key(), defaultStructName)
	return t.acc.Define(translate.DefType, base, translate.Signature(obj), func(name string) string {
		var b strings.Builder
		b.WriteString(docComment(name, obj.Description))
		b.WriteString("type ")
		b.WriteString(name)
		b.WriteString(" struct {\n")

		fields := naming.NewUnique()
		t.acc.Push("properties")
		for _, p := range obj.Properties {
			t.acc.Push(p.Name)
			b.WriteString(t.field(name, p, fields))
			t.acc.Pop()
		}
		t.acc.Pop()
		b.WriteByte('}')
		return b.String()
	})
}

// field renders one struct field line, with its comment, for property p of
// the struct named parent.
func (t *translator) field(parent string, p schema.Property, fields *naming.Unique) string {
	attrs := p.Node.Attrs()
	goType := t.goType(p.Node)
	// A struct cannot contain itself by value.
	if goType == parent || (!attrs.Required && t.opts.UsePointers && pointable(goType)) {
		goType = "*" + goType
	}

	fieldName := fields.Claim(naming.EscapeGo(naming.Pascal(p.Name, "Field")))

	jsonTag := p.Name
	if !attrs.Required {
		jsonTag += ",omitempty"
	}
	tags := fmt.Sprintf("json:%q", jsonTag)
	if t.opts.IncludeValidation {
		if v := validateTag(p.Node); v != "" {
			tags += fmt.Sprintf(" validate:%q", v)
		}
	}

	var b strings.Builder
	if desc := naming.CleanDescription(attrs.Description); desc != "" {
		b.WriteString("\t// " + desc + "\n")
	}
	b.WriteString("\t" + fieldName + " " + goType + " `" + tags + "`\n")
	return b.String()
}

// enum hoists a string enum as a named type with one constant per value.
func (t *translator) enum(n *schema.String) string {
	return t.acc.Define(translate.DefEnum, enumName(n.Key()), translate.EnumSignature(n.Enum, n.Description), func(name string) string {
		var b strings.Builder
		desc := n.Description
		if desc == "" {
			desc = "enumerates the allowed values of " + n.Key() + "."
		}
		b.WriteString(docComment(name, desc))
		b.WriteString("type " + name + " string\n\nconst (\n")

		consts := naming.NewUnique()
		for _, v := range n.Enum {
			constName := consts.Claim(name + naming.Pascal(v, "Empty"))
			b.WriteString("\t" + constName + " " + name + " = " + strconv.Quote(v) + "\n")
		}
		b.WriteByte(')')
		return b.String()
	})
}

// validateTag builds the validate tag for a field from its constraints.
func validateTag(node schema.Node) string {
	var parts []string
	if node.Attrs().Required {
		parts = append(parts, "required")
	}
	switch n := node.(type) {
	case *schema.Integer:
		parts = append(parts, boundTags(n.Numeric)...)
	case *schema.Float:
		parts = append(parts, boundTags(n.Numeric)...)
	case *schema.String:
		if n.HasEnum() && n.Ref == nil {
			parts = append(parts, "oneof="+strings.Join(n.Enum, " "))
		}
	}
	return strings.Join(parts, ",")
}

func boundTags[T int64 | float64](n schema.Numeric[T]) []string {
	var out []string
	if n.Minimum != nil {
		out = append(out, fmt.Sprintf("gte=%v", *n.Minimum))
	}
	if n.Maximum != nil {
		out = append(out, fmt.Sprintf("lte=%v", *n.Maximum))
	}
	return out
}

// refType returns the Go type a reference renders as.
func refType(ref *schema.Ref) string {
	if ref.Resolved() {
		if s, ok := ref.Target.(*schema.String); ok && s.HasEnum() {
			return enumName(ref.TargetName())
		}
		return typeName(ref.TargetName(), defaultStructName)
	}
	name := ref.Name
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return typeName(name, defaultStructName)
}

// pointable reports whether an optional field of goType should become a
// pointer. Slices, maps and interface-like types already have a nil value.
func pointable(goType string) bool {
	switch {
	case strings.HasPrefix(goType, "[]"),
		strings.HasPrefix(goType, "*"),
		strings.HasPrefix(goType, "map["),
		goType == typeAny,
		goType == typeRawJSON:
		return false
	}
	return true
}

func typeName(key, fallback string) string {
	return naming.EscapeGo(naming.Pascal(key, fallback))
}

func enumName(key string) string {
	return "E" + naming.Pascal(key, defaultEnumKey)
}

// docComment renders a Go doc comment starting with name.
func docComment(name, desc string) string {
	desc = naming.CleanDescription(desc)
	if desc == "" {
		return ""
	}
	return "// " + name + " " + desc + "\n"
}
