package parser

import (
	"fmt"

	"github.com/erraggy/flexschema/document"
	"github.com/erraggy/flexschema/fserrors"
	"github.com/erraggy/flexschema/internal/pathutil"
	"github.com/erraggy/flexschema/schema"
)

// Parse converts one raw schema document into a schema node, resolving $ref
// names against ctx. A nil ctx behaves like an empty context. ctx is never
// modified.
//
// A missing or non-string "type" fails with a *fserrors.ParseError carrying
// the path of the offending node, except on property values, which become
// Unknown nodes. No partial tree is returned on error.
func Parse(raw document.Value, ctx *Context) (schema.Node, error) {
	b := newBuilder(ctx, nil, "")
	defer b.release()
	return b.parseNode(raw, false)
}

// ParseAll parses a raw value that is either one schema document or an
// array of them. Each element is parsed independently against ctx.
func ParseAll(raw document.Value, ctx *Context) ([]schema.Node, error) {
	b := newBuilder(ctx, nil, "")
	defer b.release()
	return b.parseAll(raw, nil)
}

// builder carries the state of one parse call.
type builder struct {
	ctx      *Context
	path     *pathutil.PathBuilder
	logger   Logger
	source   string
	warnings []string
	stats    DocumentStats
}

func newBuilder(ctx *Context, logger Logger, source string) *builder {
	return &builder{
		ctx:    ctx,
		path:   pathutil.Get(),
		logger: orNop(logger),
		source: source,
	}
}

func (b *builder) release() {
	pathutil.Put(b.path)
	b.path = nil
}

// parseAll parses an object or an array of objects. register, when set, is
// called with every completed top-level node before the next one is parsed.
func (b *builder) parseAll(raw document.Value, register func(schema.Node) error) ([]schema.Node, error) {
	arr, ok := raw.(*document.Array)
	if !ok {
		node, err := b.parseNode(raw, false)
		if err != nil {
			return nil, err
		}
		if register != nil {
			if err := register(node); err != nil {
				return nil, err
			}
		}
		return []schema.Node{node}, nil
	}

	nodes := make([]schema.Node, 0, len(arr.Items))
	for i, item := range arr.Items {
		b.path.PushIndex(i)
		node, err := b.parseNode(item, false)
		b.path.Pop()
		if err != nil {
			return nil, err
		}
		if register != nil {
			if err := register(node); err != nil {
				return nil, err
			}
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// fields accumulates the declared attributes of one raw mapping.
type fields struct {
	typ        document.Value
	base       schema.Base
	required   schema.Requirement
	properties []schema.Property
	items      schema.Node
	pattern    string
	minimum    *document.Scalar
	maximum    *document.Scalar
}

func (b *builder) parseNode(raw document.Value, underProperties bool) (schema.Node, error) {
	obj, ok := raw.(*document.Object)
	if !ok {
		return nil, b.errorf(raw, "expected a mapping, got %s", raw.Kind())
	}

	var f fields
	if req, ok := obj.Get("required"); ok {
		f.required = b.requirement(req)
	}

	for _, e := range obj.Entries {
		if err := b.field(&f, e); err != nil {
			return nil, err
		}
	}

	node, err := b.instantiate(obj, &f, underProperties)
	if err != nil {
		return nil, err
	}
	b.count(node)
	return node, nil
}

// field applies one raw entry to f.
func (b *builder) field(f *fields, e document.Entry) error {
	b.path.Push(e.Key)
	defer b.path.Pop()

	switch e.Key {
	case "type":
		f.typ = e.Value
	case "meta":
		if m, ok := e.Value.Plain().(map[string]any); ok {
			f.base.Meta = m
		} else {
			b.warn("meta must be a mapping, ignored")
		}
	case "$ref":
		b.reference(f, e.Value)
	case "properties":
		return b.properties(f, e.Value)
	case "items":
		return b.items(f, e.Value)
	case "anyOf":
		return b.anyOf(f, e.Value)
	case "required":
		// Read before the walk; only meaningful on objects.
		return b.undeclared(e.Value)
	case "default":
		f.base.Default = e.Value.Plain()
	case "enum":
		return b.enum(f, e.Value)
	case "unique":
		if v, ok := scalarBool(e.Value); ok {
			f.base.Unique = v
		} else {
			b.warn("unique must be a boolean, ignored")
		}
	case "minimum":
		f.minimum = b.numericScalar(e.Value)
	case "maximum":
		f.maximum = b.numericScalar(e.Value)
	case "description":
		return b.text(&f.base.Description, e.Value)
	case "title":
		return b.text(&f.base.Title, e.Value)
	case "name":
		return b.text(&f.base.Name, e.Value)
	case "$id":
		return b.text(&f.base.ID, e.Value)
	case "$schema":
		return b.text(&f.base.Schema, e.Value)
	case "pattern":
		return b.text(&f.pattern, e.Value)
	default:
		return b.undeclared(e.Value)
	}
	return nil
}

// undeclared handles a value under a key no variant declares. Nested
// mappings are still parsed as schema nodes so malformed nested schemas are
// reported; the results are dropped.
func (b *builder) undeclared(v document.Value) error {
	switch v := v.(type) {
	case *document.Object:
		_, err := b.parseNode(v, false)
		return err
	case *document.Array:
		for i, item := range v.Items {
			if _, ok := item.(*document.Object); !ok {
				continue
			}
			b.path.PushIndex(i)
			_, err := b.parseNode(item, false)
			b.path.Pop()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) text(dst *string, v document.Value) error {
	s, ok := v.(*document.Scalar)
	if !ok {
		return b.undeclared(v)
	}
	if !s.IsNull() {
		*dst = s.Text
	}
	return nil
}

func (b *builder) reference(f *fields, v document.Value) {
	s, ok := v.(*document.Scalar)
	name, isString := "", false
	if ok {
		name, isString = s.Str()
	}
	if !isString {
		b.warn("$ref must be a string, ignored")
		return
	}
	if target, found := b.ctx.Lookup(name); found {
		f.base.Ref = &schema.Ref{Name: name, Target: target}
		b.stats.ResolvedRefs++
		b.logger.Debug("resolved reference", "ref", name, "path", b.path.String())
		return
	}
	f.base.Ref = &schema.Ref{Name: name}
	b.stats.UnresolvedRefs++
	b.logger.Debug("unresolved reference kept by name", "ref", name, "path", b.path.String())
}

func (b *builder) properties(f *fields, v document.Value) error {
	obj, ok := v.(*document.Object)
	if !ok {
		b.warn("properties must be a mapping, ignored")
		return b.undeclared(v)
	}
	props := make([]schema.Property, 0, len(obj.Entries))
	for _, e := range obj.Entries {
		b.path.Push(e.Key)
		child, err := b.parseNode(e.Value, true)
		b.path.Pop()
		if err != nil {
			return err
		}
		attrs := child.Attrs()
		attrs.Name = e.Key
		if f.required.IsList() && f.required.Has(child.Key()) {
			attrs.Required = true
		}
		props = append(props, schema.Property{Name: e.Key, Node: child})
	}
	f.properties = props
	return nil
}

func (b *builder) items(f *fields, v document.Value) error {
	switch v := v.(type) {
	case *document.Object:
		child, err := b.parseNode(v, false)
		if err != nil {
			return err
		}
		f.items = child
		return nil
	case *document.Array:
		b.warn("tuple-form items are not supported, ignored")
		return b.undeclared(v)
	}
	b.warn("items must be a mapping, ignored")
	return nil
}

func (b *builder) anyOf(f *fields, v document.Value) error {
	arr, ok := v.(*document.Array)
	if !ok {
		b.warn("anyOf must be a sequence, ignored")
		return b.undeclared(v)
	}
	for i, item := range arr.Items {
		if _, ok := item.(*document.Object); !ok {
			continue
		}
		b.path.PushIndex(i)
		alt, err := b.parseNode(item, false)
		b.path.Pop()
		if err != nil {
			return err
		}
		f.base.AnyOf = append(f.base.AnyOf, alt)
	}
	return nil
}

func (b *builder) enum(f *fields, v document.Value) error {
	arr, ok := v.(*document.Array)
	if !ok {
		b.warn("enum must be a sequence, ignored")
		return b.undeclared(v)
	}
	values := make([]string, 0, len(arr.Items))
	for _, item := range arr.Items {
		if s, ok := item.(*document.Scalar); ok {
			values = append(values, s.Text)
		}
	}
	if err := b.undeclared(v); err != nil {
		return err
	}
	f.base.Enum = values
	return nil
}

func (b *builder) requirement(v document.Value) schema.Requirement {
	switch v := v.(type) {
	case *document.Array:
		names := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			if s, ok := item.(*document.Scalar); ok {
				names = append(names, s.Text)
			}
		}
		return schema.Requirement{Names: names}
	case *document.Scalar:
		if flag, ok := v.Bool(); ok {
			return schema.Requirement{Bool: &flag}
		}
	}
	return schema.Requirement{}
}

func (b *builder) numericScalar(v document.Value) *document.Scalar {
	s, ok := v.(*document.Scalar)
	if ok {
		if _, numeric := s.Float(); numeric {
			return s
		}
	}
	b.warn("bound must be a number, ignored")
	return nil
}

// instantiate picks the variant from the raw type and copies over the
// fields that variant declares.
func (b *builder) instantiate(obj *document.Object, f *fields, underProperties bool) (schema.Node, error) {
	typeName, err := b.typeName(obj, f.typ, underProperties)
	if err != nil {
		return nil, err
	}

	kind, known := schema.LookupKind(typeName)
	if !known {
		return &schema.Unknown{Base: f.base, TypeName: typeName}, nil
	}

	switch kind {
	case schema.KindObject:
		return &schema.Object{Base: f.base, Properties: f.properties, RequiredKeys: f.required}, nil
	case schema.KindArray:
		return &schema.Array{Base: f.base, Items: f.items}, nil
	case schema.KindString:
		return &schema.String{Base: f.base, Pattern: f.pattern}, nil
	case schema.KindInteger:
		n := &schema.Integer{Base: f.base}
		n.Minimum = b.intBound(f.minimum, "minimum")
		n.Maximum = b.intBound(f.maximum, "maximum")
		return n, nil
	case schema.KindFloat:
		n := &schema.Float{Base: f.base}
		n.Minimum = floatBound(f.minimum)
		n.Maximum = floatBound(f.maximum)
		return n, nil
	case schema.KindBoolean:
		return &schema.Boolean{Base: f.base}, nil
	case schema.KindNull:
		return &schema.Null{Base: f.base}, nil
	}
	return &schema.Unknown{Base: f.base, TypeName: typeName}, nil
}

func (b *builder) typeName(obj *document.Object, typ document.Value, underProperties bool) (string, error) {
	if typ == nil {
		if underProperties {
			return schema.UnknownTypeName, nil
		}
		return "", b.errorf(obj, "missing `type`")
	}
	if s, ok := typ.(*document.Scalar); ok {
		if name, ok := s.Str(); ok {
			return name, nil
		}
	}
	if underProperties {
		return schema.UnknownTypeName, nil
	}
	return "", b.errorf(typ, "`type` must be a string")
}

func (b *builder) intBound(s *document.Scalar, name string) *int64 {
	if s == nil {
		return nil
	}
	i, ok := s.Int()
	if !ok {
		b.path.Push(name)
		b.warn("integer bound must be a whole number, ignored")
		b.path.Pop()
		return nil
	}
	return &i
}

func floatBound(s *document.Scalar) *float64 {
	if s == nil {
		return nil
	}
	f, _ := s.Float()
	return &f
}

func (b *builder) count(node schema.Node) {
	b.stats.Nodes++
	switch node.Kind() {
	case schema.KindObject:
		b.stats.Objects++
	case schema.KindUnknown:
		b.stats.Unknown++
	}
	if node.Attrs().HasEnum() {
		b.stats.Enums++
	}
}

func (b *builder) warn(msg string) {
	path := b.path.String()
	if path == "" {
		path = "<root>"
	}
	b.warnings = append(b.warnings, path+": "+msg)
	b.logger.Warn(msg, "path", path)
}

func (b *builder) errorf(at document.Value, format string, args ...any) error {
	pos := at.Pos()
	return &fserrors.ParseError{
		Source:  b.source,
		Path:    b.path.String(),
		Line:    pos.Line,
		Column:  pos.Column,
		Message: fmt.Sprintf(format, args...),
	}
}

func scalarBool(v document.Value) (value, ok bool) {
	s, isScalar := v.(*document.Scalar)
	if !isScalar {
		return false, false
	}
	return s.Bool()
}
