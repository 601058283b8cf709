package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/flexschema/fserrors"
)

// maxDepth bounds nesting (including alias expansion) while converting.
const maxDepth = 512

// Format identifies the syntax of the decoded input.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatUnknown Format = "unknown"
)

// DetectFormat guesses the input syntax from the first non-space byte.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	switch trimmed[0] {
	case '{', '[':
		return FormatJSON
	}
	return FormatYAML
}

// Decode decodes JSON or YAML bytes into raw values, one per YAML document.
// Errors are *fserrors.DecodeError.
func Decode(data []byte) ([]Value, error) {
	return decode(bytes.NewReader(data), "")
}

// DecodeReader is Decode for a reader. source names the input in errors.
func DecodeReader(r io.Reader, source string) ([]Value, error) {
	return decode(r, source)
}

// DecodeFile reads and decodes the file at path.
func DecodeFile(path string) ([]Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return decode(f, path)
}

func decode(r io.Reader, source string) ([]Value, error) {
	dec := yaml.NewDecoder(r)
	var values []Value
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &fserrors.DecodeError{Source: source, Cause: err}
		}
		if doc.Kind == yaml.DocumentNode && len(doc.Content) == 0 {
			continue
		}
		v, err := FromNode(&doc)
		if err != nil {
			return nil, &fserrors.DecodeError{Source: source, Cause: err}
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, &fserrors.DecodeError{Source: source, Cause: errors.New("empty document")}
	}
	return values, nil
}

// FromNode converts a decoded yaml.Node into a raw value.
func FromNode(n *yaml.Node) (Value, error) {
	return convert(n, 0)
}

func convert(n *yaml.Node, depth int) (Value, error) {
	if n == nil {
		return &Scalar{}, nil
	}
	if depth > maxDepth {
		return nil, fmt.Errorf("line %d: nesting exceeds %d levels", n.Line, maxDepth)
	}
	pos := Position{Line: n.Line, Column: n.Column}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return &Scalar{Position: pos}, nil
		}
		return convert(n.Content[0], depth+1)

	case yaml.AliasNode:
		return convert(n.Alias, depth+1)

	case yaml.MappingNode:
		obj := &Object{Position: pos, Entries: make([]Entry, 0, len(n.Content)/2)}
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.Value == "<<" && keyNode.ShortTag() == "!!merge" {
				if err := mergeInto(obj, valNode, depth+1); err != nil {
					return nil, err
				}
				continue
			}
			val, err := convert(valNode, depth+1)
			if err != nil {
				return nil, err
			}
			obj.set(keyNode.Value, val, Position{Line: keyNode.Line, Column: keyNode.Column})
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := &Array{Position: pos, Items: make([]Value, 0, len(n.Content))}
		for _, item := range n.Content {
			v, err := convert(item, depth+1)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, v)
		}
		return arr, nil

	case yaml.ScalarNode:
		return &Scalar{Value: scalarValue(n), Text: n.Value, Position: pos}, nil
	}

	return nil, fmt.Errorf("line %d: unsupported node kind %v", n.Line, n.Kind)
}

// set replaces the value of an existing key (last one wins) or appends.
func (o *Object) set(key string, v Value, keyPos Position) {
	for i := range o.Entries {
		if o.Entries[i].Key == key {
			o.Entries[i].Value = v
			return
		}
	}
	o.Entries = append(o.Entries, Entry{Key: key, Value: v, KeyPos: keyPos})
}

// mergeInto applies a YAML merge key: entries already present win.
func mergeInto(obj *Object, n *yaml.Node, depth int) error {
	src, err := convert(n, depth)
	if err != nil {
		return err
	}
	var sources []*Object
	switch s := src.(type) {
	case *Object:
		sources = append(sources, s)
	case *Array:
		for _, item := range s.Items {
			if o, ok := item.(*Object); ok {
				sources = append(sources, o)
			}
		}
	}
	for _, s := range sources {
		for _, e := range s.Entries {
			if _, exists := obj.Get(e.Key); !exists {
				obj.Entries = append(obj.Entries, e)
			}
		}
	}
	return nil
}

func scalarValue(n *yaml.Node) any {
	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i
		}
		var f float64
		if err := n.Decode(&f); err == nil {
			return f
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return f
		}
	}
	return n.Value
}

// FromGo converts already-decoded Go values into a raw value. Map keys are
// sorted because Go maps have no order. Positions are unknown.
func FromGo(v any) (Value, error) {
	return fromGo(v, 0)
}

func fromGo(v any, depth int) (Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("document: nesting exceeds %d levels", maxDepth)
	}
	switch v := v.(type) {
	case nil:
		return &Scalar{Text: "null"}, nil
	case Value:
		return v, nil
	case map[string]any:
		obj := &Object{Entries: make([]Entry, 0, len(v))}
		for _, k := range slices.Sorted(maps.Keys(v)) {
			child, err := fromGo(v[k], depth+1)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			obj.Entries = append(obj.Entries, Entry{Key: k, Value: child})
		}
		return obj, nil
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = val
		}
		return fromGo(m, depth)
	case []any:
		arr := &Array{Items: make([]Value, 0, len(v))}
		for i, item := range v {
			child, err := fromGo(item, depth+1)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr.Items = append(arr.Items, child)
		}
		return arr, nil
	case []map[string]any:
		items := make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return fromGo(items, depth)
	case []string:
		items := make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return fromGo(items, depth)
	case string:
		return &Scalar{Value: v, Text: v}, nil
	case bool:
		return &Scalar{Value: v, Text: fmt.Sprint(v)}, nil
	case int:
		return intScalar(int64(v)), nil
	case int32:
		return intScalar(int64(v)), nil
	case int64:
		return intScalar(v), nil
	case uint:
		return intScalar(int64(v)), nil
	case uint32:
		return intScalar(int64(v)), nil
	case float32:
		return floatScalar(float64(v)), nil
	case float64:
		return floatScalar(v), nil
	case interface{ Int64() (int64, error) }:
		// json.Number
		if i, err := v.Int64(); err == nil {
			return intScalar(i), nil
		}
		if f, ok := v.(interface{ Float64() (float64, error) }); ok {
			if x, err := f.Float64(); err == nil {
				return floatScalar(x), nil
			}
		}
	}
	return nil, fmt.Errorf("document: unsupported value of type %T", v)
}

func intScalar(i int64) *Scalar {
	return &Scalar{Value: i, Text: fmt.Sprint(i)}
}

func floatScalar(f float64) *Scalar {
	text := fmt.Sprint(f)
	if !strings.ContainsAny(text, ".eE") && !strings.Contains(text, "Inf") && !strings.Contains(text, "NaN") {
		text += ".0"
	}
	return &Scalar{Value: f, Text: text}
}
