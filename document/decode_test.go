package document

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/flexschema/fserrors"
)

func decodeOne(t *testing.T, src string) Value {
	t.Helper()
	values, err := Decode([]byte(src))
	require.NoError(t, err)
	require.Len(t, values, 1)
	return values[0]
}

func keys(o *Object) []string {
	out := make([]string, 0, len(o.Entries))
	for _, e := range o.Entries {
		out = append(out, e.Key)
	}
	return out
}

func TestDecode_JSONKeepsOrder(t *testing.T) {
	v := decodeOne(t, `{"type":"object","properties":{"zeta":{"type":"string"},"alpha":{"type":"integer"},"mid":{"type":"boolean"}}}`)

	obj, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"type", "properties"}, keys(obj))

	props, ok := obj.Get("properties")
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys(props.(*Object)))
}

func TestDecode_ScalarTypes(t *testing.T) {
	v := decodeOne(t, `{"s":"1","i":42,"f":1.5,"b":true,"n":null,"big":1e3,"neg":-7}`)
	obj := v.(*Object)

	get := func(k string) *Scalar {
		val, ok := obj.Get(k)
		require.True(t, ok, k)
		return val.(*Scalar)
	}

	assert.Equal(t, "1", get("s").Value)
	assert.Equal(t, int64(42), get("i").Value)
	assert.Equal(t, 1.5, get("f").Value)
	assert.Equal(t, true, get("b").Value)
	assert.Nil(t, get("n").Value)
	assert.True(t, get("n").IsNull())
	assert.Equal(t, int64(-7), get("neg").Value)

	f, ok := get("big").Float()
	assert.True(t, ok)
	assert.Equal(t, 1000.0, f)

	assert.Equal(t, "42", get("i").Text)
}

func TestDecode_Positions(t *testing.T) {
	src := "type: object\nproperties:\n  name:\n    type: string\n"
	obj := decodeOne(t, src).(*Object)

	assert.Equal(t, Position{Line: 1, Column: 1}, obj.Pos())
	props, _ := obj.Get("properties")
	name, _ := props.(*Object).Get("name")
	assert.Equal(t, 4, name.Pos().Line)
	assert.Equal(t, 5, name.Pos().Column)
	assert.Equal(t, 3, props.(*Object).Entries[0].KeyPos.Line)
}

func TestDecode_YAMLStream(t *testing.T) {
	values, err := Decode([]byte("type: string\n---\ntype: integer\n"))
	require.NoError(t, err)
	require.Len(t, values, 2)

	typ, _ := values[1].(*Object).Get("type")
	s, ok := typ.(*Scalar).Str()
	assert.True(t, ok)
	assert.Equal(t, "integer", s)
}

func TestDecode_AliasesAndMergeKeys(t *testing.T) {
	src := `
base: &base
  type: string
  description: shared
copy: *base
merged:
  <<: *base
  description: own
`
	obj := decodeOne(t, src).(*Object)

	cp, _ := obj.Get("copy")
	assert.Equal(t, map[string]any{"type": "string", "description": "shared"}, cp.Plain())

	merged, _ := obj.Get("merged")
	assert.Equal(t, map[string]any{"type": "string", "description": "own"}, merged.Plain())
	assert.Equal(t, []string{"type", "description"}, keys(merged.(*Object)))
}

func TestDecode_DuplicateKeyLastWins(t *testing.T) {
	obj := decodeOne(t, `{"a":1,"b":2,"a":3}`).(*Object)
	assert.Equal(t, []string{"a", "b"}, keys(obj))
	a, _ := obj.Get("a")
	assert.Equal(t, int64(3), a.Plain())
}

func TestDecode_Errors(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		_, err := Decode([]byte(`{"type": `))
		require.Error(t, err)
		assert.ErrorIs(t, err, fserrors.ErrDecode)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Decode([]byte("   \n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty document")
	})
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"type":"string"},{"type":"null"}]`), 0o600))

	values, err := DecodeFile(path)
	require.NoError(t, err)
	require.Len(t, values, 1)
	arr, ok := values[0].(*Array)
	require.True(t, ok)
	assert.Len(t, arr.Items, 2)

	_, err = DecodeFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = DecodeReader(strings.NewReader("a: [1,"), "inline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inline")
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat([]byte("  {\"a\":1}")))
	assert.Equal(t, FormatJSON, DetectFormat([]byte("\n[1]")))
	assert.Equal(t, FormatYAML, DetectFormat([]byte("type: string")))
	assert.Equal(t, FormatUnknown, DetectFormat(nil))
}

func TestFromGo(t *testing.T) {
	var decoded any
	require.NoError(t, json.Unmarshal([]byte(`{"type":"object","required":["b"],"properties":{"b":{"type":"integer","minimum":2}}}`), &decoded))

	v, err := FromGo(decoded)
	require.NoError(t, err)
	obj := v.(*Object)
	assert.Equal(t, []string{"properties", "required", "type"}, keys(obj), "keys are sorted")
	assert.False(t, obj.Pos().IsKnown())

	props, _ := obj.Get("properties")
	b, _ := props.(*Object).Get("b")
	min, _ := b.(*Object).Get("minimum")
	i, ok := min.(*Scalar).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(2), i)

	t.Run("json.Number", func(t *testing.T) {
		v, err := FromGo(json.Number("12"))
		require.NoError(t, err)
		assert.Equal(t, int64(12), v.Plain())
	})

	t.Run("floats keep a decimal in text", func(t *testing.T) {
		v, err := FromGo(2.0)
		require.NoError(t, err)
		assert.Equal(t, "2.0", v.(*Scalar).Text)

		v, err = FromGo(math.Inf(1))
		require.NoError(t, err)
		assert.Equal(t, "+Inf", v.(*Scalar).Text)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := FromGo(struct{}{})
		assert.Error(t, err)

		_, err = FromGo(map[string]any{"x": []any{make(chan int)}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "x: [0]")
	})

	t.Run("passes raw values through", func(t *testing.T) {
		s := &Scalar{Value: "a"}
		v, err := FromGo(s)
		require.NoError(t, err)
		assert.Same(t, s, v)
	})
}

func TestScalarAccessors(t *testing.T) {
	s := &Scalar{Value: 3.0}
	i, ok := s.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(3), i)

	_, ok = (&Scalar{Value: 3.5}).Int()
	assert.False(t, ok)

	_, ok = (&Scalar{Value: "x"}).Float()
	assert.False(t, ok)

	b, ok := (&Scalar{Value: true}).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "2:3", Position{Line: 2, Column: 3}.String())
}
