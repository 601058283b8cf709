package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/flexschema/document"
	"github.com/erraggy/flexschema/fserrors"
	"github.com/erraggy/flexschema/schema"
)

const linkedSchemas = `[
  {"title": "Address", "type": "object", "properties": {"city": {"type": "string"}}},
  {"title": "Customer", "type": "object", "properties": {"home": {"$ref": "Address"}}}
]`

const yamlStream = `title: Product
type: object
properties:
  kind:
    type: string
    enum: [physical, digital]
---
title: Category
type: object
properties:
  parent:
    $ref: Product
`

func TestParser_ParseBytes(t *testing.T) {
	result, err := New().ParseBytes([]byte(linkedSchemas))
	require.NoError(t, err)

	assert.Equal(t, "bytes", result.SourcePath)
	assert.Equal(t, document.FormatJSON, result.SourceFormat)
	assert.Equal(t, int64(len(linkedSchemas)), result.SourceSize)
	require.Equal(t, 2, result.SchemaCount())
	assert.Equal(t, "Address", result.Schemas[0].Key())
	assert.Equal(t, 1, result.Stats.UnresolvedRefs)
	assert.Nil(t, result.Context)
}

func TestParser_LinkSchemas(t *testing.T) {
	p := New()
	p.LinkSchemas = true

	result, err := p.ParseBytes([]byte(linkedSchemas))
	require.NoError(t, err)

	customer := result.Schemas[1].(*schema.Object)
	home, ok := customer.Get("home")
	require.True(t, ok)
	assert.Same(t, result.Schemas[0], home.Attrs().Ref.Target)
	assert.Equal(t, []string{"Address", "Customer"}, result.Context.Names())
	assert.Equal(t, 1, result.Stats.ResolvedRefs)
}

func TestParser_LinkSchemasForksContext(t *testing.T) {
	base := NewContext()
	require.NoError(t, base.Register("Shared", &schema.String{}))

	p := &Parser{Context: base, LinkSchemas: true}
	result, err := p.ParseBytes([]byte(linkedSchemas))
	require.NoError(t, err)

	assert.Equal(t, []string{"Shared"}, base.Names(), "caller context is untouched")
	_, ok := result.Context.Lookup("Shared")
	assert.True(t, ok)
}

func TestParser_LinkSchemasDuplicateKey(t *testing.T) {
	p := &Parser{LinkSchemas: true}
	_, err := p.ParseBytes([]byte(`[{"title":"A","type":"string"},{"title":"A","type":"integer"}]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, fserrors.ErrReference)
}

func TestParser_YAMLStream(t *testing.T) {
	p := &Parser{LinkSchemas: true}
	result, err := p.ParseReader(strings.NewReader(yamlStream))
	require.NoError(t, err)

	assert.Equal(t, document.FormatYAML, result.SourceFormat)
	require.Len(t, result.Schemas, 2)

	category := result.Schemas[1].(*schema.Object)
	parent, _ := category.Get("parent")
	assert.Same(t, result.Schemas[0], parent.Attrs().Ref.Target)
}

func TestParser_ErrorPathIncludesDocument(t *testing.T) {
	src := "type: string\n---\ntitle: Broken\n"
	_, err := New().ParseBytes([]byte(src))
	require.Error(t, err)

	var pe *fserrors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "document1", pe.Path)
	assert.Equal(t, "bytes", pe.Source)
	assert.Equal(t, 3, pe.Line)
}

func TestParser_Warnings(t *testing.T) {
	result, err := New().ParseBytes([]byte(`{"type":"object","meta":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"meta: meta must be a mapping, ignored"}, result.Warnings)
}

func TestParser_DecodeError(t *testing.T) {
	_, err := New().ParseBytes([]byte("{not: [valid"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fserrors.ErrDecode)
}

func TestParser_MaxFileSize(t *testing.T) {
	p := &Parser{MaxFileSize: 4}
	_, err := p.ParseBytes([]byte(`{"type":"string"}`))
	assert.ErrorContains(t, err, "exceeds 4 bytes")

	_, err = p.ParseReader(bytes.NewReader([]byte(`{"type":"string"}`)))
	assert.Error(t, err)
}

func TestParser_ParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: boolean\n"), 0o600))

	result, err := New().ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, schema.KindBoolean, result.Schemas[0].Kind())

	_, err = New().ParseFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read file")
}

func TestParser_ParseDocument(t *testing.T) {
	values, err := document.Decode([]byte(`{"type":"null"}`))
	require.NoError(t, err)

	result, err := New().ParseDocument(values...)
	require.NoError(t, err)
	assert.Equal(t, document.FormatUnknown, result.SourceFormat)
	assert.Equal(t, schema.KindNull, result.Schemas[0].Kind())
}

func TestParseWithOptions(t *testing.T) {
	t.Run("bytes with linking", func(t *testing.T) {
		result, err := ParseWithOptions(
			WithBytes([]byte(linkedSchemas)),
			WithLinkSchemas(true),
			WithSourceName("inline"),
		)
		require.NoError(t, err)
		assert.Equal(t, "inline", result.SourcePath)
		assert.Equal(t, 1, result.Stats.ResolvedRefs)
	})

	t.Run("context", func(t *testing.T) {
		ctx := NewContext()
		require.NoError(t, ctx.Register("Address", &schema.Object{}))
		result, err := ParseWithOptions(
			WithReader(strings.NewReader(`{"type":"object","properties":{"a":{"$ref":"Address"}}}`)),
			WithContext(ctx),
		)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Stats.ResolvedRefs)
	})

	t.Run("no input", func(t *testing.T) {
		_, err := ParseWithOptions()
		require.Error(t, err)
		assert.ErrorIs(t, err, fserrors.ErrConfig)
		assert.ErrorContains(t, err, "must specify an input source")
	})

	t.Run("two inputs", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte("{}")), WithFilePath("x.json"))
		assert.ErrorContains(t, err, "exactly one input source")
	})

	t.Run("invalid option values", func(t *testing.T) {
		_, err := ParseWithOptions(WithReader(nil))
		assert.ErrorContains(t, err, "reader cannot be nil")

		_, err = ParseWithOptions(WithBytes([]byte("{}")), WithMaxFileSize(-1))
		assert.ErrorContains(t, err, "cannot be negative")
	})
}
