package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/flexschema/internal/severity"
	"github.com/erraggy/flexschema/schema"
)

func TestAccumulator_Define(t *testing.T) {
	acc := NewAccumulator("typescript", "User")
	calls := 0
	render := func(name string) string {
		calls++
		return "enum " + name
	}

	first := acc.Define(DefEnum, "EStatus", `["a","b"]`, render)
	again := acc.Define(DefEnum, "EStatus", `["a","b"]`, render)
	other := acc.Define(DefEnum, "EStatus", `["x"]`, render)
	third := acc.Define(DefEnum, "EStatus", `["y"]`, render)

	assert.Equal(t, "EStatus", first)
	assert.Equal(t, "EStatus", again, "identical definitions are reused")
	assert.Equal(t, "EStatus2", other)
	assert.Equal(t, "EStatus3", third)
	assert.Equal(t, 3, calls)

	assert.Equal(t, []string{"enum EStatus", "enum EStatus2", "enum EStatus3"}, acc.Bodies(DefEnum))

	require.Len(t, acc.Issues(), 2)
	issue := acc.Issues()[0]
	assert.Equal(t, severity.SeverityWarning, issue.Severity)
	assert.Equal(t, "typescript", issue.Backend)
	assert.Equal(t, "User", issue.Schema)
	assert.Equal(t, "enum EStatus renamed to EStatus2: name already defined with different contents", issue.Message)
}

func TestAccumulator_DefineSharesNamespaceAcrossKinds(t *testing.T) {
	acc := NewAccumulator("go", "")
	acc.Define(DefType, "Status", "{}", func(string) string { return "type" })
	name := acc.Define(DefEnum, "Status", "{}", func(string) string { return "enum" })
	assert.Equal(t, "Status2", name)
}

func TestAccumulator_DefineReservesBeforeRender(t *testing.T) {
	acc := NewAccumulator("typescript", "")
	var inner string
	outer := acc.Define(DefType, "Node", "outer", func(name string) string {
		inner = acc.Define(DefType, "Node", "inner", func(n string) string { return n })
		return name
	})

	assert.Equal(t, "Node", outer)
	assert.Equal(t, "Node2", inner)

	defs := acc.Definitions("")
	require.Len(t, defs, 2)
	assert.Equal(t, "Node", defs[0].Name, "creation order, parent first")

	def, ok := acc.Lookup("Node2")
	require.True(t, ok)
	assert.Equal(t, "inner", def.Signature)
	_, ok = acc.Lookup("Missing")
	assert.False(t, ok)
}

func TestAccumulator_PathAndPlaceholder(t *testing.T) {
	acc := NewAccumulator("mongoengine", "User")
	acc.Push("properties")
	acc.Push("tags")
	acc.Push("items")
	assert.Equal(t, "properties.tags.items", acc.Path())

	got := acc.Placeholder("unsupported null field")
	assert.Equal(t, Placeholder, got)

	acc.Pop()
	acc.PushIndex(0)
	acc.Info("note")
	acc.Pop()
	acc.Pop()
	acc.Pop()
	assert.Empty(t, acc.Path())

	issues := acc.Issues()
	require.Len(t, issues, 2)
	assert.Equal(t, "properties.tags.items", issues[0].Path)
	assert.Equal(t, severity.SeverityWarning, issues[0].Severity)
	assert.Equal(t, "properties.tags[0]", issues[1].Path)
	assert.Equal(t, severity.SeverityInfo, issues[1].Severity)
}

func TestAccumulator_Result(t *testing.T) {
	acc := NewAccumulator("mongoengine", "")
	acc.Require("from mongoengine import Document", "")
	acc.Warn("w")

	tr := acc.Result("body", ".py", "# pyright: basic")
	assert.Equal(t, "body", tr.Output)
	assert.Equal(t, ".py", tr.Extension)
	assert.Equal(t, []string{"# pyright: basic"}, tr.Head)
	assert.Equal(t, []string{"from mongoengine import Document"}, tr.Deps.Sorted())
	assert.Len(t, tr.Issues, 1)
}

func TestSignature(t *testing.T) {
	mk := func(name string, required bool, prop string) schema.Node {
		return &schema.Object{
			Base:       schema.Base{Title: "Address", Name: name, Required: required},
			Properties: []schema.Property{{Name: prop, Node: &schema.String{Base: schema.Base{Name: prop}}}},
		}
	}

	assert.Equal(t, Signature(mk("home", true, "city")), Signature(mk("work", false, "city")))
	assert.NotEqual(t, Signature(mk("home", true, "city")), Signature(mk("home", true, "street")))
	assert.Empty(t, Signature(nil))

	documented := mk("home", true, "city")
	documented.Attrs().Description = "where parcels go"
	assert.NotEqual(t, Signature(mk("home", true, "city")), Signature(documented),
		"the description is rendered into the declaration")

	assert.Equal(t, `["a","b"]`, EnumSignature([]string{"a", "b"}, ""))
	assert.Equal(t, `["a","b"]:"letters"`, EnumSignature([]string{"a", "b"}, "letters"))
}

func TestBackendFunc(t *testing.T) {
	b := BackendFunc{ID: "echo", Fn: func(n schema.Node) *Translation {
		return &Translation{Output: n.Key()}
	}}
	var backend Backend = b
	assert.Equal(t, "echo", backend.Name())
	assert.Equal(t, "X", backend.Translate(&schema.Null{Base: schema.Base{Title: "X"}}).Output)
}
