package schema

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKind(t *testing.T) {
	tests := []struct {
		name string
		want Kind
		ok   bool
	}{
		{"object", KindObject, true},
		{"array", KindArray, true},
		{"string", KindString, true},
		{"integer", KindInteger, true},
		{"number", KindFloat, true},
		{"boolean", KindBoolean, true},
		{"null", KindNull, true},
		{"UNKNOWN", "", false},
		{"file", "", false},
		{"Object", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupKind(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKey(t *testing.T) {
	n := &String{Base: Base{Name: "status"}}
	assert.Equal(t, "status", n.Key())

	n.Title = "Order Status"
	assert.Equal(t, "Order Status", n.Key())

	assert.Empty(t, (&Object{}).Key())
}

func TestFlags(t *testing.T) {
	collect := func(n Node) []Flag { return slices.Collect(n.Flags()) }

	t.Run("nothing set", func(t *testing.T) {
		assert.Empty(t, collect(&String{}))
	})

	t.Run("order is required, default, unique", func(t *testing.T) {
		n := &String{Base: Base{Required: true, Default: "x", Unique: true}}
		assert.Equal(t, []Flag{
			{FlagRequired, true},
			{FlagDefault, "x"},
			{FlagUnique, true},
		}, collect(n))
	})

	t.Run("false default is skipped, zero number is kept", func(t *testing.T) {
		assert.Empty(t, collect(&Boolean{Base: Base{Default: false}}))
		assert.Equal(t, []Flag{{FlagDefault, int64(0)}}, collect(&Integer{Base: Base{Default: int64(0)}}))
	})

	t.Run("early stop", func(t *testing.T) {
		n := &String{Base: Base{Required: true, Unique: true}}
		var seen []string
		for f := range n.Flags() {
			seen = append(seen, f.Name)
			break
		}
		assert.Equal(t, []string{FlagRequired}, seen)
	})
}

func TestObjectGet(t *testing.T) {
	a := &String{Base: Base{Name: "a"}}
	obj := &Object{Properties: []Property{{Name: "a", Node: a}}}

	got, ok := obj.Get("a")
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = obj.Get("b")
	assert.False(t, ok)
}

func TestRequirement(t *testing.T) {
	list := Requirement{Names: []string{"a", "b"}}
	assert.True(t, list.IsList())
	assert.True(t, list.Has("b"))
	assert.False(t, list.Has("c"))

	yes := true
	flag := Requirement{Bool: &yes}
	assert.False(t, flag.IsList())
	assert.False(t, flag.Has("a"))

	assert.False(t, Requirement{}.IsList())
}

func TestNumericBounds(t *testing.T) {
	lo, hi := int64(1), int64(10)
	n := &Integer{Numeric: Numeric[int64]{Minimum: &lo, Maximum: &hi}}
	min, max, hasMin, hasMax := n.Bounds()
	assert.Equal(t, int64(1), min)
	assert.Equal(t, int64(10), max)
	assert.True(t, hasMin)
	assert.True(t, hasMax)

	_, _, hasMin, hasMax = (&Float{}).Bounds()
	assert.False(t, hasMin)
	assert.False(t, hasMax)
}

func TestRef(t *testing.T) {
	var nilRef *Ref
	assert.False(t, nilRef.Resolved())
	assert.Empty(t, nilRef.TargetName())

	unresolved := &Ref{Name: "Address"}
	assert.False(t, unresolved.Resolved())
	assert.Equal(t, "Address", unresolved.TargetName())

	target := &Object{Base: Base{Title: "User"}}
	resolved := &Ref{Name: "user", Target: target}
	assert.True(t, resolved.Resolved())
	assert.Equal(t, "User", resolved.TargetName())

	anonymous := &Ref{Name: "anon", Target: &Object{}}
	assert.Equal(t, "anon", anonymous.TargetName())
}

func TestWalk(t *testing.T) {
	shared := &Object{Base: Base{Title: "Shared"}, Properties: []Property{{Name: "x", Node: &String{}}}}
	root := &Object{
		Properties: []Property{
			{Name: "a", Node: &String{Base: Base{Name: "a"}}},
			{Name: "tags", Node: &Array{Base: Base{Name: "tags"}, Items: &String{}}},
			{Name: "link", Node: &Unknown{Base: Base{Name: "link", Ref: &Ref{Name: "Shared", Target: shared}}}},
		},
	}
	root.AnyOf = []Node{&Null{}}

	var kinds []Kind
	Walk(root, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	assert.Equal(t, []Kind{KindObject, KindString, KindArray, KindString, KindUnknown, KindNull}, kinds)
	assert.Equal(t, 6, Count(root))

	var top []Kind
	Walk(root, func(n Node) bool {
		top = append(top, n.Kind())
		return n == Node(root)
	})
	assert.Equal(t, []Kind{KindObject, KindString, KindArray, KindUnknown, KindNull}, top)
}

func TestOutlineOf(t *testing.T) {
	assert.Nil(t, OutlineOf(nil))

	max := 9.5
	root := &Object{
		Base: Base{Title: "User", Meta: map[string]any{"k": "v"}},
		Properties: []Property{
			{Name: "score", Node: &Float{Base: Base{Name: "score", Required: true}, Numeric: Numeric[float64]{Maximum: &max}}},
			{Name: "kind", Node: &Unknown{Base: Base{Name: "kind"}, TypeName: "file"}},
			{Name: "friend", Node: &Unknown{Base: Base{Name: "friend", Ref: &Ref{Name: "Friend"}}, TypeName: UnknownTypeName}},
		},
	}

	o := OutlineOf(root)
	require.Len(t, o.Properties, 3)
	assert.Equal(t, KindObject, o.Kind)
	assert.Equal(t, "User", o.Title)
	assert.Equal(t, "score", o.Properties[0].Name)
	assert.Equal(t, 9.5, o.Properties[0].Schema.Maximum)
	assert.Nil(t, o.Properties[0].Schema.Minimum)
	assert.True(t, o.Properties[0].Schema.Required)
	assert.Equal(t, "file", o.Properties[1].Schema.TypeName)
	assert.Equal(t, "Friend", o.Properties[2].Schema.Ref)
	assert.False(t, o.Properties[2].Schema.RefResolved)
}
