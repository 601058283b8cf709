package schema

import (
	"slices"
	"sort"
)

// Summary is a flat description of one top-level schema, used by the
// parse command and tool surfaces.
type Summary struct {
	Key         string   `json:"key" yaml:"key"`
	Kind        Kind     `json:"kind" yaml:"kind"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Properties  []string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Nodes       int      `json:"nodes" yaml:"nodes"`
	// Enums lists the keys of enum nodes in walk order, "" for unnamed ones.
	Enums []string `json:"enums,omitempty" yaml:"enums,omitempty"`
	// Refs lists the distinct reference names, sorted.
	Refs []string `json:"refs,omitempty" yaml:"refs,omitempty"`
	// UnresolvedRefs lists the subset of Refs without a target.
	UnresolvedRefs []string `json:"unresolvedRefs,omitempty" yaml:"unresolvedRefs,omitempty"`
}

// Summarize builds the Summary of node.
func Summarize(node Node) Summary {
	s := Summary{
		Key:         node.Key(),
		Kind:        node.Kind(),
		Description: node.Attrs().Description,
	}
	if obj, ok := node.(*Object); ok {
		for _, p := range obj.Properties {
			s.Properties = append(s.Properties, p.Name)
		}
	}

	refs := make(map[string]bool)
	Walk(node, func(n Node) bool {
		s.Nodes++
		b := n.Attrs()
		if b.HasEnum() {
			s.Enums = append(s.Enums, n.Key())
		}
		if b.Ref != nil {
			name := b.Ref.TargetName()
			refs[name] = refs[name] || b.Ref.Resolved()
		}
		return true
	})

	for name, resolved := range refs {
		s.Refs = append(s.Refs, name)
		if !resolved {
			s.UnresolvedRefs = append(s.UnresolvedRefs, name)
		}
	}
	sort.Strings(s.Refs)
	slices.Sort(s.UnresolvedRefs)
	return s
}
