package parser

import (
	"github.com/erraggy/flexschema/fserrors"
	"github.com/erraggy/flexschema/schema"
)

// Context is the reference context: a table from reference name to an
// already-built schema node. Parsing only reads it. Callers populate it
// between parse calls to let later documents $ref earlier ones.
//
// A Context is not safe for concurrent mutation; concurrent lookups are fine
// once registration is done.
type Context struct {
	parent  *Context
	entries map[string]schema.Node
	order   []string
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{entries: make(map[string]schema.Node)}
}

// Fork returns an empty context whose lookups fall back to c. Registering in
// the fork leaves c untouched.
func (c *Context) Fork() *Context {
	f := NewContext()
	f.parent = c
	return f
}

// Lookup returns the node registered under name, searching parents.
// A nil Context finds nothing.
func (c *Context) Lookup(name string) (schema.Node, bool) {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		if n, ok := ctx.entries[name]; ok {
			return n, true
		}
	}
	return nil, false
}

// Register adds node under name. Empty names, nil nodes, names already
// visible through the context and nodes whose references lead back to
// themselves are rejected with a *fserrors.ReferenceError.
func (c *Context) Register(name string, node schema.Node) error {
	if name == "" {
		return &fserrors.ReferenceError{Message: "cannot register a schema without a name"}
	}
	if node == nil {
		return &fserrors.ReferenceError{Ref: name, Message: "cannot register a nil schema"}
	}
	if _, exists := c.Lookup(name); exists {
		return &fserrors.ReferenceError{Ref: name, Message: "already registered"}
	}
	if hasCycle(node) {
		return &fserrors.ReferenceError{Ref: name, IsCircular: true, Message: "schema references itself"}
	}
	c.entries[name] = node
	c.order = append(c.order, name)
	return nil
}

// Names returns the names registered directly in c, in registration order.
func (c *Context) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.order...)
}

// Len returns the number of names registered directly in c.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// hasCycle reports whether following owned children and ref targets from
// root can reach a node that is still being visited.
func hasCycle(root schema.Node) bool {
	const (
		visiting = 1
		done     = 2
	)
	state := make(map[schema.Node]int)

	var visit func(n schema.Node) bool
	visit = func(n schema.Node) bool {
		if n == nil {
			return false
		}
		switch state[n] {
		case visiting:
			return true
		case done:
			return false
		}
		state[n] = visiting
		for _, child := range children(n) {
			if visit(child) {
				return true
			}
		}
		state[n] = done
		return false
	}
	return visit(root)
}

func children(n schema.Node) []schema.Node {
	var out []schema.Node
	switch v := n.(type) {
	case *schema.Object:
		for _, p := range v.Properties {
			out = append(out, p.Node)
		}
	case *schema.Array:
		if v.Items != nil {
			out = append(out, v.Items)
		}
	}
	b := n.Attrs()
	out = append(out, b.AnyOf...)
	if b.Ref.Resolved() {
		out = append(out, b.Ref.Target)
	}
	return out
}
