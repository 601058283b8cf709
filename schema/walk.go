package schema

// Walk visits node and its owned descendants depth-first: properties in
// order, then array items, then anyOf alternatives. Ref targets are not
// followed since they are owned elsewhere. Returning false from fn skips
// the node's children.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *Object:
		for _, p := range n.Properties {
			Walk(p.Node, fn)
		}
	case *Array:
		Walk(n.Items, fn)
	}
	for _, alt := range node.Attrs().AnyOf {
		Walk(alt, fn)
	}
}

// Count returns the number of nodes Walk would visit.
func Count(node Node) int {
	n := 0
	Walk(node, func(Node) bool {
		n++
		return true
	})
	return n
}
