// Package schema defines the typed schema model produced by the parser and
// consumed by the translation backends.
//
// A schema node is one of a closed set of variants, each identified by a
// [Kind] discriminant:
//
//   - [*Object]: ordered properties plus the names it requires
//   - [*Array]: an optional items node
//   - [*String]: an optional pattern, and an enum when [Base.Enum] is set
//   - [*Integer], [*Float]: optional numeric bounds via [Numeric]
//   - [*Boolean], [*Null]
//   - [*Unknown]: any unrecognized type name, preserved in TypeName
//
// Every variant embeds [Base], the attributes shared by all nodes. Variant
// specific fields are only reachable after a type switch:
//
//	switch n := node.(type) {
//	case *schema.Object:
//		for _, p := range n.Properties {
//			fmt.Println(p.Name, p.Node.Kind())
//		}
//	case *schema.Array:
//		fmt.Println(n.Items)
//	}
//
// Nodes are built by the parser package and are read-only afterwards.
// A [Ref] links to a node owned by a parser context; it never owns it.
package schema
