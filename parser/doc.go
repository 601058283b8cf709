// Package parser builds the schema model from raw JSON or YAML documents.
//
// # Core contract
//
// [Parse] converts one raw document into a [schema.Node]:
//
//	values, _ := document.Decode(data)
//	node, err := parser.Parse(values[0], nil)
//
// The walk tracks the dotted/indexed path it is at. A node without a string
// "type" fails the whole parse with a *fserrors.ParseError naming that path,
// unless the node is a property value, in which case it becomes an Unknown
// node. Recognized fields are copied onto the variant that the type selects;
// everything else is dropped. Mapping values under undeclared keys are still
// parsed so malformed nested schemas are reported.
//
// Property nodes are named after their property key and marked required
// when the parent object's "required" list contains their key.
//
// # References
//
// A "$ref" whose name is registered in the [Context] links the node to the
// registered node itself (see [schema.Ref]); other names are kept as
// unresolved names for backends to render as forward references. Parsing
// never modifies the context. Because only completed nodes can be
// registered, references cannot form cycles; [Context.Register] also rejects
// hand-built nodes that reference themselves.
//
// # Files and options
//
// [Parser] and [ParseWithOptions] read files, readers or bytes, accept a
// single schema, an array of schemas or a YAML stream, and return a
// [ParseResult] with warnings and statistics:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("schemas.json"),
//	    parser.WithLinkSchemas(true),
//	)
//
// With LinkSchemas set, each completed top-level schema is registered under
// its key in a fork of the caller's context, so later entries can reference
// earlier ones.
package parser
