// Package flexschema turns JSON-Schema-like documents into source code for
// several target languages from a single typed representation.
//
// # Overview
//
// The library is organized as a pipeline:
//
//   - document: decode JSON or YAML into an ordered raw tree with source positions
//   - parser: convert the raw tree into the typed schema model, resolving $ref
//     names against a reference context
//   - schema: the tagged-union schema model (object, array, string, integer,
//     number, boolean, null, unknown)
//   - translate: the translation protocol every backend produces, plus the
//     merge rules for combining several translations into one file
//   - translate/typescript, translate/mongoengine, translate/gostruct: backends
//   - generator: parse, translate and merge into files in one call
//
// # Quick Start
//
// Generate TypeScript and mongoengine models from a file:
//
//	import "github.com/erraggy/flexschema/generator"
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("schemas.json"),
//		generator.WithTargets("typescript", "mongoengine"),
//		generator.WithOutName("models"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./out"); err != nil {
//		log.Fatal(err)
//	}
//
// Work with the model directly:
//
//	values, err := document.Decode(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	node, err := parser.Parse(values[0], nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	tr := typescript.Translate(node, typescript.Options{InlineObjects: true})
//	fmt.Print(translate.Merge(tr))
//
// # Command-Line Tool
//
// The flexschema binary wraps the generator:
//
//	flexschema generate --input-file schemas.json --out-dir ./out --out-name models
//	flexschema parse schemas.json --format yaml
//	flexschema check schemas.json --out-dir ./out
//	flexschema mcp
package flexschema
