// Package generator turns schema documents into source files for one or
// more translation backends.
//
// It parses the input, runs every selected backend over every top-level
// schema and merges the translations into files following the merge
// contract in package translate.
//
// # Quick Start
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("schemas.json"),
//		generator.WithTargets("typescript", "mongoengine"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./generated"); err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.OutName = "models"
//	result, _ := g.Generate("schemas.json")
//
// # Output Modes
//
// Without OutName every schema gets its own file per target, named after
// the schema key with whitespace removed ("schema_<index>" for schemas
// without a key). With OutName all schemas of a target are merged into one
// file per extension named "<OutName><ext>".
//
// Go output is formatted with goimports; when formatting fails the
// unformatted source is kept and a warning is reported.
//
// # Targets
//
// Built-in targets are "typescript", "mongoengine" and "go". Additional
// backends can be added with [RegisterBackend].
//
// # Issues
//
// Translation never fails: unsupported shapes degrade to placeholders and
// are reported as issues in GenerateResult. Strict mode turns warnings and
// critical issues into an error.
package generator
