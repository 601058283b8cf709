package commands

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erraggy/flexschema/generator"
	"github.com/erraggy/flexschema/internal/cliutil"
)

// generateFlagNames lists the generate flags bound into the configuration.
var generateFlagNames = []string{
	"out-dir", "out-name", "target", "mongoengine-base-class",
	"mongoengine-base-class-import", "go-package", "link-schemas", "strict",
}

func (a *app) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate source files from a schema document",
		Long: `Generate source files for every schema in a document.

Without --out-name each schema is written to its own file per target, named
after the schema title. With --out-name all schemas are merged into one file
per target.`,
		Example: `  flexschema generate schemas.json
  flexschema generate --target typescript --target go --out-dir ./models schemas.yaml
  flexschema generate --out-name models --link-schemas schemas.json
  flexschema generate --watch schemas.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runGenerate,
	}

	fs := cmd.Flags()
	addInputFlag(fs)
	fs.StringP("out-dir", "o", ".", "directory to write generated files to")
	fs.String("out-name", "", "merge all schemas into one <out-name><ext> file per target")
	fs.StringSliceP("target", "t", generator.New().Targets, "backends to run (typescript, mongoengine, go)")
	fs.String("mongoengine-base-class", "", "base class of generated MongoEngine documents (default Document)")
	fs.String("mongoengine-base-class-import", "", "import line providing --mongoengine-base-class")
	fs.String("go-package", generator.New().GoPackage, "package clause of generated Go files")
	fs.Bool("link-schemas", false, "let later schemas $ref earlier ones by title")
	fs.Bool("strict", false, "fail when any warning is reported")
	fs.Bool("debug", false, "print generated files to stdout instead of writing them")
	fs.Bool("watch", false, "regenerate whenever the input file changes")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	a.bindFlags(cmd, generateFlagNames...)
	input, err := inputPath(cmd, args)
	if err != nil {
		return err
	}
	debug, _ := cmd.Flags().GetBool("debug")
	watch, _ := cmd.Flags().GetBool("watch")
	p := a.printer(cmd)

	run := func() error {
		return a.generateOnce(cmd, p, input, debug)
	}
	if err := run(); err != nil {
		if !watch {
			return err
		}
		p.Errorf("%v", err)
	}
	if !watch {
		return nil
	}

	p.Mutedf("watching %s for changes (Ctrl+C to stop)", input)
	w := &fileWatcher{path: input, debounce: defaultDebounce, logger: a.logger, onChange: func() error {
		if err := run(); err != nil {
			p.Errorf("%v", err)
		}
		return nil
	}}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return w.Run(ctx)
}

// generatorOptions builds generator options from the bound configuration.
func (a *app) generatorOptions(input string) []generator.Option {
	opts := []generator.Option{
		generator.WithFilePath(input),
		generator.WithOutName(a.v.GetString("out-name")),
		generator.WithMongoBaseClass(a.v.GetString("mongoengine-base-class")),
		generator.WithMongoBaseClassImport(a.v.GetString("mongoengine-base-class-import")),
		generator.WithLinkSchemas(a.v.GetBool("link-schemas")),
		generator.WithStrictMode(a.v.GetBool("strict")),
		generator.WithLogger(newParserLogger(a.logger)),
	}
	if targets := a.stringList("target"); len(targets) > 0 {
		opts = append(opts, generator.WithTargets(targets...))
	}
	if pkg := a.v.GetString("go-package"); pkg != "" {
		opts = append(opts, generator.WithGoPackage(pkg))
	}
	return opts
}

func (a *app) generateOnce(cmd *cobra.Command, p *cliutil.Printer, input string, debug bool) error {
	result, err := generator.GenerateWithOptions(a.generatorOptions(input)...)
	if result != nil {
		p.Issues(result.Issues)
	}
	if err != nil {
		return err
	}

	if debug {
		out := cmd.OutOrStdout()
		for _, f := range result.Files {
			cliutil.Writef(out, "==> %s <==\n%s", f.Name, f.Content)
			if !strings.HasSuffix(string(f.Content), "\n") {
				cliutil.Writef(out, "\n")
			}
		}
		return nil
	}

	dir := a.v.GetString("out-dir")
	if dir == "" {
		dir = "."
	}
	if err := result.WriteFiles(dir); err != nil {
		return err
	}
	names := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		names = append(names, filepath.Join(dir, f.Name))
	}
	p.Successf("generated %d file(s) from %d schema(s): %s",
		len(result.Files), result.SchemaCount, strings.Join(names, ", "))
	a.logger.Debug().Str("input", input).Dur("took", result.GenerateTime).Msg("generation finished")
	return nil
}
