package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/erraggy/flexschema/generator"
	"github.com/erraggy/flexschema/internal/cliutil"
	"github.com/erraggy/flexschema/internal/fileutil"
)

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 3

func (a *app) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Verify generated files are up to date",
		Long: `Generate in memory with the same settings as generate and compare the result
with the files in --out-dir. Differences are printed as line diffs and the
command exits non-zero when any file is missing or out of date.`,
		Example: `  flexschema check --out-dir ./models schemas.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    a.runCheck,
	}

	fs := cmd.Flags()
	addInputFlag(fs)
	fs.StringP("out-dir", "o", ".", "directory holding the generated files")
	fs.String("out-name", "", "merge all schemas into one <out-name><ext> file per target")
	fs.StringSliceP("target", "t", generator.New().Targets, "backends to run (typescript, mongoengine, go)")
	fs.String("mongoengine-base-class", "", "base class of generated MongoEngine documents (default Document)")
	fs.String("mongoengine-base-class-import", "", "import line providing --mongoengine-base-class")
	fs.String("go-package", generator.New().GoPackage, "package clause of generated Go files")
	fs.Bool("link-schemas", false, "let later schemas $ref earlier ones by title")
	fs.Bool("strict", false, "fail when any warning is reported")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	a.bindFlags(cmd, generateFlagNames...)
	input, err := inputPath(cmd, args)
	if err != nil {
		return err
	}

	result, err := generator.GenerateWithOptions(a.generatorOptions(input)...)
	if err != nil {
		return err
	}

	dir := a.v.GetString("out-dir")
	p := a.printer(cmd)
	out := cmd.OutOrStdout()
	stale := 0
	for _, f := range result.Files {
		path := filepath.Join(dir, f.Name)
		existing, ok, err := fileutil.ReadIfExists(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		switch {
		case !ok:
			stale++
			p.Errorf("%s is missing", path)
		case string(existing) != string(f.Content):
			stale++
			p.Errorf("%s is out of date", path)
			writeDiff(out, path, string(existing), string(f.Content))
		default:
			p.Successf("%s is up to date", path)
		}
	}

	if stale > 0 {
		return fmt.Errorf("%d of %d generated file(s) out of date; run flexschema generate", stale, len(result.Files))
	}
	return nil
}

// writeDiff prints a line diff between the file on disk and the generated
// content, keeping diffContext unchanged lines around each change.
func writeDiff(w io.Writer, name, onDisk, generated string) {
	cliutil.Writef(w, "--- %s (on disk)\n+++ %s (generated)\n", name, name)
	for _, line := range diffLines(onDisk, generated) {
		cliutil.Writef(w, "%s\n", line)
	}
}

// diffLines returns the line diff of a and b with "-", "+" and " " prefixes.
// Runs of unchanged lines longer than twice diffContext are elided.
func diffLines(a, b string) []string {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out []string
	for i, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		chunk := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range chunk {
				out = append(out, "-"+l)
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range chunk {
				out = append(out, "+"+l)
			}
		case diffmatchpatch.DiffEqual:
			head, tail := diffContext, diffContext
			if i == 0 {
				head = 0
			}
			if i == len(diffs)-1 {
				tail = 0
			}
			if len(chunk) <= head+tail {
				for _, l := range chunk {
					out = append(out, " "+l)
				}
				continue
			}
			for _, l := range chunk[:head] {
				out = append(out, " "+l)
			}
			out = append(out, fmt.Sprintf("@@ %d unchanged line(s) @@", len(chunk)-head-tail))
			for _, l := range chunk[len(chunk)-tail:] {
				out = append(out, " "+l)
			}
		}
	}
	return out
}
