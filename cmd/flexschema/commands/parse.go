package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/flexschema/internal/cliutil"
	"github.com/erraggy/flexschema/parser"
	"github.com/erraggy/flexschema/schema"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w as indented JSON or YAML.
func OutputStructured(w io.Writer, data any, format string) error {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		out = append(out, '\n')
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}
	_, err = w.Write(out)
	return err
}

func (a *app) newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a schema document and describe its schemas",
		Long: `Parse a schema document and print a summary of every top-level schema:
its key, kind, properties, enums and references. With --format json or
yaml the full schema model is dumped instead.`,
		Example: `  flexschema parse schemas.json
  flexschema parse --format yaml --link-schemas schemas.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runParse,
	}
	fs := cmd.Flags()
	addInputFlag(fs)
	fs.StringP("format", "f", FormatText, "output format (text, json, yaml)")
	fs.Bool("link-schemas", false, "let later schemas $ref earlier ones by title")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	a.bindFlags(cmd, "link-schemas")
	input, err := inputPath(cmd, args)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if err := ValidateOutputFormat(format); err != nil {
		return err
	}

	result, err := parser.ParseWithOptions(
		parser.WithFilePath(input),
		parser.WithLinkSchemas(a.v.GetBool("link-schemas")),
		parser.WithLogger(newParserLogger(a.logger)),
	)
	if err != nil {
		return err
	}

	p := a.printer(cmd)
	for _, w := range result.Warnings {
		p.Warnf("%s", w)
	}

	out := cmd.OutOrStdout()
	if format != FormatText {
		outlines := make([]*schema.Outline, 0, len(result.Schemas))
		for _, node := range result.Schemas {
			outlines = append(outlines, schema.OutlineOf(node))
		}
		return OutputStructured(out, outlines, format)
	}

	cliutil.Writef(out, "%s: %d schema(s), %s, %d node(s)\n",
		result.SourcePath, result.SchemaCount(), result.SourceFormat, result.Stats.Nodes)
	for i, node := range result.Schemas {
		writeSummary(out, i, schema.Summarize(node))
	}
	return nil
}

// writeSummary prints one schema summary as an indented block.
func writeSummary(w io.Writer, index int, s schema.Summary) {
	key := s.Key
	if key == "" {
		key = fmt.Sprintf("<schema %d>", index)
	}
	cliutil.Writef(w, "\n%s (%s)\n", key, s.Kind)
	if s.Description != "" {
		cliutil.Writef(w, "  description: %s\n", s.Description)
	}
	if len(s.Properties) > 0 {
		cliutil.Writef(w, "  properties:  %s\n", strings.Join(s.Properties, ", "))
	}
	if len(s.Enums) > 0 {
		cliutil.Writef(w, "  enums:       %s\n", strings.Join(s.Enums, ", "))
	}
	if len(s.Refs) > 0 {
		refs := make([]string, 0, len(s.Refs))
		for _, r := range s.Refs {
			if slices.Contains(s.UnresolvedRefs, r) {
				r += " (unresolved)"
			}
			refs = append(refs, r)
		}
		cliutil.Writef(w, "  refs:        %s\n", strings.Join(refs, ", "))
	}
}
