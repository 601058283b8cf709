package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/flexschema/generator"
	"github.com/erraggy/flexschema/parser"
)

type generateInput struct {
	File        string   `json:"file,omitempty"         jsonschema:"Path to a schema document on disk"`
	Content     string   `json:"content,omitempty"      jsonschema:"Inline schema document (JSON or YAML)"`
	LinkSchemas bool     `json:"link_schemas,omitempty" jsonschema:"Let later schemas $ref earlier ones by key"`
	Targets     []string `json:"targets,omitempty"      jsonschema:"Backends to run: typescript, mongoengine, go"`
	OutName     string   `json:"out_name,omitempty"     jsonschema:"Merge all schemas into one <out_name><ext> file per target"`
	GoPackage   string   `json:"go_package,omitempty"   jsonschema:"Package clause of Go output (default: models)"`
	OutputDir   string   `json:"output_dir,omitempty"   jsonschema:"Directory to write files to; contents are returned inline when empty"`
}

type generatedFileInfo struct {
	Name    string `json:"name"`
	Target  string `json:"target"`
	Size    int    `json:"size"`
	Content string `json:"content,omitempty"`
}

type generateOutput struct {
	Success       bool                `json:"success"`
	OutputDir     string              `json:"output_dir,omitempty"`
	FileCount     int                 `json:"file_count"`
	Files         []generatedFileInfo `json:"files"`
	WarningCount  int                 `json:"warning_count"`
	CriticalCount int                 `json:"critical_count"`
	Issues        []string            `json:"issues,omitempty"`
}

func (s *Server) handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	parseResult, err := s.resolve(source{File: input.File, Content: input.Content, LinkSchemas: input.LinkSchemas})
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	targets := input.Targets
	if len(targets) == 0 {
		targets = s.cfg.Targets
	}
	goPackage := input.GoPackage
	if goPackage == "" {
		goPackage = s.cfg.GoPackage
	}

	result, err := generator.GenerateWithOptions(
		generator.WithParsed(*parseResult),
		generator.WithTargets(targets...),
		generator.WithOutName(input.OutName),
		generator.WithGoPackage(goPackage),
		generator.WithLogger(parser.NewSlogAdapter(s.logger)),
	)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if input.OutputDir != "" {
		if err := result.WriteFiles(input.OutputDir); err != nil {
			return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
		}
	}

	output := generateOutput{
		Success:       result.Success,
		OutputDir:     input.OutputDir,
		FileCount:     len(result.Files),
		WarningCount:  result.WarningCount,
		CriticalCount: result.CriticalCount,
	}
	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		info := generatedFileInfo{Name: f.Name, Target: f.Target, Size: len(f.Content)}
		if input.OutputDir == "" {
			info.Content = string(f.Content)
		}
		output.Files = append(output.Files, info)
	}
	output.Issues = makeSlice[string](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, issue.String())
	}

	s.logger.Debug("generated", "files", output.FileCount, "warnings", output.WarningCount)
	return nil, output, nil
}
