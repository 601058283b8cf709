package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/flexschema/schema"
)

type parseInput struct {
	File        string `json:"file,omitempty"         jsonschema:"Path to a schema document on disk"`
	Content     string `json:"content,omitempty"      jsonschema:"Inline schema document (JSON or YAML)"`
	LinkSchemas bool   `json:"link_schemas,omitempty" jsonschema:"Let later schemas $ref earlier ones by key"`
}

type parseStats struct {
	Nodes          int `json:"nodes"`
	Objects        int `json:"objects"`
	Enums          int `json:"enums"`
	Unknown        int `json:"unknown"`
	ResolvedRefs   int `json:"resolved_refs"`
	UnresolvedRefs int `json:"unresolved_refs"`
}

type parseOutput struct {
	Format      string           `json:"format"`
	SchemaCount int              `json:"schema_count"`
	Schemas     []schema.Summary `json:"schemas,omitempty"`
	Warnings    []string         `json:"warnings,omitempty"`
	Stats       parseStats       `json:"stats"`
}

func (s *Server) handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := s.resolve(source{File: input.File, Content: input.Content, LinkSchemas: input.LinkSchemas})
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Format:      string(result.SourceFormat),
		SchemaCount: result.SchemaCount(),
		Warnings:    result.Warnings,
		Stats: parseStats{
			Nodes:          result.Stats.Nodes,
			Objects:        result.Stats.Objects,
			Enums:          result.Stats.Enums,
			Unknown:        result.Stats.Unknown,
			ResolvedRefs:   result.Stats.ResolvedRefs,
			UnresolvedRefs: result.Stats.UnresolvedRefs,
		},
	}
	output.Schemas = makeSlice[schema.Summary](len(result.Schemas))
	for _, node := range result.Schemas {
		output.Schemas = append(output.Schemas, schema.Summarize(node))
	}
	return nil, output, nil
}
