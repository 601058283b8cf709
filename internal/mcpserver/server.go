package mcpserver

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/flexschema"
)

const serverInstructions = `flexschema MCP server: parses JSON/YAML schema documents and generates TypeScript types, MongoEngine documents and Go structs from them.

Pass a document with either "file" (a path on disk) or "content" (inline JSON or YAML). A document holds one schema object or an array of schemas. Set link_schemas to let later schemas $ref earlier ones by title.

Use parse first to inspect keys, references and warnings, then generate. Without output_dir, generate returns file contents inline.`

// Server serves the flexschema tools.
type Server struct {
	cfg    Config
	cache  *parseCache
	logger *slog.Logger
}

// New creates a Server from cfg. Zero values fall back to DefaultConfig.
func New(cfg Config) *Server {
	cfg = cfg.normalize()
	s := &Server{cfg: cfg, logger: cfg.Logger}
	if cfg.CacheEnabled {
		s.cache = newParseCache(cfg.CacheMaxSize, cfg.CacheTTL)
	}
	return s
}

// Run serves over stdio and blocks until the client disconnects or ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	if s.cache != nil {
		s.cache.startSweeper(ctx, s.cfg.CacheSweepInterval)
	}
	s.logger.Info("starting MCP server", "version", flexschema.Version())
	return s.MCPServer().Run(ctx, &mcp.StdioTransport{})
}

// MCPServer builds the underlying MCP server with every tool registered.
func (s *Server) MCPServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "flexschema", Version: flexschema.Version()},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a schema document. Returns one summary per top-level schema (key, kind, property names, enum keys, referenced names and which of them are unresolved) plus parser warnings and node counts.",
	}, s.handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate source files from a schema document. Targets: typescript, mongoengine, go (default: typescript and mongoengine). Set out_name to merge all schemas into one file per target. With output_dir the files are written there and only a manifest is returned; otherwise contents are returned inline.",
	}, s.handleGenerate)

	return server
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute paths so internal directory structure does
// not leak to MCP clients.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
