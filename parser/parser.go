package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/flexschema/document"
	"github.com/erraggy/flexschema/schema"
)

// Parser parses schema documents from files, readers or bytes.
type Parser struct {
	// Logger receives debug and warning messages. Nil means NopLogger.
	Logger Logger
	// Context resolves $ref names. Nil means an empty context.
	// The parser never modifies it.
	Context *Context
	// LinkSchemas registers each completed top-level schema under its key
	// so later schemas in the same input can $ref it. Registration happens
	// in a fork of Context, exposed as ParseResult.Context.
	LinkSchemas bool
	// MaxFileSize caps the input size in bytes (0 means no limit).
	MaxFileSize int64
}

// New creates a new Parser with default settings.
func New() *Parser {
	return &Parser{}
}

// ParseResult contains the schemas parsed from one input plus metadata.
// The schemas are read-only once returned.
type ParseResult struct {
	// SourcePath is the file path or source name of the input
	SourcePath string
	// SourceFormat is the syntax the input was written in
	SourceFormat document.Format
	// Schemas holds one node per top-level schema, in input order
	Schemas []schema.Node
	// Warnings lists ignored or malformed fields as "path: message"
	Warnings []string
	// Stats holds counts collected while parsing
	Stats DocumentStats
	// Context is the reference context the schemas were resolved against,
	// including linked schemas when LinkSchemas is set
	Context *Context
	// LoadTime is how long reading, decoding and parsing took
	LoadTime time.Duration
	// SourceSize is the input size in bytes
	SourceSize int64
}

// SchemaCount returns the number of parsed schemas.
func (r *ParseResult) SchemaCount() int {
	return len(r.Schemas)
}

// ParseFile parses the file at path.
func (p *Parser) ParseFile(path string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	return p.parseData(data, path)
}

// ParseReader parses everything read from r.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	var src io.Reader = r
	if p.MaxFileSize > 0 {
		src = io.LimitReader(r, p.MaxFileSize+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read input: %w", err)
	}
	return p.parseData(data, "reader")
}

// ParseBytes parses data.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parseData(data, "bytes")
}

func (p *Parser) parseData(data []byte, source string) (*ParseResult, error) {
	start := time.Now()
	if p.MaxFileSize > 0 && int64(len(data)) > p.MaxFileSize {
		return nil, fmt.Errorf("parser: input %s exceeds %d bytes", source, p.MaxFileSize)
	}

	values, err := document.DecodeReader(bytes.NewReader(data), source)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	result, err := p.parseValues(values, source)
	if err != nil {
		return nil, err
	}
	result.SourceFormat = document.DetectFormat(data)
	result.SourceSize = int64(len(data))
	result.LoadTime = time.Since(start)
	return result, nil
}

// ParseDocument parses already-decoded raw values. Each value is a schema or
// an array of schemas.
func (p *Parser) ParseDocument(values ...document.Value) (*ParseResult, error) {
	start := time.Now()
	result, err := p.parseValues(values, "document")
	if err != nil {
		return nil, err
	}
	result.SourceFormat = document.FormatUnknown
	result.LoadTime = time.Since(start)
	return result, nil
}

func (p *Parser) parseValues(values []document.Value, source string) (*ParseResult, error) {
	logger := orNop(p.Logger).With("source", source)

	ctx := p.Context
	var register func(schema.Node) error
	if p.LinkSchemas {
		if ctx == nil {
			ctx = NewContext()
		} else {
			ctx = ctx.Fork()
		}
		register = func(n schema.Node) error {
			key := n.Key()
			if key == "" {
				return nil
			}
			if err := ctx.Register(key, n); err != nil {
				return fmt.Errorf("parser: cannot link schema: %w", err)
			}
			logger.Debug("linked schema", "key", key)
			return nil
		}
	}

	result := &ParseResult{SourcePath: source, Context: ctx}
	for i, v := range values {
		b := newBuilder(ctx, logger, source)
		if len(values) > 1 {
			b.path.Push(fmt.Sprintf("document%d", i))
		}
		nodes, err := b.parseAll(v, register)
		result.Warnings = append(result.Warnings, b.warnings...)
		result.Stats.add(b.stats)
		b.release()
		if err != nil {
			return nil, fmt.Errorf("parser: %w", err)
		}
		result.Schemas = append(result.Schemas, nodes...)
	}

	logger.Info("parsed schemas",
		"schemas", len(result.Schemas),
		"nodes", result.Stats.Nodes,
		"unresolved_refs", result.Stats.UnresolvedRefs,
		"warnings", len(result.Warnings))
	return result, nil
}
