package parser

import (
	"fmt"
	"io"

	"github.com/erraggy/flexschema/internal/options"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	context     *Context
	logger      Logger
	linkSchemas bool
	maxFileSize int64
	sourceName  *string
}

// ParseWithOptions parses schema documents using functional options.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("schemas.json"),
//	    parser.WithLinkSchemas(true),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		Logger:      cfg.logger,
		Context:     cfg.context,
		LinkSchemas: cfg.linkSchemas,
		MaxFileSize: cfg.maxFileSize,
	}

	var result *ParseResult
	switch {
	case cfg.filePath != nil:
		result, err = p.ParseFile(*cfg.filePath)
	case cfg.reader != nil:
		result, err = p.ParseReader(cfg.reader)
	default:
		result, err = p.ParseBytes(cfg.bytes)
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("parser",
		[]string{"WithFilePath", "WithReader", "WithBytes"},
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("parser: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("parser: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithContext resolves $ref names against ctx. The context is only read.
func WithContext(ctx *Context) Option {
	return func(cfg *parseConfig) error {
		cfg.context = ctx
		return nil
	}
}

// WithLogger sets the logger for the parse operation
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithLinkSchemas lets later top-level schemas $ref earlier ones by key.
// Default: false
func WithLinkSchemas(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.linkSchemas = enabled
		return nil
	}
}

// WithMaxFileSize caps the input size in bytes. Default: no limit
func WithMaxFileSize(n int64) Option {
	return func(cfg *parseConfig) error {
		if n < 0 {
			return fmt.Errorf("parser: max file size cannot be negative")
		}
		cfg.maxFileSize = n
		return nil
	}
}

// WithSourceName overrides ParseResult.SourcePath
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
