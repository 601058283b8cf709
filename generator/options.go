package generator

import (
	"fmt"

	"github.com/erraggy/flexschema/internal/options"
	"github.com/erraggy/flexschema/parser"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	bytes    []byte
	parsed   *parser.ParseResult

	targets              []string
	outName              string
	mongoBaseClass       string
	mongoBaseClassImport string
	mongoExtraDeps       []string
	goPackage            string
	usePointers          bool
	includeValidation    bool
	inlineObjects        bool
	linkSchemas          bool
	context              *parser.Context
	strictMode           bool
	includeInfo          bool
	logger               parser.Logger
}

// GenerateWithOptions generates sources from schemas using functional options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("schemas.yaml"),
//	    generator.WithTargets("typescript", "go"),
//	    generator.WithOutName("models"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		Targets:              cfg.targets,
		OutName:              cfg.outName,
		MongoBaseClass:       cfg.mongoBaseClass,
		MongoBaseClassImport: cfg.mongoBaseClassImport,
		MongoExtraDeps:       cfg.mongoExtraDeps,
		GoPackage:            cfg.goPackage,
		UsePointers:          cfg.usePointers,
		IncludeValidation:    cfg.includeValidation,
		InlineObjects:        cfg.inlineObjects,
		LinkSchemas:          cfg.linkSchemas,
		Context:              cfg.context,
		StrictMode:           cfg.strictMode,
		IncludeInfo:          cfg.includeInfo,
		Logger:               cfg.logger,
	}

	switch {
	case cfg.filePath != nil:
		return g.Generate(*cfg.filePath)
	case cfg.parsed != nil:
		return g.GenerateParsed(*cfg.parsed)
	default:
		return g.GenerateBytes(cfg.bytes)
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	defaults := New()
	cfg := &generateConfig{
		targets:           defaults.Targets,
		goPackage:         defaults.GoPackage,
		usePointers:       defaults.UsePointers,
		includeValidation: defaults.IncludeValidation,
		inlineObjects:     defaults.InlineObjects,
		includeInfo:       defaults.IncludeInfo,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("generator",
		[]string{"WithFilePath", "WithBytes", "WithParsed"},
		cfg.filePath != nil, cfg.bytes != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies raw document bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *generateConfig) error {
		if data == nil {
			return fmt.Errorf("generator: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithTargets selects the backends to run. Unknown names fail here.
// Default: "typescript", "mongoengine"
func WithTargets(targets ...string) Option {
	return func(cfg *generateConfig) error {
		if len(targets) == 0 {
			return fmt.Errorf("generator: at least one target is required")
		}
		for _, t := range targets {
			if _, ok := CanonicalTarget(t); !ok {
				return fmt.Errorf("generator: unknown target %q (available: %v)", t, Targets())
			}
		}
		cfg.targets = targets
		return nil
	}
}

// WithOutName enables combined mode with the given file stem
func WithOutName(name string) Option {
	return func(cfg *generateConfig) error {
		cfg.outName = name
		return nil
	}
}

// WithMongoBaseClass sets the base class of generated MongoEngine documents
// Default: "Document"
func WithMongoBaseClass(name string) Option {
	return func(cfg *generateConfig) error {
		cfg.mongoBaseClass = name
		return nil
	}
}

// WithMongoBaseClassImport sets the import line providing the base class
func WithMongoBaseClassImport(line string) Option {
	return func(cfg *generateConfig) error {
		cfg.mongoBaseClassImport = line
		return nil
	}
}

// WithMongoExtraDeps adds import lines to Python output
func WithMongoExtraDeps(lines ...string) Option {
	return func(cfg *generateConfig) error {
		cfg.mongoExtraDeps = append(cfg.mongoExtraDeps, lines...)
		return nil
	}
}

// WithGoPackage specifies the package clause of Go output
// Default: "models"
func WithGoPackage(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: package name cannot be empty")
		}
		cfg.goPackage = name
		return nil
	}
}

// WithPointers enables or disables pointer types for optional Go fields
// Default: true
func WithPointers(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.usePointers = enabled
		return nil
	}
}

// WithValidation enables or disables validate tags on Go struct fields
// Default: true
func WithValidation(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeValidation = enabled
		return nil
	}
}

// WithInlineObjects enables or disables inline TypeScript object literals
// Default: true
func WithInlineObjects(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.inlineObjects = enabled
		return nil
	}
}

// WithLinkSchemas lets later schemas reference earlier ones by key
func WithLinkSchemas(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.linkSchemas = enabled
		return nil
	}
}

// WithContext sets the reference context used while parsing
func WithContext(ctx *parser.Context) Option {
	return func(cfg *generateConfig) error {
		cfg.context = ctx
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on any issues)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithLogger routes progress messages to l
func WithLogger(l parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = l
		return nil
	}
}
