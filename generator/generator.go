package generator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/flexschema/document"
	"github.com/erraggy/flexschema/internal/issues"
	"github.com/erraggy/flexschema/internal/naming"
	"github.com/erraggy/flexschema/internal/severity"
	"github.com/erraggy/flexschema/parser"
	"github.com/erraggy/flexschema/translate"
	"github.com/erraggy/flexschema/translate/gostruct"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates degraded but usable output
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates output that needs manual fixing
	SeverityError = severity.SeverityError
	// SeverityCritical indicates a schema that could not be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "User.ts")
	Name string
	// Target is the backend that produced the file
	Target string
	// Content is the generated source
	Content []byte
}

// GenerateResult contains the results of generating code from schemas
type GenerateResult struct {
	// Files contains all generated files, in schema order then target order
	Files []GeneratedFile
	// SourcePath is the path of the source document
	SourcePath string
	// SourceFormat is the format of the source document
	SourceFormat document.Format
	// Targets lists the backends that ran
	Targets []string
	// Issues contains all parse and translation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// SchemaCount is the number of top-level schemas translated
	SchemaCount int
	// LoadTime is the time taken to load and parse the source
	LoadTime time.Duration
	// GenerateTime is the time taken to translate and merge
	GenerateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the source document
	Stats parser.DocumentStats
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator handles source generation from schema documents
type Generator struct {
	// Targets lists the backends to run (e.g. "typescript", "mongoengine", "go")
	Targets []string

	// OutName switches to combined mode: one "<OutName><ext>" file per
	// extension instead of one file per schema
	OutName string

	// MongoBaseClass is the class generated documents inherit from
	// Default: "Document"
	MongoBaseClass string

	// MongoBaseClassImport is the import line providing MongoBaseClass
	MongoBaseClassImport string

	// MongoExtraDeps are added verbatim to the import block of Python output
	MongoExtraDeps []string

	// GoPackage is the package clause of Go output
	// Default: "models"
	GoPackage string

	// UsePointers uses pointer types for optional Go fields
	// Default: true
	UsePointers bool

	// IncludeValidation adds validate tags to Go struct fields
	// Default: true
	IncludeValidation bool

	// InlineObjects renders nested TypeScript objects as literal types
	// Default: true
	InlineObjects bool

	// LinkSchemas lets later schemas $ref earlier ones by key
	LinkSchemas bool

	// Context resolves $ref names before linked schemas are consulted
	Context *parser.Context

	// StrictMode causes generation to fail on warnings and critical issues
	StrictMode bool

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool

	// Logger receives progress messages. Nil means no logging.
	Logger parser.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		Targets:           []string{TargetTypeScript, TargetMongoEngine},
		GoPackage:         gostruct.DefaultPackageName,
		UsePointers:       true,
		IncludeValidation: true,
		InlineObjects:     true,
		IncludeInfo:       true,
	}
}

// Generate parses the file at path and generates sources from it
func (g *Generator) Generate(path string) (*GenerateResult, error) {
	parseResult, err := g.parser().ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse schemas: %w", err)
	}
	return g.GenerateParsed(*parseResult)
}

// GenerateBytes parses data and generates sources from it
func (g *Generator) GenerateBytes(data []byte) (*GenerateResult, error) {
	parseResult, err := g.parser().ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse schemas: %w", err)
	}
	return g.GenerateParsed(*parseResult)
}

func (g *Generator) parser() *parser.Parser {
	p := parser.New()
	p.Logger = g.Logger
	p.Context = g.Context
	p.LinkSchemas = g.LinkSchemas
	return p
}

// GenerateParsed generates sources from already-parsed schemas
func (g *Generator) GenerateParsed(parseResult parser.ParseResult) (*GenerateResult, error) {
	startTime := time.Now()

	backends, err := g.backends()
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Files:        make([]GeneratedFile, 0),
		SourcePath:   parseResult.SourcePath,
		SourceFormat: parseResult.SourceFormat,
		Issues:       parseIssues(parseResult),
		SchemaCount:  parseResult.SchemaCount(),
		LoadTime:     parseResult.LoadTime,
		SourceSize:   parseResult.SourceSize,
		Stats:        parseResult.Stats,
	}
	for _, b := range backends {
		result.Targets = append(result.Targets, b.Name())
	}

	// translations[i][j] is backend j applied to schema i
	translations := make([][]*translate.Translation, len(parseResult.Schemas))
	for i, node := range parseResult.Schemas {
		translations[i] = make([]*translate.Translation, len(backends))
		for j, b := range backends {
			tr := b.Translate(node)
			translations[i][j] = tr
			result.Issues = append(result.Issues, tr.Issues...)
		}
	}

	if g.OutName != "" {
		g.combined(result, backends, translations)
	} else {
		g.separate(result, backends, parseResult, translations)
	}

	result.GenerateTime = time.Since(startTime)
	g.updateCounts(result)
	result.Success = result.CriticalCount == 0

	g.logger().Info("generated files",
		"files", len(result.Files),
		"schemas", result.SchemaCount,
		"warnings", result.WarningCount)

	// In strict mode, fail on any issues
	if g.StrictMode && (result.CriticalCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("generator: generation failed in strict mode: %d critical issue(s), %d warning(s)",
			result.CriticalCount, result.WarningCount)
	}

	// Filter info messages if not included
	if !g.IncludeInfo {
		filtered := make([]GenerateIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// separate writes one file per schema per backend.
func (g *Generator) separate(result *GenerateResult, backends []translate.Backend, parseResult parser.ParseResult, translations [][]*translate.Translation) {
	used := make(map[string]int)
	for i, node := range parseResult.Schemas {
		stem := naming.StripSpace(node.Key())
		if stem == "" {
			stem = "schema_" + strconv.Itoa(i)
		}
		for j, b := range backends {
			tr := translations[i][j]
			name := stem + tr.Extension
			if n := used[name]; n > 0 {
				renamed := stem + "_" + strconv.Itoa(n+1) + tr.Extension
				result.Issues = append(result.Issues, GenerateIssue{
					Path:     fmt.Sprintf("[%d]", i),
					Message:  fmt.Sprintf("file %s already generated, writing %s instead", name, renamed),
					Severity: SeverityInfo,
					Backend:  b.Name(),
					Schema:   node.Key(),
					File:     parseResult.SourcePath,
				})
				used[name]++
				name = renamed
			}
			used[name]++
			result.Files = append(result.Files, g.file(result, name, b.Name(), translate.Merge(tr)))
		}
	}
}

// combined merges every translation sharing an extension into "<OutName><ext>".
func (g *Generator) combined(result *GenerateResult, backends []translate.Backend, translations [][]*translate.Translation) {
	var (
		order   []string
		byExt   = make(map[string][]*translate.Translation)
		targets = make(map[string][]string)
	)
	for j, b := range backends {
		for i := range translations {
			tr := translations[i][j]
			if _, ok := byExt[tr.Extension]; !ok {
				order = append(order, tr.Extension)
			}
			byExt[tr.Extension] = append(byExt[tr.Extension], tr)
			if !slices.Contains(targets[tr.Extension], b.Name()) {
				targets[tr.Extension] = append(targets[tr.Extension], b.Name())
			}
		}
	}
	for _, ext := range order {
		name := g.OutName + ext
		target := strings.Join(targets[ext], ",")
		result.Files = append(result.Files, g.file(result, name, target, translate.Merge(byExt[ext]...)))
	}
}

// file builds a GeneratedFile, formatting Go sources along the way.
func (g *Generator) file(result *GenerateResult, name, target, content string) GeneratedFile {
	src := []byte(content)
	if strings.HasSuffix(name, gostruct.Extension) {
		formatted, err := gostruct.Format(name, src)
		if err != nil {
			result.Issues = append(result.Issues, GenerateIssue{
				Message:  fmt.Sprintf("failed to format %s: %v", name, err),
				Severity: SeverityWarning,
				Backend:  target,
				File:     name,
			})
		} else {
			src = formatted
		}
	}
	g.logger().Debug("generated file", "name", name, "target", target, "bytes", len(src))
	return GeneratedFile{Name: name, Target: target, Content: src}
}

// parseIssues turns parser warnings ("path: message") into issues.
func parseIssues(parseResult parser.ParseResult) []GenerateIssue {
	out := make([]GenerateIssue, 0, len(parseResult.Warnings))
	for _, w := range parseResult.Warnings {
		path, msg, found := strings.Cut(w, ": ")
		if !found {
			path, msg = "", w
		}
		if path == "<root>" {
			path = ""
		}
		out = append(out, GenerateIssue{
			Path:     path,
			Message:  msg,
			Severity: SeverityWarning,
			File:     parseResult.SourcePath,
		})
	}
	return out
}

// updateCounts updates the issue counts in the result
func (g *Generator) updateCounts(result *GenerateResult) {
	counts := issues.Count(result.Issues)
	result.InfoCount = counts.Info
	result.WarningCount = counts.Warning
	result.CriticalCount = counts.Critical + counts.Error
}

func (g *Generator) logger() parser.Logger {
	if g.Logger == nil {
		return parser.NopLogger{}
	}
	return g.Logger
}
