// Package issues provides the non-fatal issue type shared by the parser,
// the translation backends and the generator.
package issues

import (
	"fmt"

	"github.com/erraggy/flexschema/internal/severity"
)

// Issue represents a single non-fatal problem: an unresolved reference, a
// placeholder rendered for an unsupported shape, a renamed definition.
type Issue struct {
	// Path is the dotted/indexed path to the schema node (e.g. "properties.tags.items")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Backend names the translation backend that reported the issue (empty for the parser)
	Backend string
	// Schema is the key of the top-level schema the issue belongs to (optional)
	Schema string
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int
	// Column is the 1-based column number in the source file (0 if unknown)
	Column int
	// File is the source file path (empty for in-memory input)
	File string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	where := i.Path
	if where == "" {
		where = "<root>"
	}
	if i.Schema != "" {
		where = i.Schema + ": " + where
	}
	if i.Backend != "" {
		where = "[" + i.Backend + "] " + where
	}

	if i.Line > 0 {
		return fmt.Sprintf("%s %s (line %d, col %d): %s", symbol, where, i.Line, i.Column, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, where, i.Message)
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only line is set,
// or the schema path if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.Path
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	}
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}

// Counts tallies issues per severity.
type Counts struct {
	Info     int
	Warning  int
	Error    int
	Critical int
}

// Count tallies the given issues per severity.
func Count(list []Issue) Counts {
	var c Counts
	for _, issue := range list {
		switch issue.Severity {
		case severity.SeverityInfo:
			c.Info++
		case severity.SeverityWarning:
			c.Warning++
		case severity.SeverityError:
			c.Error++
		case severity.SeverityCritical:
			c.Critical++
		}
	}
	return c
}
