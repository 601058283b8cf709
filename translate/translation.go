package translate

import (
	"github.com/erraggy/flexschema/internal/issues"
	"github.com/erraggy/flexschema/schema"
)

// DepsMarker is the sentinel written into Output where the dependency
// declarations go. Merge replaces the first occurrence and deletes the rest.
const DepsMarker = "#<DEPS>"

// Placeholder is rendered in place of a shape a backend cannot express.
const Placeholder = "?"

// Issue is a non-fatal problem noticed while translating.
type Issue = issues.Issue

// Translation is the output of one backend for one schema node.
type Translation struct {
	// Output is the generated source body, possibly containing DepsMarker
	Output string
	// Extension is the file extension including the dot (e.g. ".ts")
	Extension string
	// Deps holds the dependency declaration lines Output requires
	Deps DepSet
	// Head lists lines that must open any file Output is merged into
	Head []string
	// Issues lists placeholders, renames and other degraded output
	Issues []Issue
}

// Render returns t merged on its own: head, then body with deps substituted.
func (t *Translation) Render() string {
	return Merge(t)
}

// Backend translates a schema node into one target language.
// Implementations are pure: the same node always yields the same result.
type Backend interface {
	// Name identifies the backend (e.g. "typescript")
	Name() string
	// Translate renders node. It never fails; see Translation.Issues.
	Translate(node schema.Node) *Translation
}

// BackendFunc adapts a plain function to the Backend interface.
type BackendFunc struct {
	ID string
	Fn func(schema.Node) *Translation
}

// Name implements Backend.
func (b BackendFunc) Name() string { return b.ID }

// Translate implements Backend.
func (b BackendFunc) Translate(node schema.Node) *Translation { return b.Fn(node) }
