package translate

import (
	"fmt"
	"strconv"

	"github.com/erraggy/flexschema/internal/pathutil"
	"github.com/erraggy/flexschema/internal/severity"
)

// DefKind groups hoisted definitions so backends can emit them in blocks.
type DefKind string

const (
	// DefEnum is an enum declaration.
	DefEnum DefKind = "enum"
	// DefType is a class, struct or named type declaration.
	DefType DefKind = "type"
)

// Definition is one hoisted declaration.
type Definition struct {
	Kind      DefKind
	Name      string
	Signature string
	Body      string
}

// Accumulator collects hoisted definitions, dependencies and issues during
// one backend walk. Names share a single namespace across kinds.
// An Accumulator is used by one walk at a time.
type Accumulator struct {
	backend string
	schema  string
	path    *pathutil.PathBuilder
	deps    DepSet
	defs    []*Definition
	byName  map[string]*Definition
	issues  []Issue
}

// NewAccumulator returns an empty accumulator. backend and schemaKey label
// the issues it records.
func NewAccumulator(backend, schemaKey string) *Accumulator {
	return &Accumulator{
		backend: backend,
		schema:  schemaKey,
		path:    &pathutil.PathBuilder{},
		deps:    make(DepSet),
		byName:  make(map[string]*Definition),
	}
}

// Define hoists a declaration and returns the name it was given.
//
// When baseName is free, render is called with it. When a definition of the
// same kind and signature already holds the name, that definition is reused
// and render is not called. Otherwise the first free "<baseName><n>" (n >= 2)
// is used and a warning is recorded. The name is reserved before render runs,
// so nested calls never take it.
func (a *Accumulator) Define(kind DefKind, baseName, signature string, render func(name string) string) string {
	name := baseName
	for n := 2; ; n++ {
		existing, taken := a.byName[name]
		if !taken {
			break
		}
		if existing.Kind == kind && existing.Signature == signature {
			return name
		}
		name = baseName + strconv.Itoa(n)
	}
	if name != baseName {
		a.Warn(fmt.Sprintf("%s %s renamed to %s: name already defined with different contents", kind, baseName, name))
	}

	def := &Definition{Kind: kind, Name: name, Signature: signature}
	a.byName[name] = def
	a.defs = append(a.defs, def)
	def.Body = render(name)
	return name
}

// Lookup returns the definition holding name.
func (a *Accumulator) Lookup(name string) (Definition, bool) {
	def, ok := a.byName[name]
	if !ok {
		return Definition{}, false
	}
	return *def, true
}

// Definitions returns the definitions of kind in creation order.
// An empty kind returns every definition.
func (a *Accumulator) Definitions(kind DefKind) []Definition {
	var out []Definition
	for _, def := range a.defs {
		if kind == "" || def.Kind == kind {
			out = append(out, *def)
		}
	}
	return out
}

// Bodies returns the rendered bodies of kind in creation order.
func (a *Accumulator) Bodies(kind DefKind) []string {
	defs := a.Definitions(kind)
	out := make([]string, len(defs))
	for i, def := range defs {
		out[i] = def.Body
	}
	return out
}

// Require records dependency lines.
func (a *Accumulator) Require(lines ...string) {
	a.deps.Add(lines...)
}

// Deps returns the recorded dependencies.
func (a *Accumulator) Deps() DepSet {
	return a.deps
}

// Push descends into a key of the current node.
func (a *Accumulator) Push(segment string) {
	a.path.Push(segment)
}

// PushIndex descends into an index of the current node.
func (a *Accumulator) PushIndex(i int) {
	a.path.PushIndex(i)
}

// Pop leaves the last segment.
func (a *Accumulator) Pop() {
	a.path.Pop()
}

// Path returns the current diagnostic path.
func (a *Accumulator) Path() string {
	return a.path.String()
}

// Placeholder records a warning at the current path and returns the
// placeholder token to render instead of the unsupported shape.
func (a *Accumulator) Placeholder(reason string) string {
	a.Warn(reason)
	return Placeholder
}

// Warn records a warning at the current path.
func (a *Accumulator) Warn(msg string) {
	a.record(severity.SeverityWarning, msg)
}

// Info records an informational issue at the current path.
func (a *Accumulator) Info(msg string) {
	a.record(severity.SeverityInfo, msg)
}

func (a *Accumulator) record(sev severity.Severity, msg string) {
	a.issues = append(a.issues, Issue{
		Path:     a.path.String(),
		Message:  msg,
		Severity: sev,
		Backend:  a.backend,
		Schema:   a.schema,
	})
}

// Issues returns the recorded issues in order.
func (a *Accumulator) Issues() []Issue {
	return a.issues
}

// Result packages output with the accumulated deps and issues.
func (a *Accumulator) Result(output, extension string, head ...string) *Translation {
	return &Translation{
		Output:    output,
		Extension: extension,
		Deps:      a.deps,
		Head:      head,
		Issues:    a.issues,
	}
}
