package generator

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/erraggy/flexschema/translate"
	"github.com/erraggy/flexschema/translate/gostruct"
	"github.com/erraggy/flexschema/translate/mongoengine"
	"github.com/erraggy/flexschema/translate/typescript"
)

// Built-in target names.
const (
	TargetTypeScript  = typescript.Name
	TargetMongoEngine = mongoengine.Name
	TargetGo          = gostruct.Name
)

// BackendFactory builds a backend configured from g.
type BackendFactory func(g *Generator) translate.Backend

var (
	registryMu sync.RWMutex
	registry   = map[string]BackendFactory{
		TargetTypeScript: func(g *Generator) translate.Backend {
			return typescript.New(typescript.Options{InlineObjects: g.InlineObjects})
		},
		TargetMongoEngine: func(g *Generator) translate.Backend {
			return mongoengine.New(mongoengine.Options{
				BaseClass:       g.MongoBaseClass,
				BaseClassImport: g.MongoBaseClassImport,
				ExtraDeps:       g.MongoExtraDeps,
			})
		},
		TargetGo: func(g *Generator) translate.Backend {
			return gostruct.New(gostruct.Options{
				PackageName:       g.GoPackage,
				UsePointers:       g.UsePointers,
				IncludeValidation: g.IncludeValidation,
			})
		},
	}
	aliases = map[string]string{
		"ts":       TargetTypeScript,
		"mongo":    TargetMongoEngine,
		"gostruct": TargetGo,
		"golang":   TargetGo,
	}
)

// RegisterBackend makes a backend available as a target. Registering an
// existing name replaces it.
func RegisterBackend(name string, factory BackendFactory) error {
	if name == "" {
		return fmt.Errorf("generator: backend name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("generator: backend factory for %q cannot be nil", name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
	return nil
}

// Targets returns the registered target names in sorted order.
func Targets() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CanonicalTarget resolves aliases such as "ts" to a registered name.
func CanonicalTarget(name string) (string, bool) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return name, ok
}

// backends builds the configured backends, in target order without
// duplicates.
func (g *Generator) backends() ([]translate.Backend, error) {
	if len(g.Targets) == 0 {
		return nil, fmt.Errorf("generator: no targets selected")
	}
	var (
		seen []string
		out  []translate.Backend
	)
	for _, target := range g.Targets {
		name, ok := CanonicalTarget(target)
		if !ok {
			return nil, fmt.Errorf("generator: unknown target %q (available: %v)", target, Targets())
		}
		if slices.Contains(seen, name) {
			continue
		}
		seen = append(seen, name)

		registryMu.RLock()
		factory := registry[name]
		registryMu.RUnlock()
		out = append(out, factory(g))
	}
	return out, nil
}
