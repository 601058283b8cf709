// Package testutil provides fixtures and helpers shared by package tests.
package testutil

import (
	"embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/flexschema/document"
	"github.com/erraggy/flexschema/parser"
	"github.com/erraggy/flexschema/schema"
)

//go:embed testdata
var fixtures embed.FS

// Fixture names.
const (
	// UserJSON is a single nested object schema exercising every field kind.
	UserJSON = "user.json"
	// LinkedJSON is an array whose second schema $refs the first by key.
	LinkedJSON = "linked.json"
	// CatalogYAML is a two-document YAML stream whose schemas share an enum key.
	CatalogYAML = "catalog.yaml"
)

// Fixture returns the raw bytes of a named fixture.
func Fixture(t testing.TB, name string) []byte {
	t.Helper()
	data, err := fixtures.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("testutil: missing fixture %s: %v", name, err)
	}
	return data
}

// FixturePath copies a fixture into a temporary directory and returns its path.
func FixturePath(t testing.TB, name string) string {
	t.Helper()
	return WriteTemp(t, name, Fixture(t, name))
}

// WriteTemp writes data to name inside a fresh temporary directory.
func WriteTemp(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("testutil: failed to write %s: %v", path, err)
	}
	return path
}

// MustDecode decodes src and returns its first raw value.
func MustDecode(t testing.TB, src string) document.Value {
	t.Helper()
	values, err := document.Decode([]byte(src))
	if err != nil {
		t.Fatalf("testutil: decode failed: %v", err)
	}
	return values[0]
}

// MustParse decodes and parses src with an empty context.
func MustParse(t testing.TB, src string) schema.Node {
	t.Helper()
	node, err := parser.Parse(MustDecode(t, src), nil)
	if err != nil {
		t.Fatalf("testutil: parse failed: %v", err)
	}
	return node
}

// MustParseFixture parses every schema in a fixture.
func MustParseFixture(t testing.TB, name string, opts ...parser.Option) *parser.ParseResult {
	t.Helper()
	opts = append([]parser.Option{parser.WithBytes(Fixture(t, name)), parser.WithSourceName(name)}, opts...)
	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		t.Fatalf("testutil: parse of %s failed: %v", name, err)
	}
	return result
}
