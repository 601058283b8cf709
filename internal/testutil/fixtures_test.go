package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/flexschema/parser"
	"github.com/erraggy/flexschema/schema"
)

func TestFixtures(t *testing.T) {
	for _, name := range []string{UserJSON, LinkedJSON, CatalogYAML} {
		t.Run(name, func(t *testing.T) {
			assert.NotEmpty(t, Fixture(t, name))

			path := FixturePath(t, name)
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, Fixture(t, name), data)
		})
	}
}

func TestMustParseFixture(t *testing.T) {
	user := MustParseFixture(t, UserJSON)
	require.Len(t, user.Schemas, 1)
	assert.Equal(t, "User", user.Schemas[0].Key())
	assert.Equal(t, UserJSON, user.SourcePath)

	catalog := MustParseFixture(t, CatalogYAML)
	assert.Len(t, catalog.Schemas, 2)

	linked := MustParseFixture(t, LinkedJSON, parser.WithLinkSchemas(true))
	require.Len(t, linked.Schemas, 2)
	customer := linked.Schemas[1].(*schema.Object)
	addr, ok := customer.Get("address")
	require.True(t, ok)
	assert.Same(t, linked.Schemas[0], addr.Attrs().Ref.Target)
}

func TestMustParse(t *testing.T) {
	node := MustParse(t, `{"type":"boolean"}`)
	assert.Equal(t, schema.KindBoolean, node.Kind())
}
