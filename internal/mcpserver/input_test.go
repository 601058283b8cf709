package mcpserver

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/flexschema/internal/testutil"
)

func TestSourceCacheKey(t *testing.T) {
	a := source{Content: `{"type":"string"}`}
	b := source{Content: `{"type":"integer"}`}
	linked := source{Content: `{"type":"string"}`, LinkSchemas: true}

	assert.True(t, strings.HasPrefix(a.cacheKey(), "content:"))
	assert.Equal(t, a.cacheKey(), source{Content: `{"type":"string"}`}.cacheKey())
	assert.NotEqual(t, a.cacheKey(), b.cacheKey())
	assert.NotEqual(t, a.cacheKey(), linked.cacheKey())

	assert.Empty(t, source{}.cacheKey())
	assert.Empty(t, source{File: "/does/not/exist.json"}.cacheKey())

	path := testutil.FixturePath(t, testutil.UserJSON)
	assert.True(t, strings.HasPrefix(source{File: path}.cacheKey(), "file:"))
}

func TestResolve_Errors(t *testing.T) {
	s := newTestServer(t)

	_, err := s.resolve(source{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one of file or content must be provided")

	_, err = s.resolve(source{File: "a.json", Content: "{}"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only one of file or content")

	s.cfg.MaxInlineSize = 4
	_, err = s.resolve(source{Content: `{"type":"string"}`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 4 bytes")

	_, err = newTestServer(t).resolve(source{File: "missing.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestResolve_ContentCached(t *testing.T) {
	s := newTestServer(t)
	content := string(testutil.Fixture(t, testutil.UserJSON))

	first, err := s.resolve(source{Content: content})
	require.NoError(t, err)
	assert.Equal(t, "content", first.SourcePath)
	require.Len(t, first.Schemas, 1)

	second, err := s.resolve(source{Content: content})
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, s.cache.size())
}

func TestResolve_FileInvalidatedOnChange(t *testing.T) {
	s := newTestServer(t)
	path := testutil.FixturePath(t, testutil.UserJSON)

	first, err := s.resolve(source{File: path})
	require.NoError(t, err)
	assert.Equal(t, "User", first.Schemas[0].Key())

	require.NoError(t, os.WriteFile(path, []byte(`{"title":"Other","type":"object"}`), 0o600))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	second, err := s.resolve(source{File: path})
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, "Other", second.Schemas[0].Key())
}

func TestResolve_LinkSchemas(t *testing.T) {
	s := newTestServer(t)
	content := string(testutil.Fixture(t, testutil.LinkedJSON))

	plain, err := s.resolve(source{Content: content})
	require.NoError(t, err)
	assert.Equal(t, 1, plain.Stats.UnresolvedRefs)

	linked, err := s.resolve(source{Content: content, LinkSchemas: true})
	require.NoError(t, err)
	assert.Equal(t, 0, linked.Stats.UnresolvedRefs)
	assert.Equal(t, 1, linked.Stats.ResolvedRefs)
}
