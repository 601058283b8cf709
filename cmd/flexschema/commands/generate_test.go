package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/flexschema/internal/testutil"
)

func TestGenerate_WritesFiles(t *testing.T) {
	input := testutil.FixturePath(t, testutil.UserJSON)
	dir := t.TempDir()

	_, stderr, err := execute(t, "generate", input, "--out-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "generated 2 file(s) from 1 schema(s)")

	for _, name := range []string{"User.ts", "User.py"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, data)
	}
}

func TestGenerate_InputFlag(t *testing.T) {
	input := testutil.FixturePath(t, testutil.UserJSON)
	dir := t.TempDir()

	_, _, err := execute(t, "generate", "-i", input, "-o", dir, "-t", "typescript")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "User.ts"))
	assert.NoFileExists(t, filepath.Join(dir, "User.py"))
}

func TestGenerate_Debug(t *testing.T) {
	input := testutil.FixturePath(t, testutil.UserJSON)
	dir := t.TempDir()

	stdout, _, err := execute(t, "generate", input, "--debug", "--out-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "==> User.ts <==\n")
	assert.Contains(t, stdout, "==> User.py <==\n")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "debug output must not touch the output directory")
}

func TestGenerate_Combined(t *testing.T) {
	input := testutil.FixturePath(t, testutil.CatalogYAML)
	dir := t.TempDir()

	_, stderr, err := execute(t, "generate", input, "--out-dir", dir, "--out-name", "models", "--target", "typescript")
	require.NoError(t, err)
	assert.Contains(t, stderr, "generated 1 file(s) from 2 schema(s)")
	assert.FileExists(t, filepath.Join(dir, "models.ts"))
}

func TestGenerate_TargetFromEnv(t *testing.T) {
	t.Setenv("FLEXSCHEMA_TARGET", "go")
	t.Setenv("FLEXSCHEMA_GO_PACKAGE", "api")
	input := testutil.FixturePath(t, testutil.UserJSON)

	stdout, _, err := execute(t, "generate", input, "--debug")
	require.NoError(t, err)
	assert.Contains(t, stdout, "==> User.go <==")
	assert.Contains(t, stdout, "package api")
	assert.NotContains(t, stdout, "User.ts")
}

func TestGenerate_ConfigFile(t *testing.T) {
	cfg := testutil.WriteTemp(t, "flexschema.yaml", []byte("target: [typescript, go]\ngo-package: store\n"))
	input := testutil.FixturePath(t, testutil.UserJSON)

	stdout, _, err := execute(t, "--config", cfg, "generate", input, "--debug")
	require.NoError(t, err)
	assert.Contains(t, stdout, "==> User.ts <==")
	assert.Contains(t, stdout, "package store")
	assert.NotContains(t, stdout, "User.py")
}

func TestGenerate_FlagBeatsEnv(t *testing.T) {
	t.Setenv("FLEXSCHEMA_TARGET", "go")
	input := testutil.FixturePath(t, testutil.UserJSON)

	stdout, _, err := execute(t, "generate", input, "--debug", "--target", "mongoengine")
	require.NoError(t, err)
	assert.Contains(t, stdout, "==> User.py <==")
	assert.NotContains(t, stdout, "User.go")
}

func TestGenerate_Errors(t *testing.T) {
	input := testutil.FixturePath(t, testutil.UserJSON)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{"generate"}, "no input file given"},
		{"two inputs", []string{"generate", input, "-i", input}, "not both"},
		{"unknown target", []string{"generate", input, "--debug", "-t", "cobol"}, "unknown target"},
		{"missing file", []string{"generate", filepath.Join(t.TempDir(), "nope.json")}, "failed to parse schemas"},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "generate", input}, "reading config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
