package pathutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOutputPath_Accepted(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "models.py")
	require.NoError(t, os.WriteFile(existing, []byte("# pyright: basic\n"), 0o600))

	tests := []struct {
		name string
		path string
		want string
	}{
		{"new typescript module", filepath.Join(dir, "User.ts"), filepath.Join(dir, "User.ts")},
		{"existing python module", existing, existing},
		{"nested output dir", filepath.Join(dir, "gen", "go", "user.go"), filepath.Join(dir, "gen", "go", "user.go")},
		{"dot-dot cleaned", filepath.Join(dir, "gen", "..", "Order.ts"), filepath.Join(dir, "Order.ts")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeOutputPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeOutputPath_Relative(t *testing.T) {
	got, err := SanitizeOutputPath("out/models.py")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	assert.True(t, strings.HasSuffix(got, filepath.Join("out", "models.py")))
}

func TestSanitizeOutputPath_Symlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "User.ts")
	link := filepath.Join(dir, "Customer.ts")
	require.NoError(t, os.WriteFile(target, []byte("export type User = {};\n"), 0o600))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	_, err := SanitizeOutputPath(link)
	require.ErrorIs(t, err, ErrSymlinkTarget)
	assert.Contains(t, err.Error(), "refusing to write to symlink")
	assert.Contains(t, err.Error(), link)
}

func TestSanitizeOutputPath_Directory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "models.py")
	require.NoError(t, os.Mkdir(target, 0o755))

	_, err := SanitizeOutputPath(target)
	require.ErrorIs(t, err, ErrDirectoryTarget)
}
