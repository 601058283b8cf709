package pathutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrSymlinkTarget is returned when a generated file would be written
// through a symbolic link.
var ErrSymlinkTarget = errors.New("refusing to write to symlink")

// ErrDirectoryTarget is returned when the destination of a generated
// file is an existing directory.
var ErrDirectoryTarget = errors.New("refusing to overwrite directory")

// SanitizeOutputPath returns the absolute, lexically cleaned form of the
// path a generated module (User.ts, models.py, ...) is about to be written
// to. The destination may not exist yet; if it does, it must be neither a
// symlink nor a directory.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("pathutil: resolving %q: %w", path, err)
	}

	info, err := os.Lstat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return abs, nil
	}
	if err != nil {
		return "", fmt.Errorf("pathutil: inspecting %s: %w", abs, err)
	}

	switch mode := info.Mode(); {
	case mode&fs.ModeSymlink != 0:
		return "", fmt.Errorf("pathutil: %w: %s", ErrSymlinkTarget, abs)
	case mode.IsDir():
		return "", fmt.Errorf("pathutil: %w: %s", ErrDirectoryTarget, abs)
	}
	return abs, nil
}
