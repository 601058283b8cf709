// Package fileutil holds the file modes and write helpers shared by the
// generator and the CLI.
package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for generated source files
// intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the mode of directories created for generated files.
const DirReadableByAll os.FileMode = 0o755

// CheckBaseName rejects names that would escape the output directory.
func CheckBaseName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return fmt.Errorf("invalid file name %q: must not contain path separators", name)
	}
	return nil
}

// ReadIfExists returns the contents of path, or nil and false when the file
// does not exist.
func ReadIfExists(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// WriteIfChanged writes data to path unless the file already holds exactly
// data. It reports whether a write happened.
func WriteIfChanged(path string, data []byte, mode os.FileMode) (bool, error) {
	existing, ok, err := ReadIfExists(path)
	if err != nil {
		return false, err
	}
	if ok && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return false, err
	}
	return true, nil
}
