package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/flexschema/internal/fileutil"
	"github.com/erraggy/flexschema/internal/pathutil"
)

// WriteFiles writes all generated files to the specified output directory.
// The directory is created if it doesn't exist.
func (r *GenerateResult) WriteFiles(outputDir string) error {
	if err := os.MkdirAll(outputDir, fileutil.DirReadableByAll); err != nil {
		return fmt.Errorf("generator: failed to create output directory: %w", err)
	}

	for _, file := range r.Files {
		if err := fileutil.CheckBaseName(file.Name); err != nil {
			return fmt.Errorf("generator: %w", err)
		}
		if err := file.WriteFile(filepath.Join(outputDir, file.Name)); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes a single generated file to the specified path.
// Content identical to what is already on disk is not rewritten and
// symlinks are refused.
func (f *GeneratedFile) WriteFile(path string) error {
	path, err := pathutil.SanitizeOutputPath(path)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), fileutil.DirReadableByAll); err != nil {
		return fmt.Errorf("generator: failed to create directory: %w", err)
	}
	if _, err := fileutil.WriteIfChanged(path, f.Content, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("generator: failed to write file %s: %w", f.Name, err)
	}
	return nil
}
