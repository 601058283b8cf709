package gostruct

import "golang.org/x/tools/imports"

// Format formats merged Go source and fixes its imports, the way goimports
// does. filename only influences import grouping.
func Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}
