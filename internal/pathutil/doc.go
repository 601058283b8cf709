// Package pathutil builds the diagnostic paths reported by the parser and
// the translation backends.
//
// [PathBuilder] uses push/pop semantics so that a recursive walk can track
// where it is without allocating a string per step. The path is only
// materialized when something needs to be reported:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("properties")
//	path.Push(propName)
//	// ... recurse ...
//	path.Pop()
//	path.Pop()
//
// Sequence positions render in brackets:
//
//	path.Push("anyOf")
//	path.PushIndex(1) // "anyOf[1]"
//
// [SanitizeOutputPath] cleans output file paths before generated files are
// written, rejecting symlinks.
package pathutil
