// Package translate defines the result every code-emitting backend produces
// for one schema node, and the rules for merging several results into one
// file.
//
// # Translation results
//
// A [Translation] carries the generated body (Output), the file extension of
// the target language, the set of dependency declarations the body needs
// (Deps) and the lines that must open any file the body ends up in (Head).
//
// Dependencies are only known once a backend has finished walking a tree, so
// backends write [DepsMarker] where the declarations belong and [Merge]
// substitutes it afterwards:
//
//	body := translate.Merge(userTS, orderTS)
//
// The first marker in the merged body receives the sorted union of all deps;
// any later marker is deleted.
//
// # Accumulating definitions
//
// Backends hoist named declarations (classes, enums, structs) out of the tree
// walk. An [Accumulator] threads that state explicitly through the walk:
// it hands out collision-free names, keeps definitions in creation order,
// records dependencies and collects non-fatal issues at the current path.
//
//	acc := translate.NewAccumulator("typescript", node.Key())
//	name := acc.Define(translate.DefEnum, "EStatus", sig, func(name string) string {
//	    return "export enum " + name + " {...}"
//	})
//
// Translation never fails. Shapes a backend cannot render become a "?"
// placeholder via [Accumulator.Placeholder] and a warning issue.
package translate
