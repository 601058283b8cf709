// Package naming provides the case and identifier helpers shared by the
// translation backends.
//
// Backends derive type, class and enum names from a schema node's key.
// These helpers keep that derivation consistent: [Title] matches word-wise
// title casing, [FirstUpper] only touches the first rune, [StripSpace]
// removes whitespace from derived names and [Identifier] turns arbitrary
// enum values into member identifiers.
package naming
