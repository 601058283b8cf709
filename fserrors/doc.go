// Package fserrors provides structured error types for the flexschema library.
//
// Import path: github.com/erraggy/flexschema/fserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors.
//
// # Error Types
//
//   - [DecodeError]: input bytes are not valid JSON or YAML
//   - [ParseError]: structural problems in a decoded document, such as a
//     missing `type`
//   - [ReferenceError]: reference context misuse and circular references
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrDecode]: Matches any [DecodeError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrConfig]: Matches any [ConfigError]
//
// Translation never fails with an error. Shapes a backend cannot render are
// reported as issues on the translation result instead.
package fserrors
