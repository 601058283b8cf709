package fserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrDecode indicates the input could not be decoded as JSON or YAML.
	ErrDecode = errors.New("decode error")

	// ErrParse indicates a structural parse failure.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a reference context failure.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates a circular $ref was detected.
	ErrCircularReference = errors.New("circular reference")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// DecodeError represents input bytes that are not valid JSON or YAML.
type DecodeError struct {
	// Source is the file path or source identifier
	Source string
	// Cause is the underlying decoder error
	Cause error
}

// Error returns a human-readable error message.
func (e *DecodeError) Error() string {
	msg := "decode error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ParseError represents a structural failure while building the schema model.
// Parsing stops at the first ParseError and no partial tree is returned.
type ParseError struct {
	// Source is the file path or source identifier (empty for in-memory input)
	Source string
	// Path is the dotted/indexed path to the offending node (e.g. "properties.tags.items")
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a reference context failure, such as registering
// a name twice or a reference that leads back to itself.
type ReferenceError struct {
	// Ref is the reference name involved
	Ref string
	// IsCircular is true if this error is due to a circular reference
	IsCircular bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrCircularReference when IsCircular is set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	return target == ErrCircularReference && e.IsCircular
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
