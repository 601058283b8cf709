// Package severity provides the severity levels attached to issues reported
// while parsing and translating schemas.
//
// Levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

import "strings"

// Severity indicates how serious a reported issue is.
type Severity int

const (
	// SeverityInfo marks a processing choice worth knowing about, such as a
	// renamed output file.
	SeverityInfo Severity = iota

	// SeverityWarning marks degraded output: a placeholder was rendered, an
	// enum was renamed to avoid a collision, a field was dropped.
	SeverityWarning

	// SeverityError marks a problem that makes the output unusable as-is.
	SeverityError

	// SeverityCritical marks a construct that could not be processed at all.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Parse converts a level name back into a Severity. Matching is
// case-insensitive; ok is false for unknown names.
func Parse(name string) (s Severity, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return SeverityInfo, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	case "critical":
		return SeverityCritical, true
	}
	return SeverityInfo, false
}

// AtLeast reports whether s is as severe as min or more.
func (s Severity) AtLeast(min Severity) bool {
	return s >= min
}
