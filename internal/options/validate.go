// Package options holds validation shared by the functional-option entry
// points of the parser and generator packages.
package options

import "github.com/erraggy/flexschema/fserrors"

// ValidateSingleInputSource ensures exactly one input source is set.
// names lists the option names in the same order as sources and is used in
// the error message.
func ValidateSingleInputSource(pkg string, names []string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}
	switch {
	case count == 0:
		return &fserrors.ConfigError{Option: "input", Message: pkg + ": must specify an input source (use " + joinOr(names) + ")"}
	case count > 1:
		return &fserrors.ConfigError{Option: "input", Message: pkg + ": must specify exactly one input source"}
	}
	return nil
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return "an input option"
	case 1:
		return names[0]
	}
	out := ""
	for i, n := range names {
		switch {
		case i == 0:
			out = n
		case i == len(names)-1:
			out += ", or " + n
		default:
			out += ", " + n
		}
	}
	return out
}
