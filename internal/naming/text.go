package naming

import (
	"strings"
	"unicode"
)

// maxDescriptionLength caps descriptions copied into generated comments.
const maxDescriptionLength = 200

// goKeywords holds the Go keywords. Predeclared identifiers such as "error"
// can be shadowed and are left alone.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// pythonKeywords holds the Python keywords that cannot name a class attribute.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// EscapeGo appends an underscore to Go keywords. Keywords are all lower
// case, so exported names such as "Type" are left alone.
func EscapeGo(name string) string {
	if goKeywords[name] {
		return name + "_"
	}
	return name
}

// EscapePython appends an underscore to Python keywords.
func EscapePython(name string) string {
	if pythonKeywords[name] {
		return name + "_"
	}
	return name
}

// Pascal converts an arbitrary key to a PascalCase identifier. Runs of
// letters and digits are joined with their first rune upper-cased, and a
// leading digit gets a "T" prefix. Keywords are not escaped; see EscapeGo.
// Example: "first name" -> "FirstName", "2fa" -> "T2fa"
func Pascal(s, fallback string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
	}
	name := b.String()
	if name == "" {
		return fallback
	}
	if first := []rune(name)[0]; !unicode.IsLetter(first) {
		name = "T" + name
	}
	return name
}

// RefName returns the type name a $ref string points at: the segment after
// the last "/" with whitespace removed.
// Example: "#/definitions/Shipping Address" -> "ShippingAddress"
func RefName(ref string) string {
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		ref = ref[i+1:]
	}
	return StripSpace(ref)
}

// CleanDescription prepares a description for a one-line comment: newlines
// become spaces, surrounding whitespace is trimmed and long text is cut at a
// rune boundary with "...".
func CleanDescription(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > maxDescriptionLength {
		s = string(runes[:maxDescriptionLength-3]) + "..."
	}
	return s
}
