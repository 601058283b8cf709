package naming

import (
	"strings"
	"unicode"

	"github.com/stoewer/go-strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title upper-cases the first letter of every word and lower-cases the rest.
// Example: "order status" -> "Order Status"
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// FirstUpper converts the first rune to uppercase and leaves the rest alone.
// Example: "userProfile" -> "UserProfile"
func FirstUpper(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// StripSpace removes every whitespace rune.
// Example: "Shipping Address" -> "ShippingAddress"
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// TypeName derives a declaration name from a key: title-cased when title is
// set, whitespace removed, fallback used when the result is empty.
func TypeName(key, fallback string, title bool) string {
	if title {
		key = Title(key)
	}
	name := StripSpace(key)
	if name == "" {
		return fallback
	}
	return name
}

// IsIdentifier reports whether s is a letter/underscore led run of letters,
// digits and underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// Identifier turns an arbitrary literal into a usable member identifier.
// Valid identifiers are returned unchanged; anything else is snake-cased,
// stripped of invalid runes and prefixed with "_" when it would start with a digit.
// Example: "in progress" -> "in_progress", "2fa" -> "_2fa"
func Identifier(s string) string {
	if IsIdentifier(s) {
		return s
	}
	snake := strcase.SnakeCase(s)
	id := strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, snake)
	if id == "" || unicode.IsDigit([]rune(id)[0]) {
		id = "_" + id
	}
	return id
}
