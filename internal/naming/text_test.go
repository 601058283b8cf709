package naming

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPascal(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"first name", "FirstName"},
		{"user_id", "UserId"},
		{"userId", "UserId"},
		{"2fa", "T2fa"},
		{"type", "Type"},
		{"", "Fallback"},
		{"!!", "Fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Pascal(tt.input, "Fallback"))
		})
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "range_", EscapeGo("range"))
	assert.Equal(t, "Map", EscapeGo("Map"))
	assert.Equal(t, "Type", EscapeGo("Type"))
	assert.Equal(t, "error", EscapeGo("error"))

	assert.Equal(t, "class_", EscapePython("class"))
	assert.Equal(t, "None_", EscapePython("None"))
	assert.Equal(t, "none", EscapePython("none"))
}

func TestRefName(t *testing.T) {
	assert.Equal(t, "Address", RefName("Address"))
	assert.Equal(t, "ShippingAddress", RefName("#/definitions/Shipping Address"))
	assert.Equal(t, "", RefName("#/"))
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "a b", CleanDescription("  a\nb \n"))
	assert.Equal(t, "a b", CleanDescription("a\r\nb"))

	long := strings.Repeat("é", 250)
	got := CleanDescription(long)
	assert.Equal(t, maxDescriptionLength, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}
