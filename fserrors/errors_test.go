package fserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Source:  "schemas.json",
			Path:    "properties.tags.items",
			Line:    12,
			Column:  7,
			Message: "missing `type`",
			Cause:   errors.New("underlying"),
		}
		assert.Equal(t,
			"parse error in schemas.json at properties.tags.items (line 12, column 7): missing `type`: underlying",
			err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		assert.Equal(t, "parse error", (&ParseError{}).Error())
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &ParseError{Path: "anyOf[1]", Message: "missing `type`"}
		assert.Equal(t, "parse error at anyOf[1]: missing `type`", err.Error())
	})

	t.Run("Line without column", func(t *testing.T) {
		assert.Equal(t, "parse error (line 3)", (&ParseError{Line: 3}).Error())
	})

	t.Run("errors.Is and errors.As through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("parser: %w", &ParseError{Path: "x"})
		assert.ErrorIs(t, wrapped, ErrParse)
		assert.NotErrorIs(t, wrapped, ErrReference)

		var pe *ParseError
		assert.ErrorAs(t, wrapped, &pe)
		assert.Equal(t, "x", pe.Path)
	})
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("yaml: line 2: did not find expected key")
	err := &DecodeError{Source: "bad.yaml", Cause: cause}

	assert.Equal(t, "decode error in bad.yaml: yaml: line 2: did not find expected key", err.Error())
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, cause)
}

func TestReferenceError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ReferenceError
		want     string
		circular bool
	}{
		{
			name: "duplicate registration",
			err:  &ReferenceError{Ref: "User", Message: "already registered"},
			want: "reference error: User: already registered",
		},
		{
			name:     "circular",
			err:      &ReferenceError{Ref: "Node", IsCircular: true},
			want:     "circular reference: Node",
			circular: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrReference)
			assert.Equal(t, tt.circular, errors.Is(tt.err, ErrCircularReference))
		})
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "targets", Value: "cobol", Message: "unknown target"}
	assert.Equal(t, "configuration error for targets (value: cobol): unknown target", err.Error())
	assert.ErrorIs(t, err, ErrConfig)
	assert.Nil(t, err.Unwrap())
}
