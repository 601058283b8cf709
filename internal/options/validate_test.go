package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/flexschema/fserrors"
)

func TestValidateSingleInputSource(t *testing.T) {
	names := []string{"WithFilePath", "WithReader", "WithBytes"}

	require.NoError(t, ValidateSingleInputSource("parser", names, false, true, false))

	err := ValidateSingleInputSource("parser", names, false, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, fserrors.ErrConfig)
	assert.Contains(t, err.Error(), "parser: must specify an input source (use WithFilePath, WithReader, or WithBytes)")

	err = ValidateSingleInputSource("generator", names[:2], true, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generator: must specify exactly one input source")
}

func TestJoinOr(t *testing.T) {
	assert.Equal(t, "an input option", joinOr(nil))
	assert.Equal(t, "A", joinOr([]string{"A"}))
	assert.Equal(t, "A, or B", joinOr([]string{"A", "B"}))
}
