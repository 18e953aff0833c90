package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFullName(t *testing.T) {
	t.Parallel()

	name, err := NewFullName("  Ana   Sofía  Lev ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Sofía", "Lev"}, name.Words)
	assert.Equal(t, "Ana Sofía Lev", name.String())
}

func TestNewFullNameRejectsBlank(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := NewFullName(raw)
		assert.ErrorIs(t, err, ErrEmptyName, "input %q", raw)
	}
}

func TestUnsupportedCharacterError(t *testing.T) {
	t.Parallel()

	err := &UnsupportedCharacterError{Rune: '4', Position: 2}
	assert.ErrorIs(t, err, ErrUnsupportedCharacter)
	assert.Contains(t, err.Error(), "'4'")
	assert.Contains(t, err.Error(), "position 2")
}
